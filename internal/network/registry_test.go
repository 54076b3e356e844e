package network

import (
	"testing"

	"relief-allocation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryInternAssignsDenseIDsInFirstSeenOrder(t *testing.T) {
	r := NewRegistry(0)

	for i, name := range []string{"Pune", "Mumbai", "Nagpur"} {
		id, err := r.Intern(name)
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}

	id, err := r.Intern("Mumbai")
	require.NoError(t, err)
	assert.Equal(t, 1, id, "second sighting must return the first id")
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"Pune", "Mumbai", "Nagpur"}, r.Names())
}

func TestRegistryLimit(t *testing.T) {
	r := NewRegistry(2)

	_, err := r.Intern("A")
	require.NoError(t, err)
	_, err = r.Intern("B")
	require.NoError(t, err)

	_, err = r.Intern("C")
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	// Known names still resolve at the limit.
	id, err := r.Intern("A")
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	_, ok := r.Lookup("C")
	assert.False(t, ok)
}

package network

import (
	"testing"

	"relief-allocation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteCacheMemoizes(t *testing.T) {
	c := NewRouteCache(triangle())

	r, err := c.Route(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, r.Distance)
	assert.Equal(t, []int{0, 1, 2}, r.Path)

	_, err = c.Route(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Computed())
}

func TestRouteCacheUnreachable(t *testing.T) {
	c := NewRouteCache(triangle())

	_, err := c.Route(3, 0)
	require.ErrorIs(t, err, domain.ErrUnreachable)

	_, err = c.Route(3, 0)
	require.ErrorIs(t, err, domain.ErrUnreachable)
	assert.Equal(t, 1, c.Computed())
}

package ports

import (
	"context"
	"relief-allocation-service/internal/domain"
)

// Port: a boundary for loading the clean input rows of one allocation run.
// Implementations trim, validate and clamp rows, and drop malformed ones,
// returning how many they dropped next to the rows. Only an unreadable source
// is an error (wrapping domain.ErrInputUnavailable).
type InputSource interface {
	LoadWarehouses(ctx context.Context) ([]domain.WarehouseRow, int, error)
	LoadRelief(ctx context.Context) ([]domain.ReliefRow, int, error)
	LoadRoutes(ctx context.Context) ([]domain.RouteRow, int, error)
}

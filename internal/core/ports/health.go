package ports

//go:generate mockgen -source=health.go -destination=mocks/mock_health.go -package=mocks

import "context"

// HealthChecker is a dependency probed by GET /health. Name is the key it is
// reported under in the dependencies map.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}

package store

// HealthStore abstracts database liveness checks
type HealthStore interface {
	// Ping verifies the database connection is alive
	Ping() error
}

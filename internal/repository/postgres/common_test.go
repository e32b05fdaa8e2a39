package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/peoplehq/people-api/internal/config"
	"github.com/peoplehq/people-api/internal/pkg/database"
)

// getTestDB returns a database connection for integration tests.
// Returns nil if the database is not available (skips tests).
func getTestDB(t *testing.T) *database.PostgresDB {
	// Check if we're running integration tests
	if os.Getenv("POSTGRES_TEST_HOST") == "" {
		t.Skip("Skipping integration test: POSTGRES_TEST_HOST not set")
		return nil
	}

	cfg := config.PostgresConfig{
		Host:     os.Getenv("POSTGRES_TEST_HOST"),
		Port:     5432,
		User:     os.Getenv("POSTGRES_TEST_USER"),
		Password: os.Getenv("POSTGRES_TEST_PASS"),
		Database: os.Getenv("POSTGRES_TEST_DB"),
		SSLMode:  "disable",
		MaxConns: 5,
		MinConns: 1,
	}

	if cfg.Database == "" {
		cfg.Database = "test_people"
	}
	if cfg.User == "" {
		cfg.User = "postgres"
	}

	db, err := database.NewPostgres(context.Background(), cfg)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to PostgreSQL: %v", err)
		return nil
	}

	return db
}

// cleanupPeople removes test people from the database
func cleanupPeople(t *testing.T, db *database.PostgresDB, surnames ...string) {
	ctx := context.Background()
	for _, surname := range surnames {
		_, _ = db.Pool.Exec(ctx, "DELETE FROM people WHERE surname = $1", surname)
	}
}

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mediagent/mediagent/internal/domain/patient"
	"github.com/mediagent/mediagent/internal/platform/db"
)

// testDB holds the shared database infrastructure for integration tests.
type testDB struct {
	Pool    *pgxpool.Pool
	ConnStr string
}

// globalDB is the package-level test database, initialized once in TestMain.
var globalDB *testDB

func TestMain(m *testing.M) {
	ctx := context.Background()

	connStr, cleanup, err := startPostgresContainer(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup postgres container: %v\n", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "failed to create pool: %v\n", err)
		os.Exit(1)
	}

	migrator := db.NewMigrator(pool, findMigrationsDir())
	if _, err := migrator.Up(ctx, "public"); err != nil {
		pool.Close()
		cleanup()
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	globalDB = &testDB{Pool: pool, ConnStr: connStr}
	code := m.Run()
	pool.Close()
	cleanup()
	os.Exit(code)
}

// findMigrationsDir locates the migrations directory relative to this test file.
func findMigrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	// test/integration -> repo root
	root := filepath.Join(dir, "..", "..")
	return filepath.Join(root, "migrations")
}

// createTestPatient inserts a patient using the repo and fails the test on error.
func createTestPatient(t *testing.T, ctx context.Context, pool *pgxpool.Pool, firstName, lastName string) *patient.Patient {
	t.Helper()
	repo := patient.NewRepoPG(pool)
	p := &patient.Patient{
		FirstName:      firstName,
		LastName:       lastName,
		Gender:         ptrStr("female"),
		Allergies:      []string{},
		Medications:    []string{},
		MedicalHistory: []string{},
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create test patient: %v", err)
	}
	return p
}

// ptrStr returns a pointer to the given string.
func ptrStr(s string) *string { return &s }

// ptrTime returns a pointer to the given time.
func ptrTime(tm time.Time) *time.Time { return &tm }

// ptrUUID returns a pointer to the given UUID.
func ptrUUID(u uuid.UUID) *uuid.UUID { return &u }

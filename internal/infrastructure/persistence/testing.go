//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recordkit/recordkit/internal/pkg/config"
	"github.com/recordkit/recordkit/internal/pkg/testutil"
	"github.com/recordkit/recordkit/internal/record"
)

// TestContext holds the test database and the record factory built on it.
// Domain packages register their own constructors on the Factory.
type TestContext struct {
	DB      *gorm.DB
	Conn    *GormConn
	Factory *record.Factory
}

// SetupTestDB initializes a migrated test database with automatic cleanup.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = Migrate(db)
	require.NoError(t, err, "Failed to migrate schema")

	conn := NewGormConn(db)

	factory, err := record.NewFactory(conn, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create record factory")

	return &TestContext{
		DB:      db,
		Conn:    conn,
		Factory: factory,
	}
}

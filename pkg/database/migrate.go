package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    TEXT PRIMARY KEY,
	applied_at TIMESTAMP NOT NULL
)`

// Migration is one versioned schema script.
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Migrator applies embedded migrations once each, tracking them in schema_migrations.
type Migrator struct {
	db         *sqlx.DB
	logger     *zap.Logger
	migrations []Migration
}

// NewMigrator builds a migrator over the embedded schema scripts.
func NewMigrator(db *sqlx.DB, logger *zap.Logger) (*Migrator, error) {
	migrations, err := loadMigrations(migrationFiles)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Migrator{db: db, logger: logger, migrations: migrations}, nil
}

// Migrations lists the scripts known to the migrator in apply order.
func (m *Migrator) Migrations() []Migration {
	return m.migrations
}

// Up applies every pending migration inside its own transaction.
func (m *Migrator) Up(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, migrationTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, mig := range m.migrations {
		applied, err := m.applied(ctx, mig.Version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return err
		}
		m.logger.Info("migration applied", zap.String("version", mig.Version), zap.String("name", mig.Name))
	}
	return nil
}

func (m *Migrator) applied(ctx context.Context, version string) (bool, error) {
	var count int
	query := m.db.Rebind(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`)
	if err := m.db.GetContext(ctx, &count, query, version); err != nil {
		return false, fmt.Errorf("check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func (m *Migrator) apply(ctx context.Context, mig Migration) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", mig.Version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, mig.SQL); err != nil {
		return fmt.Errorf("apply migration %s: %w", mig.Version, err)
	}
	record := tx.Rebind(`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`)
	if _, err := tx.ExecContext(ctx, record, mig.Version, time.Now().UTC()); err != nil {
		return fmt.Errorf("record migration %s: %w", mig.Version, err)
	}
	return tx.Commit()
}

func loadMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	migrations := make([]Migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		body, err := fs.ReadFile(fsys, "migrations/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		// "001_campus_schema.sql" => version "001"
		base := strings.TrimSuffix(entry.Name(), ".sql")
		version, name, _ := strings.Cut(base, "_")
		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(body)})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

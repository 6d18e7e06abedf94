package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/deppfellow/records-api/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// versionTable is where tern records the applied schema version.
const versionTable = "schema_version"

// Migrate creates the resource tables by applying the embedded migrations
// over a single dedicated connection.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	return MigrateURL(ctx, logger, cfg.Database.DSN())
}

// MigrateURL is Migrate against an explicit connection string.
func MigrateURL(ctx context.Context, logger *zerolog.Logger, dsn string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := newMigrator(ctx, conn)
	if err != nil {
		return err
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}

func newMigrator(ctx context.Context, conn *pgx.Conn) (*tern.Migrator, error) {
	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return nil, fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := migrationFS()
	if err != nil {
		return nil, err
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return nil, fmt.Errorf("loading database migrations: %w", err)
	}
	return m, nil
}

func migrationFS() (fs.FS, error) {
	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("retrieving database migrations subtree: %w", err)
	}
	return subtree, nil
}

// Package repository handles all interactions with the database.
//
// It contains the SQL for every resource and the methods that fetch, persist,
// update and delete rows, keeping SQL out of the service layer. Identifiers
// come from model.Schema and are quoted with pgx.Identifier; values always
// travel as positional arguments.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool, pgx.Conn and pgx.Tx the repositories
// need.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

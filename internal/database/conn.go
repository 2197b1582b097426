package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rickgao/pgcheck/internal/version"
)

// Conn is the subset of *pgx.Conn a verification needs.
type Conn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

// Dialer opens a single connection for dsn.
type Dialer func(ctx context.Context, dsn string) (Conn, error)

// Dial opens one connection with pgx. It does not retry and adds no timeout
// beyond what the DSN itself specifies.
func Dial(ctx context.Context, dsn string) (Conn, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	if _, ok := cfg.RuntimeParams["application_name"]; !ok {
		cfg.RuntimeParams["application_name"] = version.ApplicationName()
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	return conn, nil
}

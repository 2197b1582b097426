package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	versionQuery = "SELECT version();"
	oneQuery     = "SELECT 1;"

	// NoRows is printed in place of a value when a query returns no row or NULL.
	NoRows = "None"
)

// Result is the outcome of a successful verification.
type Result struct {
	RunID   uuid.UUID
	Version string
	One     string
	Elapsed time.Duration
}

// Verifier checks that a database accepts connections and runs queries.
type Verifier struct {
	dial   Dialer
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// NewVerifier creates a Verifier that dials with pgx and writes to the
// process's standard streams.
func NewVerifier(opts ...VerifierOption) *Verifier {
	v := &Verifier{
		dial:   Dial,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// WithDialer replaces the function used to open connections.
func WithDialer(d Dialer) VerifierOption {
	return func(v *Verifier) {
		v.dial = d
	}
}

// WithOutput sets where result lines and diagnostics are written.
func WithOutput(stdout, stderr io.Writer) VerifierOption {
	return func(v *Verifier) {
		v.stdout = stdout
		v.stderr = stderr
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) VerifierOption {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// Verify opens a connection to dsn, prints the server version and the result
// of SELECT 1, and closes the connection. Any failure is reported on the
// error stream and returned to the caller.
//
// dsn is passed to the driver as is; callers resolve it with
// config.ResolveDSN. An empty dsn leaves pgx to its PG* environment defaults.
func (v *Verifier) Verify(ctx context.Context, dsn string) (*Result, error) {
	res := &Result{RunID: uuid.New()}
	logger := v.logger.With("run_id", res.RunID)
	start := time.Now()

	logger.Debug("connecting to database")

	conn, err := v.dial(ctx, dsn)
	if err != nil {
		return nil, v.fail(logger, err)
	}
	defer func() {
		if err := conn.Close(context.WithoutCancel(ctx)); err != nil {
			// Stays below the default level so a successful run prints only its results.
			logger.Debug("failed to close connection", "error", err)
		}
	}()

	logger.Debug("database connected")

	res.Version, err = queryFirst(ctx, conn, versionQuery)
	if err != nil {
		return nil, v.fail(logger, err)
	}
	fmt.Fprintf(v.stdout, "Database version: %s\n", res.Version)

	res.One, err = queryFirst(ctx, conn, oneQuery)
	if err != nil {
		return nil, v.fail(logger, err)
	}
	fmt.Fprintf(v.stdout, "Simple query result: %s\n", res.One)

	res.Elapsed = time.Since(start)
	logger.Info("verification succeeded", "elapsed", res.Elapsed)

	return res, nil
}

func (v *Verifier) fail(logger *slog.Logger, err error) error {
	fmt.Fprintf(v.stderr, "connection or query failed: %v\n", err)
	logger.Debug("verification failed", "error", err)
	return err
}

// queryFirst returns the first column of the first row rendered as text.
func queryFirst(ctx context.Context, conn Conn, sql string) (string, error) {
	var value any
	err := conn.QueryRow(ctx, sql).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return NoRows, nil
	}
	if err != nil {
		return "", fmt.Errorf("query %q: %w", sql, err)
	}
	if value == nil {
		return NoRows, nil
	}
	return fmt.Sprint(value), nil
}

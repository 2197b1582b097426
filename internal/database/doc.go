// Package database opens single PostgreSQL/TimescaleDB connections and
// verifies that an endpoint accepts connections and executes queries.
//
// There is no pooling here: a verification dials one connection, runs
// SELECT version() and SELECT 1, and closes it on every exit path.
package database

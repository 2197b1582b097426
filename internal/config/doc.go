// Package config resolves pgcheck's configuration.
//
// Configuration comes from three layers, merged into a single Env snapshot
// without ever mutating the process environment:
//   - the process environment
//   - env files (example.env, then .env), each only filling missing keys
//   - an optional YAML file whose ${VAR} references expand against the snapshot
//
// ResolveDSN applies the connection-string precedence to the Settings decoded
// from that snapshot.
package config

// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/pgcheck/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/pgcheck/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/pgcheck/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

// Name identifies the tool in version output and on the database server.
const Name = "pgcheck"

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Name + " " + Version + " (" + Commit + ") built " + BuildTime
}

// ApplicationName is reported to Postgres as application_name so the
// connection shows up in pg_stat_activity.
func ApplicationName() string {
	return Name + "/" + Version
}

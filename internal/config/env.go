package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Env is a snapshot of configuration variables.
type Env map[string]string

// ProcessEnv returns a snapshot of the current process environment.
func ProcessEnv() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Lookup returns the value for key and whether it is present.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// LookupEnv lets an Env act as a variable source for go-simpler.org/env.
func (e Env) LookupEnv(key string) (string, bool) {
	return e.Lookup(key)
}

// Merge returns a new Env with every key of e plus the keys of other that e lacks.
// Values already present in e are never overwritten.
func (e Env) Merge(other Env) Env {
	merged := make(Env, len(e)+len(other))
	for k, v := range e {
		merged[k] = v
	}
	for k, v := range other {
		if _, ok := merged[k]; ok {
			continue
		}
		merged[k] = v
	}
	return merged
}

// Expand replaces ${VAR} and $VAR references in s with values from e.
// Unknown variables expand to the empty string.
func (e Env) Expand(s string) string {
	return os.Expand(s, func(key string) string {
		return e[key]
	})
}

// ReadEnvFile parses a dotenv file without touching the process environment.
func ReadEnvFile(path string) (Env, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return Env(values), nil
}

// LoadEnv merges each env file into base in order. Files that do not exist
// are skipped; a file that exists but cannot be parsed is an error.
func LoadEnv(base Env, paths ...string) (Env, error) {
	env := base.Merge(nil)
	for _, path := range paths {
		if path == "" {
			continue
		}
		values, err := ReadEnvFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		env = env.Merge(values)
	}
	return env, nil
}

// DefaultEnvFiles returns the env files consulted on every run: example.env
// one level above the executable's directory, then the nearest .env found by
// FindDotEnv from the working directory.
func DefaultEnvFiles(exeDir, workDir string) []string {
	var paths []string
	if exeDir != "" {
		paths = append(paths, filepath.Join(exeDir, "..", ExampleEnvFile))
	}
	if workDir != "" {
		paths = append(paths, FindDotEnv(workDir))
	}
	return paths
}

// FindDotEnv walks from dir towards the filesystem root and returns the first
// .env file it finds. When there is none it returns dir/.env, which LoadEnv
// then skips as missing.
func FindDotEnv(dir string) string {
	for current := filepath.Clean(dir); ; {
		candidate := filepath.Join(current, DotEnvFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return filepath.Join(dir, DotEnvFile)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rickgao/pgcheck/internal/config"
	"github.com/rickgao/pgcheck/internal/database"
	"github.com/rickgao/pgcheck/internal/version"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	a := &app{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		env:      config.ProcessEnv(),
		envFiles: defaultEnvFiles(),
		dial:     database.Dial,
	}

	code := a.run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}

// app carries everything run reads from the outside world.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	env      config.Env
	envFiles []string
	dial     database.Dialer
}

// run verifies the database and returns the process exit code:
// 0 on success, 1 on any failure, 2 on bad usage.
func (a *app) run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet(version.Name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	configPath := fs.String("config", "", "path to optional YAML config file")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [-config file] [dsn]\n", version.Name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintln(a.stdout, version.String())
		return 0
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	env, err := config.LoadEnv(a.env, a.envFiles...)
	if err != nil {
		fmt.Fprintf(a.stderr, "load env files: %v\n", err)
		return 1
	}

	var fileCfg *config.FileConfig
	if *configPath != "" {
		fileCfg, err = config.LoadAndValidate(*configPath, env)
		if err != nil {
			fmt.Fprintf(a.stderr, "load config: %v\n", err)
			return 1
		}
		env, err = config.LoadEnv(env, fileCfg.EnvFiles...)
		if err != nil {
			fmt.Fprintf(a.stderr, "load env files: %v\n", err)
			return 1
		}
	}

	settings, err := config.ParseSettings(env)
	if err != nil {
		fmt.Fprintf(a.stderr, "load settings: %v\n", err)
		return 1
	}

	level, format := settings.Logging(fileCfg)
	logger := newLogger(a.stderr, level, format)
	slog.SetDefault(logger)

	var fallback string
	if fileCfg != nil && fileCfg.Database.Configured() {
		fallback = database.BuildConnString(fileCfg.Database)
	}
	dsn := config.ResolveDSN(fs.Arg(0), settings, fallback)

	logger.Info("starting verification",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	verifier := database.NewVerifier(
		database.WithDialer(a.dial),
		database.WithOutput(a.stdout, a.stderr),
		database.WithLogger(logger),
	)
	if _, err := verifier.Verify(ctx, dsn); err != nil {
		return 1
	}
	return 0
}

// newLogger builds the structured logger. Unknown levels fall back to warn
// and unknown formats to text.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func defaultEnvFiles() []string {
	var exeDir, workDir string
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		workDir = wd
	}
	return config.DefaultEnvFiles(exeDir, workDir)
}

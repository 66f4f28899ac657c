package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"svw.info/sokoban/internal/config"
	"svw.info/sokoban/internal/generator"
	"svw.info/sokoban/internal/infrastructure/storage"
	"svw.info/sokoban/internal/levels"
	"svw.info/sokoban/internal/ports"
	"svw.info/sokoban/internal/usecase"
	"svw.info/sokoban/internal/validator"
)

var (
	configPath  string
	logLevel    string
	storageKind string
	persistPath string
	seed        int64

	rootCmd = &cobra.Command{
		Use:           "sokoban",
		Short:         "Generate, check and serve box-pushing puzzle levels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.StringVar(&logLevel, "log-level", "", "debug|info|warn|error")
	pf.StringVar(&storageKind, "storage", "", "storage backend: fs|badger|memory")
	pf.StringVar(&persistPath, "persist-path", "", "storage directory")
	pf.Int64Var(&seed, "seed", 0, "base seed for generated levels (0 = clock)")

	rootCmd.AddCommand(serveCmd, levelCmd, checkCmd, batchCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("storage") {
		cfg.Storage.Kind = storageKind
	}
	if flags.Changed("persist-path") {
		cfg.Storage.Path = persistPath
	}
	if flags.Changed("seed") {
		cfg.Generator.Seed = seed
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}
	return cfg, cfg.Validate()
}

// app bundles the wired service with the resources it must release.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	uc     *usecase.Service
	closer io.Closer
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// wire builds providers → use cases from cfg. Logs go to logOut.
func wire(cfg config.Config, logOut io.Writer) (*app, error) {
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	f := validator.New()
	g := generator.NewRandomGenerator(f)
	g.MaxRegenerations = cfg.Generator.MaxRegenerations
	g.PlacementAttempts = cfg.Generator.PlacementAttempts
	g.Logger = logger
	src := levels.NewSource(g, cfg.Generator.Seed, logger)

	a := &app{cfg: cfg, logger: logger}
	var st ports.Storage
	switch cfg.Storage.Kind {
	case "badger", "memory":
		db, err := storage.OpenBadger(storage.BadgerConfig{
			Path:       cfg.Storage.Path,
			InMemory:   cfg.Storage.Kind == "memory",
			SyncWrites: true,
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}
		st, a.closer = db, db
	case "fs":
		st = storage.NewFS(cfg.Storage.Path)
	}

	a.uc = usecase.NewService(src, g, f, st)
	return a, nil
}

// setup wires the app for a one-shot command. Its logs go to stderr so
// stdout carries only the command's result.
func setup(cmd *cobra.Command) (*app, error) {
	return setupLogging(cmd, cmd.ErrOrStderr())
}

func setupLogging(cmd *cobra.Command, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return wire(cfg, logOut)
}

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath  string
	storagePath string
	logFile     string
	saveDir     string
	ephemeral   bool
	verbose     bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "quadrant",
		Short:        "Strategic quadrant chart editor for the terminal",
		Long:         "Place labeled points on a 2x2 chart, drag them with the mouse and edit them in a table. The chart is saved after every change.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig(opts.configPath)
			opts.apply(cmd, config)
			return run(cmd.Context(), config)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", defaultConfigPath(), "path to the YAML rc file")
	cmd.Flags().StringVar(&opts.storagePath, "store", "", "path to the SQLite storage file")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&opts.saveDir, "save-dir", "", "directory for exported charts")
	cmd.Flags().BoolVar(&opts.ephemeral, "ephemeral", false, "keep the chart in memory only")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// apply overrides config values with flags given on the command line.
func (o *rootOptions) apply(cmd *cobra.Command, config *Config) {
	flags := cmd.Flags()
	if flags.Changed("store") {
		config.StoragePath = o.storagePath
	}
	if flags.Changed("log-file") {
		config.LogFile = o.logFile
	}
	if flags.Changed("save-dir") {
		config.SaveDirectory = o.saveDir
	}
	if flags.Changed("ephemeral") {
		config.Ephemeral = o.ephemeral
	}
	if flags.Changed("verbose") {
		config.Verbose = o.verbose
	}
	config.normalize()
}

func run(ctx context.Context, config *Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, closeLog, err := newLogger(config.LogFile, config.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	var storage Storage
	if config.Ephemeral {
		storage = NewMemoryStorage()
	} else {
		db, err := OpenSQLiteStorage(config.StoragePath)
		if err != nil {
			return fmt.Errorf("failed to open storage %s: %w", config.StoragePath, err)
		}
		defer db.Close()
		storage = db
	}

	now := uint64(time.Now().UnixNano())
	seed := randomSeed(rand.New(rand.NewPCG(now, now>>32)))

	m := newModel(ctx, config, storage, logger, seed)
	if err := m.hydrate(); err != nil {
		logger.Error("hydration failed, starting from seed data", "error", err)
		m.errorMessage = err.Error()
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if fm, ok := final.(model); ok {
		fm.shutdown()
	}
	return err
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"t21dir/cmd/t21dir/browse"
	"t21dir/internal/config"
	"t21dir/internal/directory"
	"t21dir/internal/loader"
	"t21dir/internal/logging"
	"t21dir/internal/source"
	"t21dir/internal/state"
)

var (
	// Global flags
	verbose    bool
	configPath string
	sourceKind string
	dataDir    string
	timeout    time.Duration

	cfg    *config.Config
	logs   *logging.Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "t21dir",
	Short: "T21 - directory of resources for the Down syndrome community",
	Long: `t21dir browses the T21 directory: financial programs, healthcare and
therapy services, and inspiring individuals.

Run without arguments to start the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if sourceKind != "" {
			cfg.Source.Kind = config.SourceKind(sourceKind)
		}
		if dataDir != "" {
			cfg.Source.DataDir = dataDir
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logs, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger = logs.For(logging.CategoryBoot)
		logger.Debug("config loaded",
			zap.String("path", configPath),
			zap.String("source", string(cfg.Source.Kind)),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logs != nil {
			_ = logs.Sync()
		}
	},
	RunE: runBrowse,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&sourceKind, "source", "", "Data source: supabase, json, postgres, sqlite")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory of JSON exports (json source)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Startup load timeout")

	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search query")
	listCmd.Flags().StringArrayVarP(&listFacets, "facet", "f", nil, "Facet filter as name=value (repeatable)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", -1, "Rows to show (default: one page, 0: all)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runBrowse launches the interactive browser.
func runBrowse(cmd *cobra.Command, args []string) error {
	src, err := source.Open(cfg.Source, logs.For(logging.CategorySource))
	if err != nil {
		return err
	}
	defer src.Close()

	logger.Info("starting browser", zap.String("source", src.Name()))
	return browse.Run(browse.Config{
		Loader:    loader.New(src, logs.For(logging.CategoryLoader)),
		PageSizes: pageSizes(cfg),
		Debounce:  cfg.GetSearchDebounce(),
		Timeout:   timeout,
		DarkMode:  cfg.UI.DarkMode,
		Log:       logs.For(logging.CategoryBrowse),
		StoreLog:  logs.For(logging.CategoryStore),
	})
}

// loadDirectory performs the one-shot load used by the non-interactive
// commands.
func loadDirectory() (*directory.Collections, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if timeout > 0 {
		var tcancel context.CancelFunc
		ctx, tcancel = context.WithTimeout(ctx, timeout)
		defer tcancel()
	}

	src, err := source.Open(cfg.Source, logs.For(logging.CategorySource))
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return loader.New(src, logs.For(logging.CategoryLoader)).Load(ctx)
}

func pageSizes(c *config.Config) state.PageSizes {
	return state.PageSizes{
		Financial:   c.UI.PageSizes.Financial,
		Therapy:     c.UI.PageSizes.Therapy,
		Inspiration: c.UI.PageSizes.Inspiration,
	}
}

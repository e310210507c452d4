package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emergentai/formdocs/internal/assets"
	"github.com/emergentai/formdocs/internal/components"
	"github.com/emergentai/formdocs/internal/config"
	"github.com/emergentai/formdocs/internal/features"
	"github.com/emergentai/formdocs/internal/handlers"
	"github.com/emergentai/formdocs/internal/logger"
	"github.com/emergentai/formdocs/internal/metrics"
	"github.com/emergentai/formdocs/internal/styles"
)

// app is the state shared by subcommands once the root command has loaded
// configuration.
type app struct {
	envFiles []string
	cfg      *config.Config
	log      *zap.Logger
}

// NewRootCommand builds the formdocs command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "formdocs",
		Short: "Documentation website for the forms library",
		Long: `Serve or statically build the documentation homepage.

Configuration is read from the environment, after loading .env.local and .env
from the working directory when present.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "env files to load (default .env.local,.env)")

	rootCmd.AddCommand(
		newServeCommand(a),
		newBuildCommand(a),
		newCheckCommand(a),
		newListCommand(a),
	)
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) load() error {
	var missing []string
	config.LoadDotEnv(func(path string, err error) {
		missing = append(missing, path)
	}, a.envFiles...)

	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	for _, path := range missing {
		log.Debug("env file not loaded, using environment", zap.String("path", path))
	}

	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) site() components.Site {
	return components.Site{
		Title:     a.cfg.Site.Title,
		Tagline:   a.cfg.Site.Tagline,
		DocsPath:  a.cfg.Site.DocsPath,
		RepoURL:   a.cfg.Site.RepoURL,
		Copyright: a.cfg.Site.Copyright,
	}
}

func (a *app) pages(m *metrics.Metrics, cached bool) *handlers.Pages {
	opts := handlers.Options{
		Site:    a.site(),
		Section: components.NewFeatureSection(assets.DefaultIcons(), styles.Default(), a.cfg.FeatureColumns),
		Catalog: features.Default(),
		Metrics: m,
		Logger:  a.log,
	}
	if cached {
		opts.CacheTTL = a.cfg.PageCacheTTL
	}
	return handlers.NewPages(opts)
}

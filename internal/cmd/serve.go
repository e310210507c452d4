package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/emergentai/formdocs/internal/handlers"
	"github.com/emergentai/formdocs/internal/metrics"
	"github.com/emergentai/formdocs/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the website over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkCatalog(); err != nil {
				return err
			}

			fxApp := fx.New(
				fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
					return &fxevent.ZapLogger{Logger: log.Named("fx")}
				}),
				fx.Supply(a.cfg, a.log),
				fx.Provide(
					metrics.New,
					func(m *metrics.Metrics) *handlers.Pages {
						return a.pages(m, true)
					},
				),
				server.Module,
			)
			if err := fxApp.Err(); err != nil {
				return err
			}

			if err := fxApp.Start(cmd.Context()); err != nil {
				return err
			}

			// Done fires on SIGINT/SIGTERM.
			select {
			case <-fxApp.Done():
			case <-cmd.Context().Done():
			}

			stopCtx, cancel := context.WithTimeout(context.Background(), fxApp.StopTimeout())
			defer cancel()
			return fxApp.Stop(stopCtx)
		},
	}
}

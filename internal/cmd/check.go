package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emergentai/formdocs/internal/assets"
	"github.com/emergentai/formdocs/internal/features"
	"github.com/emergentai/formdocs/internal/styles"
)

// requiredStyles are the semantic names the page components look up.
var requiredStyles = []string{
	styles.HeroBanner,
	styles.Buttons,
	styles.Features,
	styles.FeatureSvg,
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every feature, icon and style resolves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkCatalog(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d features, %d icons, %d styles\n",
				features.Default().Len(), len(assets.IconIDs()), len(styles.Default().Names()))
			return nil
		},
	}
}

func (a *app) checkCatalog() error {
	if err := features.Default().Validate(assets.DefaultIcons()); err != nil {
		return fmt.Errorf("feature catalog is invalid: %w", err)
	}
	if err := styles.Default().Require(requiredStyles...); err != nil {
		return fmt.Errorf("style manifest is incomplete: %w", err)
	}
	return nil
}

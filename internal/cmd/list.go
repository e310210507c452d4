package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/emergentai/formdocs/internal/assets"
	"github.com/emergentai/formdocs/internal/features"
)

func newListCommand(a *app) *cobra.Command {
	var (
		output string
		icon   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the feature catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries := features.Default().Summaries()
			if icon != "" {
				id, err := assets.ParseIconID(icon)
				if err != nil {
					return err
				}
				summaries = slices.DeleteFunc(summaries, func(s features.Summary) bool {
					return s.Icon != id.String()
				})
			}
			w := cmd.OutOrStdout()

			switch output {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(summaries); err != nil {
					return err
				}
				return enc.Close()
			case "table":
				table := tablewriter.NewWriter(w)
				table.Header("#", "Title", "Icon", "Description")
				for _, s := range summaries {
					table.Append(strconv.Itoa(s.Key), s.Title, s.Icon, s.Description)
				}
				return table.Render()
			default:
				return fmt.Errorf("unknown output format %q (use table, json or yaml)", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", "table", "output format (table, json, yaml)")
	cmd.Flags().StringVar(&icon, "icon", "", "only list features using this icon (e.g. validations)")
	return cmd
}

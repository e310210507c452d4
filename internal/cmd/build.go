package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emergentai/formdocs/internal/assets"
	"github.com/emergentai/formdocs/internal/logger"
)

func newBuildCommand(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the website into a directory of static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.log.With(logger.Scope("build"))
			if err := a.checkCatalog(); err != nil {
				return err
			}

			pages := a.pages(nil, false)
			home, err := pages.RenderHome()
			if err != nil {
				return err
			}
			featuresJSON, err := pages.FeaturesJSON()
			if err != nil {
				return err
			}

			if err := writeFile(filepath.Join(outDir, "index.html"), home); err != nil {
				return err
			}
			if err := writeFile(filepath.Join(outDir, "api", "features.json"), featuresJSON); err != nil {
				return err
			}
			copied, err := copyFS(filepath.Join(outDir, "static"), assets.FS())
			if err != nil {
				return err
			}

			log.Info("site built",
				zap.String("out", outDir),
				zap.Int("static_files", copied),
				zap.Int("index_bytes", len(home)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Built site into %s (%d static files)\n", outDir, copied)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "build", "output directory")
	return cmd
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// copyFS copies every regular file of src below dir and returns the count.
func copyFS(dir string, src fs.FS) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dir, filepath.FromSlash(path)), data); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("failed to copy static files: %w", err)
	}
	return count, nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/layergen/internal/config"
	"github.com/danieljhkim/layergen/internal/engine"
)

var (
	genFormat     string
	genBackground string
	genSize       int
	genManifest   bool
	genDryRun     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render every layer combination",
	Long: `Render one composite per combination of layer options.

Layers are stacked lowest index first onto a blank canvas; each composite is
written to the output root as <ordinal>.<format>. The output root must
already exist. Existing files with matching names are overwritten and other
files are left untouched. The first failure aborts the run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		render, err := renderOptions()
		if err != nil {
			return err
		}

		eng := newEngine()
		ctx := context.Background()
		prog := newProgress(os.Stdout)

		req := &engine.GenerateRequest{
			Render:   render,
			Manifest: genManifest,
			DryRun:   genDryRun,
		}
		if !jsonOutput {
			req.OnStart = func(total int) {
				PrintInfo(fmt.Sprintf("Generating %d permutations of characters...", total))
			}
			req.OnRendered = prog.update
		}

		result, err := eng.Generate(ctx, req)
		prog.finish()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.DryRun {
			PrintWarning("Dry run: nothing was written")
			return nil
		}
		if result.Total == 0 {
			PrintEmptyState("No combinations: a layer has no options")
			return nil
		}

		PrintSuccess(fmt.Sprintf("Wrote %s to %s", PrintCount(result.Written, "composite", "composites"), result.OutDir))
		if result.ManifestPath != "" {
			PrintLabelValue("Manifest", result.ManifestPath)
		}
		PrintLabelValue("Elapsed", result.Duration.String())
		return nil
	},
}

// renderOptions builds render options from the generate flags.
func renderOptions() (config.RenderOptions, error) {
	opts := config.DefaultRenderOptions()

	format, err := config.ParseFormat(genFormat)
	if err != nil {
		return opts, err
	}
	opts.Format = format

	bg, err := config.ParseBackground(genBackground)
	if err != nil {
		return opts, err
	}
	opts.Background = bg
	opts.Size = genSize

	return opts, opts.Validate()
}

func init() {
	generateCmd.Flags().StringVar(&genFormat, "format", string(config.FormatPNG), "Output format: png, bmp or tiff")
	generateCmd.Flags().StringVar(&genBackground, "background", config.DefaultBackground, "Canvas colour as #rrggbb")
	generateCmd.Flags().IntVar(&genSize, "size", config.DefaultSize, "Canvas width and height in pixels")
	generateCmd.Flags().BoolVar(&genManifest, "manifest", false, "Write manifest.json mapping each composite to its options")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Count combinations without rendering")
}

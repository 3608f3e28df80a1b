package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/layergen/internal/config"
	"github.com/danieljhkim/layergen/internal/engine"
)

var (
	planLimit  int
	planFormat string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show which options each output file will combine",
	Long: `Enumerate combinations in ordinal order without rendering anything.
Each line shows the output filename and the option chosen from every layer.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := config.ParseFormat(planFormat)
		if err != nil {
			return err
		}

		eng := newEngine()
		result, err := eng.Plan(context.Background(), &engine.PlanRequest{
			Format: format,
			Limit:  planLimit,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Entries) == 0 {
			PrintEmptyState("No combinations")
			return nil
		}

		PrintSubsection(strings.Join(result.Layers, " / "))
		for _, e := range result.Entries {
			PrintInfo(fmt.Sprintf("  %-10s %s", e.File, strings.Join(e.Options, " / ")))
		}
		if len(result.Entries) < result.Total {
			PrintEmptyState(fmt.Sprintf("... %d more", result.Total-len(result.Entries)))
		}
		return nil
	},
}

func init() {
	planCmd.Flags().IntVar(&planLimit, "limit", 0, "Show at most this many combinations (0 for all)")
	planCmd.Flags().StringVar(&planFormat, "format", string(config.FormatPNG), "Output format used for filenames")
}

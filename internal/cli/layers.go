package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/layergen/internal/engine"
)

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "List layers and their options",
	Long:  `Display every layer in render order with its index and option count.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine()

		result, err := eng.Layers(context.Background(), &engine.LayersRequest{})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection(fmt.Sprintf("Layers in %s", result.Root))
		if len(result.Layers) == 0 {
			PrintEmptyState("No layer directories found")
			return nil
		}

		rows := make([][]string, 0, len(result.Layers))
		for _, l := range result.Layers {
			rows = append(rows, []string{
				strconv.Itoa(int(l.Index)),
				l.Name,
				l.DirName,
				strconv.Itoa(len(l.Options)),
			})
		}
		PrintTable([]string{"INDEX", "NAME", "DIRECTORY", "OPTIONS"}, rows)
		fmt.Println()
		PrintLabelValue("Combinations", strconv.Itoa(result.Total))
		return nil
	},
}

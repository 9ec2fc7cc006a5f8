// List command prints known crystal frequencies with optional range filter.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quartz/pkg/xtal"
)

var (
	flagListMin string
	flagListMax string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known crystal frequencies",
	Long: `List prints every known crystal frequency in ascending order,
optionally restricted to a range.

Example:
  quartz list
  quartz list --min 14MHz --max 15MHz --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListMin, "min", "", "lowest frequency to include")
	listCmd.Flags().StringVar(&flagListMax, "max", "", "highest frequency to include")
}

func runList(cmd *cobra.Command, args []string) error {
	min, max := xtal.Min(), xtal.Max()
	if flagListMin != "" {
		hz, err := parseFreqArg(flagListMin)
		if err != nil {
			return err
		}
		min = hz
	}
	if flagListMax != "" {
		hz, err := parseFreqArg(flagListMax)
		if err != nil {
			return err
		}
		max = hz
	}

	var selected []float64
	for _, hz := range xtal.Known() {
		if hz >= min && hz <= max {
			selected = append(selected, hz)
		}
	}

	if flagJSON {
		out, err := json.MarshalIndent(selected, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal frequencies: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, hz := range selected {
		fmt.Printf("%12.0f  %s\n", hz, xtal.FormatFrequency(hz))
	}
	fmt.Printf("%d known crystals\n", len(selected))
	return nil
}

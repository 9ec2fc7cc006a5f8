// Nearest command reports the closest known crystals without aborting.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quartz/pkg/xtal"
)

var nearestCmd = &cobra.Command{
	Use:   "nearest <frequency>",
	Short: "Show the nearest known crystals to a frequency",
	Long: `Nearest checks a frequency and, when it does not match a known
crystal, reports the nearest legitimate values on either side. Unlike
"check" this never aborts; the exit status is zero either way.

Example:
  quartz nearest 14317000
  quartz nearest 14.317MHz --json`,
	Args: cobra.ExactArgs(1),
	RunE: runNearest,
}

// nearestReport is the JSON shape of a nearest query result.
type nearestReport struct {
	Frequency float64  `json:"frequency"`
	Match     bool     `json:"match"`
	Low       *float64 `json:"low,omitempty"`
	High      *float64 `json:"high,omitempty"`
}

func runNearest(cmd *cobra.Command, args []string) error {
	hz, err := parseFreqArg(args[0])
	if err != nil {
		return err
	}

	v := xtal.New()
	report := nearestReport{Frequency: hz, Match: v.Check(hz)}
	if !report.Match {
		b := v.Bracket()
		if b.HasLow {
			low := b.Low
			report.Low = &low
		}
		if b.HasHigh {
			high := b.High
			report.High = &high
		}
	}

	if flagJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if report.Match {
		fmt.Printf("%s is a known crystal\n", xtal.FormatFrequency(hz))
		return nil
	}
	fmt.Printf("%s is not a known crystal\n", xtal.FormatFrequency(hz))
	if report.Low != nil {
		fmt.Printf("  below: %s\n", xtal.FormatFrequency(*report.Low))
	}
	if report.High != nil {
		fmt.Printf("  above: %s\n", xtal.FormatFrequency(*report.High))
	}
	return nil
}

// Check command validates frequencies, aborting on the first mismatch.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quartz/pkg/xtal"
)

var flagCheckContext string

var checkCmd = &cobra.Command{
	Use:   "check <frequency>...",
	Short: "Validate frequencies against the known crystal list",
	Long: `Check validates each frequency against the list of known crystals.

An unknown frequency is treated as a data error: check prints a diagnostic
with the nearest legitimate values and aborts immediately. Use "nearest"
for a non-fatal report.

Frequencies accept plain Hz or a unit suffix:

Example:
  quartz check 14318181
  quartz check 14.31818MHz 32.768kHz --context "galaga/maincpu"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagCheckContext, "context", "command line", "context string included in failure diagnostics")
}

func runCheck(cmd *cobra.Command, args []string) error {
	v := xtal.New()
	for _, arg := range args {
		hz, err := parseFreqArg(arg)
		if err != nil {
			return err
		}
		// Terminal on mismatch: Validate never returns control for an
		// unknown crystal value.
		v.Validate(hz, flagCheckContext)
		fmt.Printf("%s: ok (%s)\n", arg, xtal.FormatFrequency(hz))
	}
	return nil
}

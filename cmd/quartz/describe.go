// Describe command looks up crystal documentation in the catalog.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quartz/internal/catalog"
	"github.com/mesh-intelligence/quartz/pkg/xtal"
)

var flagDescribeSearch bool

var describeCmd = &cobra.Command{
	Use:   "describe <frequency|term>",
	Short: "Show catalog documentation for a crystal",
	Long: `Describe looks a frequency up in the crystal catalog and prints its
canonical name and usage notes. With --search the argument is treated as a
free-text term matched against names and notes instead.

Example:
  quartz describe 32.768kHz
  quartz describe MSM5205 --search`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().BoolVar(&flagDescribeSearch, "search", false, "search names and notes instead of exact frequency lookup")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cat, err := attachCatalog()
	if err != nil {
		return err
	}
	defer cat.Detach()

	var entries []catalog.Entry
	if flagDescribeSearch {
		entries, err = cat.Search(args[0])
		if err != nil {
			return fmt.Errorf("search catalog: %w", err)
		}
		if len(entries) == 0 {
			return fmt.Errorf("no catalog entry matches %q", args[0])
		}
	} else {
		hz, err := parseFreqArg(args[0])
		if err != nil {
			return err
		}
		entry, err := cat.Lookup(hz)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return fmt.Errorf("%s is not a documented crystal (try \"quartz nearest %s\")", args[0], args[0])
			}
			return fmt.Errorf("lookup catalog: %w", err)
		}
		entries = []catalog.Entry{*entry}
	}

	if flagJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entries: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s (%s)\n", e.Name, xtal.FormatFrequency(e.Hz))
		if e.Notes != "" && e.Notes != "-" {
			fmt.Printf("  %s\n", e.Notes)
		}
	}
	return nil
}

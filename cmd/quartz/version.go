// Version command for the quartz CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quartz/pkg/xtal"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quartz version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quartz", xtal.Version)
	},
}

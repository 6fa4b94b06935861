package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionColor = color.New(color.FgGreen, color.Bold)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the linkmarkup version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := prepare(cmd); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "linkmarkup %s\n", versionColor.Sprint(Version))
		return nil
	},
}

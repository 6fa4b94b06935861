package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riverfjs/linkmarkup-go"
)

// Version is the CLI version; override with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "linkmarkup",
	Short: "Scan, convert and import link label markup",
	Long: `linkmarkup reads label text carrying <a> and <a href="..."> runs and
prints the plain and link segments a widget would show.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file (default ./"+defaultConfigFile+" if present)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("mnemonics", false, "treat '&' as a mnemonic marker: scan and convert strip it, import escapes literal '&'")
	rootCmd.PersistentFlags().Bool("normalize", false, "NFC-normalize input before scanning")
	rootCmd.PersistentFlags().Bool("log-discards", false, "log every dropped markup span to stderr")
}

// main sets the version and executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		linkmarkup.Logger.Printf("%v", err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// prepare resolves settings for cmd and configures color output.
func prepare(cmd *cobra.Command) (settings, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return settings{}, err
	}
	color.NoColor = !s.useColor(os.Stdout)
	return s, nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsxwrap/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jsxwrap",
	Short: "Multiline JSX parentheses checker",
	Long:  `jsxwrap finds multiline JSX expressions that are not wrapped in parentheses and can rewrite them in place`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to collect (0=config or default)")
	rootCmd.PersistentFlags().String("config", "", "path to jsxwrap.toml (default: search upward from the target)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(colorFlag string, f *os.File) bool {
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsxwrap/internal/diag"
	"jsxwrap/internal/diagfmt"
	"jsxwrap/internal/driver"
	"jsxwrap/internal/lexer"
	"jsxwrap/internal/source"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.jsx",
	Short: "Tokenize a JSX source file",
	Long:  `Tokens breaks down a JSX source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = driver.DefaultMaxDiagnostics
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(fs.Get(fileID), lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	// lexer problems go to stderr, the token dump stays clean on stdout
	if bag.Len() > 0 {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		opts := diagfmt.PrettyOpts{
			Color:   useColor(colorFlag, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, bag, fs, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fs)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

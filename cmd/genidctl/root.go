package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/genid/cmd/genidctl/logger"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	widthName string
	logDir    string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "genidctl",
	Short: "Encode and decode generational handles",
	Long: `genidctl converts 64-bit generational handles to and from their
kind, counter and slot fields, and prints the bit layout of each width class.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closeFn, err := logger.Init(logger.Options{
			Enabled: verbose || logDir != "",
			Writer:  os.Stderr,
			LogDir:  logDir,
		})
		if err != nil {
			return fmt.Errorf("failed to initialise logging: %w", err)
		}
		closeLog = closeFn
		logger.Debug("command start", "command", cmd.Name(), "width", widthName, "args", args)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVarP(&widthName, "width", "w", "small", "Width class: narrow, small, medium, wide (or kind2..kind16)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to a dated file in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/genid/pkg/genid"
)

func init() {
	rootCmd.AddCommand(newLayoutCmd())
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the bit layout of every width class",
		Long: `The layout command prints, for each width class, the number of kind and
counter bits, the kind cardinality and the largest counter value.

Example:
  genidctl layout
  genidctl layout --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout()
		},
	}
	return cmd
}

func runLayout() error {
	layouts := genid.Layouts()
	if jsonOut {
		return printJSON(layouts)
	}
	if quiet {
		return nil
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stdout, "%-8s %5s %5s %8s %15s\n", "CLASS", "KIND", "CTR", "KINDS", "MAX COUNTER")
	for _, l := range layouts {
		p.Fprintf(os.Stdout, "%-8s %5d %5d %8d %15d\n",
			l.Name, l.KindBits, l.CounterBits, l.KindCardinality, l.MaxCounter)
	}
	return nil
}

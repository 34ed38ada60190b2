package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/genid/cmd/genidctl/logger"
)

func init() {
	rootCmd.AddCommand(newDecodeCmd())
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <handle>...",
		Short: "Split handles into kind, counter and slot",
		Long: `The decode command splits one or more 64-bit handles into their fields.
Handles may be decimal or 0x-prefixed hex.

Example:
  genidctl decode 0x800000010000000A --width narrow
  genidctl decode 4026531940 17179869185 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
	return cmd
}

func runDecode(args []string) error {
	c, err := codecFor(widthName)
	if err != nil {
		return err
	}

	infos := make([]handleInfo, 0, len(args))
	for _, arg := range args {
		v, err := parseHandle(arg)
		if err != nil {
			return err
		}
		info := c.decode(v)
		logger.Debug("decoded handle", "value", v, "kind", info.Kind, "counter", info.Counter, "slot", info.Slot)
		infos = append(infos, info)
	}

	if jsonOut {
		return printJSON(infos)
	}

	printVerbose("Width class %s: %d kind bits, %d counter bits\n",
		c.layout().Name, c.layout().KindBits, c.layout().CounterBits)
	for _, info := range infos {
		printInfo("%s  kind=%d counter=%d slot=%d\n", info.Hex, info.Kind, info.Counter, info.Slot)
	}
	return nil
}

// formatFields is shared by encode and bump text output.
func formatFields(info handleInfo) string {
	return fmt.Sprintf("%d (%s)  kind=%d counter=%d slot=%d",
		info.Value, info.Hex, info.Kind, info.Counter, info.Slot)
}

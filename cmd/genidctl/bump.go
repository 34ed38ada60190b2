package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/genid/cmd/genidctl/logger"
)

var (
	bumpDelta  uint32
	bumpStrict bool
)

func init() {
	cmd := newBumpCmd()
	cmd.Flags().Uint32VarP(&bumpDelta, "delta", "d", 1, "Amount to add to the counter")
	cmd.Flags().BoolVar(&bumpStrict, "strict", false, "Fail instead of wrapping when the counter overflows")
	rootCmd.AddCommand(cmd)
}

func newBumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump <handle>",
		Short: "Increment a handle's generation counter",
		Long: `The bump command adds delta to the counter of a handle, keeping its kind and
slot, as an owning table does when it recycles a slot. The counter wraps
within its field unless --strict is set.

Example:
  genidctl bump 0x4000000100000005
  genidctl bump 0x7FFFFFFF00000000 --width narrow --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBump(args)
		},
	}
	return cmd
}

func runBump(args []string) error {
	c, err := codecFor(widthName)
	if err != nil {
		return err
	}

	v, err := parseHandle(args[0])
	if err != nil {
		return err
	}

	info, err := c.bump(v, bumpDelta, bumpStrict)
	if err != nil {
		return fmt.Errorf("failed to bump: %w", err)
	}

	before := c.decode(v)
	if info.Counter < before.Counter {
		logger.Warn("counter wrapped", "before", before.Counter, "after", info.Counter, "delta", bumpDelta)
	}

	if jsonOut {
		return printJSON(info)
	}
	printVerbose("before: %s\n", formatFields(before))
	printInfo("%s\n", formatFields(info))
	return nil
}

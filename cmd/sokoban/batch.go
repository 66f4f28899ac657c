package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	batchFrom, batchTo int
	batchWorkers       int
	batchSave          bool

	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Resolve a range of levels concurrently",
		RunE:  runBatch,
	}
)

func init() {
	f := batchCmd.Flags()
	f.IntVar(&batchFrom, "from", 1, "first level")
	f.IntVar(&batchTo, "to", 20, "last level")
	f.IntVar(&batchWorkers, "workers", runtime.NumCPU(), "max concurrent generations")
	f.BoolVar(&batchSave, "save", false, "store every layout")
}

func runBatch(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ls, err := a.uc.Batch(cmd.Context(), batchFrom, batchTo, batchWorkers)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, l := range ls {
		key := "-"
		if batchSave {
			r, err := a.uc.Save(cmd.Context(), l, fmt.Sprintf("level-%d", l.ID))
			if err != nil {
				return err
			}
			key = r.Key
		}
		fmt.Fprintf(out, "%4d  %2dx%-2d  difficulty %2d  seed %d  %s\n",
			l.ID, l.Width, l.Height, l.Difficulty, l.Seed, key)
	}
	return nil
}

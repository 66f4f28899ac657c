package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"svw.info/sokoban/internal/domain"
)

var (
	levelJSON bool
	levelSave string

	levelCmd = &cobra.Command{
		Use:   "level N",
		Short: "Print the layout for level N",
		Args:  cobra.ExactArgs(1),
		RunE:  runLevel,
	}
)

func init() {
	levelCmd.Flags().BoolVar(&levelJSON, "json", false, "print the layout as JSON")
	levelCmd.Flags().StringVar(&levelSave, "save", "", "also store the layout under this name")
}

func runLevel(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("%w: %q", domain.ErrInvalidLevel, args[0])
	}
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	l, st, err := a.uc.Level(cmd.Context(), n)
	if err != nil {
		return err
	}
	if levelSave != "" {
		r, err := a.uc.Save(cmd.Context(), l, levelSave)
		if err != nil {
			return err
		}
		a.logger.Info("saved", "key", r.Key, "level", n)
	}

	out := cmd.OutOrStdout()
	if levelJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}
	fmt.Fprintf(out, "level %d  %dx%d  difficulty %d  attempts %d  accepted %t\n",
		l.ID, l.Width, l.Height, l.Difficulty, st.Attempts, st.Accepted)
	fmt.Fprintln(out, l.String())
	return nil
}

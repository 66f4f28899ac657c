package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/validator"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Run the feasibility filter on a layout file (\"-\" reads stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

// errRejected makes a rejected layout exit non-zero.
var errRejected = errors.New("layout rejected")

func runCheck(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	rows, err := readRows(r)
	if err != nil {
		return err
	}
	l, err := domain.ParseLayout(0, 0, rows)
	if err != nil {
		return err
	}

	v, err := validator.New().Validate(cmd.Context(), l)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "boxes %d  targets %d\n", v.Boxes, v.Targets)
	if v.OK {
		fmt.Fprintln(out, "ok")
		return nil
	}
	if v.Trapped != nil {
		fmt.Fprintf(out, "rejected: %s at (%d,%d)\n", v.Reason, v.Trapped.X, v.Trapped.Y)
	} else {
		fmt.Fprintf(out, "rejected: %s\n", v.Reason)
	}
	return errRejected
}

// readRows reads layout rows, dropping trailing blank lines and CRs.
func readRows(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <model.yaml> <solution.txt>",
	Short: "Map a flat solution vector back to labeled values",
	Long: `Read whitespace-separated floats — one per model.x<i>, in index
order — and print them under the variable and cell labels the manifest
declares.

Example:
  cgekit decode model.yaml solution.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := LoadManifest(args[0])
		if err != nil {
			return err
		}
		reg, err := m.Build()
		if err != nil {
			return err
		}

		solution, err := readSolution(args[1])
		if err != nil {
			return err
		}
		if len(solution) != reg.NVars() {
			return fmt.Errorf("solution has %d values, model has %d variables",
				len(solution), reg.NVars())
		}

		for i, v := range solution {
			name, row, col, err := reg.LabelAt(i)
			if err != nil {
				return err
			}
			switch {
			case col != "":
				fmt.Printf("%s[%s,%s] = %g\n", name, row, col, v)
			case row != "":
				fmt.Printf("%s[%s] = %g\n", name, row, v)
			default:
				fmt.Printf("%s = %g\n", name, v)
			}
		}
		return nil
	},
}

// readSolution parses whitespace-separated floats from path.
func readSolution(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read solution: %w", err)
	}
	defer f.Close()

	var out []float64
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("solution value %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read solution: %w", err)
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var boundsOut string

var boundsCmd = &cobra.Command{
	Use:   "bounds <model.yaml>",
	Short: "Emit solver variable declarations for a manifest",
	Long: `Emit one Var declaration per flat model slot, in index order,
followed by the Objective declaration when the manifest names one.

Example:
  cgekit bounds model.yaml -o model_vars.py`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := LoadManifest(args[0])
		if err != nil {
			return err
		}
		reg, err := m.Build()
		if err != nil {
			return err
		}

		w := io.Writer(os.Stdout)
		if boundsOut != "" {
			f, err := os.Create(boundsOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		if err := reg.WriteBounds(w); err != nil {
			return err
		}
		if m.Objective != "" {
			return reg.WriteObjective(w, m.Objective)
		}
		return nil
	},
}

func init() {
	boundsCmd.Flags().StringVarP(&boundsOut, "output", "o", "",
		"write declarations to a file instead of stdout")
	rootCmd.AddCommand(boundsCmd)
}

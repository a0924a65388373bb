// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "cgekit",
	Short: "Inspect CGE model variable layouts",
	Long: `cgekit works on YAML model manifests: label sets plus variable
shapes. It can emit the solver variable declarations for a manifest and
decode a flat solution vector back into labeled values.

The manifest format:

  labels:
    sectors: [GOODS, TRADE]
    households: [HH1, HH2]
  variables:
    - name: CH
      rows: sectors
      cols: households
      initial: 10
      lower: 0
    - name: Y
      rows: households
      initial: {HH1: 75, HH2: 35}
    - name: SPI
  objective: SPI`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

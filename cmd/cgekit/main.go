// SPDX-License-Identifier: MIT

// Command cgekit inspects CGE model manifests: it materializes the
// variable layout of a model described in YAML and serializes or
// decodes it without writing any Go.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

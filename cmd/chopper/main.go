// Command chopper is a reference CLI front end for the chopper slicing
// module: load an STL mesh, slice it under a print profile, and emit
// G-code (§2, §6).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chopper",
		Short: "A fixed-point 3D-printing slicer",
	}

	root.AddCommand(infoCmd())
	root.AddCommand(sliceCmd())

	return root
}

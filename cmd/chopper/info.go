package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slicestack/chopper/mesh"
)

func infoCmd() *cobra.Command {
	var layerHeight float64

	cmd := &cobra.Command{
		Use:   "info <file.stl>",
		Short: "Print mesh bounds and the layer count at a given layer height",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			verts, tris, err := loadSTL(f)
			if err != nil {
				return err
			}
			m, err := mesh.NewMesh(verts, tris)
			if err != nil {
				return err
			}

			fmt.Printf("File: %s\n", args[0])
			fmt.Printf("Triangles: %d\n", len(m.Triangles))
			fmt.Printf("Vertices: %d\n", len(m.Vertices))
			fmt.Printf("Bounds: %+v - %+v\n", m.Bounds.Min, m.Bounds.Max)
			fmt.Printf("Layers at %gmm: %d\n", layerHeight, m.LayerCount(layerHeight))

			return nil
		},
	}

	cmd.Flags().Float64Var(&layerHeight, "layer-height", 0.2, "layer height in mm")

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/slicestack/chopper/config"
	"github.com/slicestack/chopper/debugsvg"
	"github.com/slicestack/chopper/gcode"
	"github.com/slicestack/chopper/mesh"
	"github.com/slicestack/chopper/model"
	"github.com/slicestack/chopper/pipeline"
	"github.com/slicestack/chopper/progress"
)

func sliceCmd() *cobra.Command {
	var (
		outPath            string
		layerHeight        float64
		shellThickness     float64
		topBottomThickness float64
		infillDensity      float64
		printSpeed         float64
		verbose            bool
		debugSVGLayer      int
		debugSVGPath       string
	)

	cmd := &cobra.Command{
		Use:   "slice <file.stl>",
		Short: "Slice an STL mesh into G-code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer in.Close()

			verts, tris, err := loadSTL(in)
			if err != nil {
				return err
			}
			m, err := mesh.NewMesh(verts, tris)
			if err != nil {
				return err
			}

			profile := config.Defaults(
				config.WithLayerHeight(layerHeight),
				config.WithShellThickness(shellThickness),
				config.WithTopBottomThickness(topBottomThickness),
				config.WithInfillDensity(infillDensity),
			)
			profile.PrintSpeed = printSpeed

			logLevel := zerolog.WarnLevel
			if verbose {
				logLevel = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(logLevel).With().Timestamp().Logger()

			// pipeline.Run reports its seven stages through prog.
			prog := progress.New(7, func(pct float64) {
				fmt.Fprintf(os.Stderr, "\rslicing: %5.1f%%", pct)
			})

			mi, err := pipeline.Run(m, profile, log, prog)
			if err != nil {
				return fmt.Errorf("slice: %w", err)
			}
			fmt.Fprintln(os.Stderr)

			if debugSVGLayer >= 0 && debugSVGLayer < len(mi.Layers) {
				if err := writeDebugSVG(mi.Layers[debugSVGLayer], profile, debugSVGPath); err != nil {
					return fmt.Errorf("debug svg: %w", err)
				}
			}

			out, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			return gcode.NewWriter(out, profile).Write(mi)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output G-code path (default stdout)")
	cmd.Flags().Float64Var(&layerHeight, "layer-height", 0.2, "layer height in mm")
	cmd.Flags().Float64Var(&shellThickness, "shell-thickness", 0.8, "shell thickness in mm")
	cmd.Flags().Float64Var(&topBottomThickness, "top-bottom-thickness", 0.8, "top/bottom solid thickness in mm")
	cmd.Flags().Float64Var(&infillDensity, "infill-density", 20, "infill density percent")
	cmd.Flags().Float64Var(&printSpeed, "print-speed", 60, "print speed in mm/s")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().IntVar(&debugSVGLayer, "debug-svg-layer", -1, "write an SVG preview of this layer index (-1 disables)")
	cmd.Flags().StringVar(&debugSVGPath, "debug-svg-output", "layer.svg", "path for --debug-svg-layer's SVG preview")

	return cmd
}

func openOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func writeDebugSVG(layer model.LayerComponent, profile config.Profile, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	debugsvg.RenderLayer(f, layer, int(profile.BedWidth), int(profile.BedLength))

	return nil
}

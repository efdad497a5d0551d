package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/slicestack/chopper/config"
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/infill"
	"github.com/slicestack/chopper/infillregion"
	"github.com/slicestack/chopper/island"
	"github.com/slicestack/chopper/mesh"
	"github.com/slicestack/chopper/model"
	"github.com/slicestack/chopper/progress"
	"github.com/slicestack/chopper/shell"
	"github.com/slicestack/chopper/skirt"
	"github.com/slicestack/chopper/sliceplane"
	"github.com/slicestack/chopper/toolpath"
	"github.com/slicestack/chopper/topbottom"
)

// stepCount is the number of major stages reported to progress.Progressor:
// slice+islands, shells, top/bottom, infill regions, skirt, fill lines,
// tool-path (§2, §5).
const stepCount = 7

// Run drives the whole slicing pipeline over m under profile, reporting
// progress through prog (nil is accepted) and logging stage boundaries
// through log. It returns the populated MeshInfo ready for gcode.Writer.
func Run(m *mesh.Mesh, profile config.Profile, log zerolog.Logger, prog *progress.Progressor) (*model.MeshInfo, error) {
	if prog == nil {
		prog = progress.New(stepCount, nil)
	}

	layerCount := m.LayerCount(profile.LayerHeight)
	mi := model.NewMeshInfo(layerCount, profile.LayerHeight)
	log.Info().Int("layers", layerCount).Msg("starting slice")

	if err := sliceAndChain(m, mi, profile, prog); err != nil {
		return nil, err
	}
	if err := buildShells(mi, profile, prog); err != nil {
		return nil, err
	}

	prog.StartNextStep(1)
	k := topbottom.KFromThickness(profile.TopBottomThickness, profile.LayerHeight)
	if err := topbottom.Run(mi.Layers, k, config.NozzleWidth, profile.TravelSpeed, profile.InfillSpeed, geom2d.NewEngine()); err != nil {
		return nil, fmt.Errorf("pipeline: top/bottom pass: %w", err)
	}
	prog.CompleteStepPart()

	if err := buildInfillRegions(mi, profile, prog); err != nil {
		return nil, err
	}
	if err := buildSkirt(mi, profile, prog); err != nil {
		return nil, err
	}

	prog.StartNextStep(layerCount)
	for i := range mi.Layers {
		infill.TrimLayer(mi.Layers[i].Islands, i, profile.InfillDensity, config.NozzleWidth)
		prog.CompleteStepPart()
	}

	prog.StartNextStep(1)
	toolpath.Plan(mi, profile.LayerHeight, toolpath.Settings{
		MoveSpeed:          profile.TravelSpeed,
		RetractionSpeed:    profile.RetractionSpeed,
		RetractionDistance: profile.RetractionDistance,
	})
	prog.CompleteStepPart()

	log.Info().Msg("slice complete")

	return mi, nil
}

func sliceAndChain(m *mesh.Mesh, mi *model.MeshInfo, profile config.Profile, prog *progress.Progressor) error {
	prog.StartNextStep(len(mi.Layers))

	errs := make([]error, len(mi.Layers))
	parallelFor(len(mi.Layers), func(i int) {
		z := (float64(i) + 0.5) * profile.LayerHeight
		segs, faceToSeg := sliceplane.SliceLayer(m, z)

		engine := geom2d.NewEngine()
		islands, err := island.Build(m, segs, faceToSeg, engine)
		if err != nil {
			errs[i] = fmt.Errorf("pipeline: layer %d: %w", i, err)
			return
		}

		mi.Layers[i].SliceSegments = segs
		mi.Layers[i].FaceToSegmentIndex = faceToSeg
		mi.Layers[i].Islands = islands
		prog.CompleteStepPart()
	})

	return firstErr(errs)
}

func buildShells(mi *model.MeshInfo, profile config.Profile, prog *progress.Progressor) error {
	prog.StartNextStep(len(mi.Layers))
	shellCount := profile.ShellCount()

	errs := make([]error, len(mi.Layers))
	parallelFor(len(mi.Layers), func(i int) {
		engine := geom2d.NewEngine()
		for j := range mi.Layers[i].Islands {
			isle := &mi.Layers[i].Islands[j]
			if err := shell.Build(isle, config.NozzleWidth, shellCount, profile.PrintSpeed, engine); err != nil {
				errs[i] = fmt.Errorf("pipeline: layer %d island %d shell: %w", i, j, err)
				return
			}
		}
		prog.CompleteStepPart()
	})

	return firstErr(errs)
}

func buildInfillRegions(mi *model.MeshInfo, profile config.Profile, prog *progress.Progressor) error {
	prog.StartNextStep(len(mi.Layers))

	errs := make([]error, len(mi.Layers))
	parallelFor(len(mi.Layers), func(i int) {
		engine := geom2d.NewEngine()
		for j := range mi.Layers[i].Islands {
			isle := &mi.Layers[i].Islands[j]
			if err := infillregion.Build(isle, profile.InfillSpeed, engine); err != nil {
				errs[i] = fmt.Errorf("pipeline: layer %d island %d infill region: %w", i, j, err)
				return
			}
		}
		prog.CompleteStepPart()
	})

	return firstErr(errs)
}

func buildSkirt(mi *model.MeshInfo, profile config.Profile, prog *progress.Progressor) error {
	prog.StartNextStep(1)
	defer prog.CompleteStepPart()

	if len(mi.Layers) == 0 {
		return nil
	}

	engine := geom2d.NewEngine()
	if err := skirt.Build(&mi.Layers[0], profile.SkirtLineCount, profile.SkirtDistance, config.NozzleWidth, profile.FirstLineSpeed, engine); err != nil {
		return fmt.Errorf("pipeline: skirt: %w", err)
	}

	return nil
}

func firstErr(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

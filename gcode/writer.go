package gcode

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/slicestack/chopper/config"
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// extrusionCalibrationDivisor is the source engine's uncalibrated "/5"
// factor in the extrusion-distance formula (§6, §9 Open Questions). It
// is carried forward empirically, not derived.
const extrusionCalibrationDivisor = 5

// Writer renders a MeshInfo's planned tool-paths as G-code text.
type Writer struct {
	w       io.Writer
	profile config.Profile

	haveX, haveY, haveZ, haveF bool
	x, y, z, f                 float64

	currentE  float64
	retracted bool

	err error
}

// NewWriter returns a Writer that emits G-code for profile to w.
func NewWriter(w io.Writer, profile config.Profile) *Writer {
	return &Writer{w: w, profile: profile}
}

// Write renders mi in full: preamble, every layer's initial travels and
// island segments, and the postamble. It returns the first write error
// encountered, if any.
func (gw *Writer) Write(mi *model.MeshInfo) error {
	gw.preamble()

	for i, layer := range mi.Layers {
		gw.line(fmt.Sprintf(";Layer: %d", i))

		for _, t := range layer.InitialTravels {
			gw.travel(t)
		}

		for _, seg := range layer.SkirtSegments {
			for _, ts := range seg.ToolSegments {
				gw.toolSegment(ts)
			}
		}

		for _, isle := range layer.Islands {
			for _, seg := range isle.Segments {
				for _, ts := range seg.ToolSegments {
					gw.toolSegment(ts)
				}
			}
		}
	}

	gw.postamble()

	return gw.err
}

func (gw *Writer) preamble() {
	gw.raw("G21")
	gw.raw("G90")
	gw.raw("G28")
	if gw.profile.PrintTemperature > 0 {
		gw.raw(fmt.Sprintf("M109 T0 S%g", gw.profile.PrintTemperature))
	}
	gw.raw("G92 E0")
	gw.raw("G1 F600")
}

func (gw *Writer) postamble() {
	gw.raw("M104 S0")
	gw.raw("G91")
	gw.raw("G1 E-5 F4800")
	gw.raw("G1 Z+0.5 X-15 Y-15 F4800")
	gw.raw("G28 X0 Y0")
}

func (gw *Writer) toolSegment(ts model.ToolSegment) {
	switch ts.Kind {
	case model.ToolRetract:
		gw.retract(ts)
	case model.ToolTravel:
		gw.travel(ts)
	case model.ToolExtrude:
		gw.extrude(ts)
	}
}

func (gw *Writer) retract(ts model.ToolSegment) {
	// RetractDistance is already a plain mm length (model.ToolSegment's
	// convention throughout this package), not a fixed-point coordinate,
	// so it needs no Scale division here.
	gw.currentE -= ts.RetractDistance
	gw.retracted = true

	fToken := ""
	if !gw.haveF || ts.Speed != gw.f {
		fToken = fmt.Sprintf(" F%s", fnum(ts.Speed))
		gw.f, gw.haveF = ts.Speed, true
	}
	gw.line(fmt.Sprintf("G1%s E%s", fToken, fnum(gw.currentE)))
}

func (gw *Writer) travel(ts model.ToolSegment) {
	gw.line("G0" + gw.axisTokens(ts.P2, ts.Z, ts.Speed))
}

func (gw *Writer) extrude(ts model.ToolSegment) {
	if gw.retracted {
		gw.line(fmt.Sprintf("G1 E%s", fnum(gw.currentE)))
		gw.retracted = false
	}

	dist := extrusionDistance(ts.P1, ts.P2, gw.profile.LayerHeight)
	gw.currentE += dist

	gw.line("G1" + gw.axisTokens(ts.P2, ts.Z, ts.Speed) + fmt.Sprintf(" E%s", fnum(gw.currentE)))
}

// axisTokens returns the changed-axis-only X/Y/Z/F suffix for a move to
// p2 at height z and feed rate speed (§6). p2 and z are fixed-point
// (Scale units per millimetre) and are written in millimetres.
func (gw *Writer) axisTokens(p2 geom2d.Point, z, speed float64) string {
	x := mm(p2.X)
	y := mm(p2.Y)
	z /= float64(geom2d.Scale)

	out := ""
	if !gw.haveX || x != gw.x {
		out += fmt.Sprintf(" X%s", fnum(x))
		gw.x, gw.haveX = x, true
	}
	if !gw.haveY || y != gw.y {
		out += fmt.Sprintf(" Y%s", fnum(y))
		gw.y, gw.haveY = y, true
	}
	if !gw.haveZ || z != gw.z {
		out += fmt.Sprintf(" Z%s", fnum(z))
		gw.z, gw.haveZ = z, true
	}
	if !gw.haveF || speed != gw.f {
		out += fmt.Sprintf(" F%s", fnum(speed))
		gw.f, gw.haveF = speed, true
	}

	return out
}

// extrusionDistance is the source engine's uncalibrated filament-feed
// formula for one move (§6): moveLength in mm, scaled by the
// layer-height/filament cross-section ratio and the empirical /5
// divisor.
func extrusionDistance(p1, p2 geom2d.Point, layerHeight float64) float64 {
	moveLength := mm(int64(math.Hypot(float64(p2.X-p1.X), float64(p2.Y-p1.Y))))

	return moveLength * layerHeight / config.NozzleWidth /
		(config.FilamentWidth / config.NozzleWidth) / extrusionCalibrationDivisor
}

func mm(v int64) float64 { return float64(v) / float64(geom2d.Scale) }

// fnum formats v as plain decimal (never scientific notation, which
// G-code interpreters do not accept), trimming trailing zeros.
func fnum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func (gw *Writer) raw(s string) {
	gw.line(s)
}

func (gw *Writer) line(s string) {
	if gw.err != nil {
		return
	}
	_, gw.err = fmt.Fprintln(gw.w, s)
}

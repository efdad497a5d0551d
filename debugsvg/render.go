package debugsvg

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// pixelsPerMM sets the preview scale: the SVG canvas uses 10px/mm so
// sub-millimetre shell gaps stay visible.
const pixelsPerMM = 10

// RenderLayer writes an SVG preview of one layer's islands to w: each
// island's outline in black, Infill/Top/Bottom fill lines as thin grey
// strokes, Skirt rings dashed.
func RenderLayer(w io.Writer, layer model.LayerComponent, canvasWidthMM, canvasHeightMM int) {
	width := canvasWidthMM * pixelsPerMM
	height := canvasHeightMM * pixelsPerMM

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	for _, isle := range layer.Islands {
		for _, path := range isle.OutlinePaths {
			drawPolygon(canvas, path, "fill:none;stroke:black;stroke-width:1")
		}

		for _, seg := range isle.Segments {
			style := styleFor(seg.Kind)
			for _, path := range seg.Region {
				drawPolygon(canvas, path, style)
			}
			for _, line := range seg.FillLines {
				canvas.Line(px(line.P1.X), px(line.P1.Y), px(line.P2.X), px(line.P2.Y), "stroke:gray;stroke-width:0.5")
			}
		}
	}

	for _, seg := range layer.SkirtSegments {
		for _, path := range seg.Region {
			drawPolygon(canvas, path, "fill:none;stroke:blue;stroke-width:1;stroke-dasharray:4,2")
		}
	}

	canvas.End()
}

func styleFor(kind model.SegmentKind) string {
	switch kind {
	case model.SegmentTop:
		return "fill:none;stroke:red;stroke-width:0.5"
	case model.SegmentBottom:
		return "fill:none;stroke:orange;stroke-width:0.5"
	case model.SegmentSupport:
		return "fill:none;stroke:green;stroke-width:0.5"
	default:
		return "fill:none;stroke:#888;stroke-width:0.5"
	}
}

func drawPolygon(canvas *svg.SVG, path geom2d.Path, style string) {
	if len(path) < 2 {
		return
	}

	xs := make([]int, len(path))
	ys := make([]int, len(path))
	for i, p := range path {
		xs[i] = px(p.X)
		ys[i] = px(p.Y)
	}
	canvas.Polygon(xs, ys, style)
}

func px(scaled int64) int {
	return int(float64(scaled) / float64(geom2d.Scale) * pixelsPerMM)
}

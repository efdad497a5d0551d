package config

// NozzleWidth and FilamentWidth are project-wide material constants
// (mm), not part of Profile because no print varies them per run (§6).
const (
	NozzleWidth   = 0.5
	FilamentWidth = 2.8
)

// Profile holds the enumerated print configuration of §6.
type Profile struct {
	BedWidth  float64
	BedLength float64
	BedHeight float64

	LayerHeight        float64
	ShellThickness     float64
	TopBottomThickness float64

	SkirtLineCount int
	SkirtDistance  float64

	InfillDensity float64

	PrintSpeed  float64
	InfillSpeed float64

	// TopBottomSpeed is enumerated for profile round-tripping but unused:
	// the top/bottom planner drives its speed from TravelSpeed/InfillSpeed,
	// matching the source engine's own unresolved TODO on this field.
	TopBottomSpeed  float64
	FirstLineSpeed  float64
	TravelSpeed     float64
	RetractionSpeed float64

	RetractionDistance float64
	PrintTemperature   float64

	// InfillCombinationCount is accepted for profile round-tripping but
	// unused: combining sparse infill across several layers is out of
	// scope (§1 Non-goals).
	InfillCombinationCount int
}

// Defaults returns a Profile with reasonable values for an FDM printer
// with the 0.5mm NozzleWidth above, then applies opts over it.
func Defaults(opts ...Option) Profile {
	p := Profile{
		BedWidth:  200,
		BedLength: 200,
		BedHeight: 200,

		LayerHeight:        0.2,
		ShellThickness:     0.8,
		TopBottomThickness: 0.8,

		SkirtLineCount: 2,
		SkirtDistance:  3,

		InfillDensity: 20,

		PrintSpeed:      60,
		InfillSpeed:     60,
		TopBottomSpeed:  40,
		FirstLineSpeed:  20,
		TravelSpeed:     120,
		RetractionSpeed: 40,

		RetractionDistance: 4.5,
		PrintTemperature:   200,

		InfillCombinationCount: 1,
	}

	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Option configures a Profile via functional arguments.
type Option func(*Profile)

func WithBedSize(width, length, height float64) Option {
	return func(p *Profile) {
		p.BedWidth, p.BedLength, p.BedHeight = width, length, height
	}
}

func WithLayerHeight(mm float64) Option {
	return func(p *Profile) { p.LayerHeight = mm }
}

func WithShellThickness(mm float64) Option {
	return func(p *Profile) { p.ShellThickness = mm }
}

func WithTopBottomThickness(mm float64) Option {
	return func(p *Profile) { p.TopBottomThickness = mm }
}

func WithSkirt(lineCount int, distance float64) Option {
	return func(p *Profile) {
		p.SkirtLineCount = lineCount
		p.SkirtDistance = distance
	}
}

func WithInfillDensity(percent float64) Option {
	return func(p *Profile) { p.InfillDensity = percent }
}

func WithSpeeds(print, infill, topBottom, firstLine, travel, retraction float64) Option {
	return func(p *Profile) {
		p.PrintSpeed = print
		p.InfillSpeed = infill
		p.TopBottomSpeed = topBottom
		p.FirstLineSpeed = firstLine
		p.TravelSpeed = travel
		p.RetractionSpeed = retraction
	}
}

func WithRetraction(distance float64) Option {
	return func(p *Profile) { p.RetractionDistance = distance }
}

func WithPrintTemperature(celsius float64) Option {
	return func(p *Profile) { p.PrintTemperature = celsius }
}

// ShellCount returns the number of shell passes implied by
// ShellThickness rounded to whole layer widths of nozzle width (§4.4).
func (p Profile) ShellCount() int {
	if NozzleWidth <= 0 {
		return 0
	}
	n := int(p.ShellThickness/NozzleWidth + 0.5)
	if n < 1 {
		return 1
	}
	return n
}

package progress

import "sync"

// Callback receives the current completion percentage, 0-100.
type Callback func(percent float64)

// Progressor tracks a (stepCount, stepsDone, partsPerCurrentStep,
// partsDone) counter pair and reports through cb whenever either
// advances. All methods are safe to call from multiple goroutines —
// the callback recipient never sees overlapping calls (§5 "Calls from
// workers must be serialized by the callback recipient").
type Progressor struct {
	mu sync.Mutex

	stepCount           int
	stepsDone           int
	partsPerCurrentStep int
	partsDone           int

	cb Callback
}

// New returns a Progressor for a pipeline with stepCount major stages.
// A nil cb is allowed; percentage is simply never reported.
func New(stepCount int, cb Callback) *Progressor {
	return &Progressor{stepCount: stepCount, cb: cb}
}

// StartNextStep advances the major counter and resets the part
// counter to run over the given number of parts.
func (p *Progressor) StartNextStep(parts int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.partsPerCurrentStep > 0 {
		p.stepsDone++
	}
	p.partsPerCurrentStep = parts
	p.partsDone = 0

	p.report(p.percentLocked())
}

// CompleteStepPart increments the current step's part counter.
func (p *Progressor) CompleteStepPart() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.partsDone < p.partsPerCurrentStep {
		p.partsDone++
	}

	p.report(p.percentLocked())
}

// Percent returns the current completion percentage, 0-100.
func (p *Progressor) Percent() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.percentLocked()
}

func (p *Progressor) percentLocked() float64 {
	if p.stepCount == 0 {
		return 100
	}

	partFraction := 0.0
	if p.partsPerCurrentStep > 0 {
		partFraction = float64(p.partsDone) / float64(p.partsPerCurrentStep)
	}

	return (float64(p.stepsDone)/float64(p.stepCount) + partFraction/float64(p.stepCount)) * 100
}

func (p *Progressor) report(pct float64) {
	if p.cb != nil {
		p.cb(pct)
	}
}

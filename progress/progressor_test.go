package progress

import "testing"

func TestProgressorReachesOneHundredPercent(t *testing.T) {
	var last float64
	p := New(2, func(pct float64) { last = pct })

	p.StartNextStep(4)
	for range 4 {
		p.CompleteStepPart()
	}
	p.StartNextStep(2)
	for range 2 {
		p.CompleteStepPart()
	}
	p.StartNextStep(0)

	if last != 100 {
		t.Fatalf("expected 100%% once all steps complete, got %v", last)
	}
}

func TestProgressorHalfwayThroughFirstStep(t *testing.T) {
	p := New(2, nil)
	p.StartNextStep(4)
	p.CompleteStepPart()
	p.CompleteStepPart()

	if got := p.Percent(); got != 25 {
		t.Fatalf("expected 25%% (half of the first of two steps), got %v", got)
	}
}

func TestProgressorZeroStepsIsComplete(t *testing.T) {
	p := New(0, nil)
	if got := p.Percent(); got != 100 {
		t.Fatalf("expected 100%% for a zero-step pipeline, got %v", got)
	}
}

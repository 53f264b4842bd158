package calculator

// stage enumerates the five-step compute pipeline described in doc.go.
// Every Compute call walks it in order; mustAdvance panics if a caller
// (necessarily internal — Compute is the only entry point) attempts to
// skip a step. Reaching that panic is a programmer error, never a
// consequence of bad system/selection input, so it is never recovered
// here; the driver package recovers it at the outer boundary.
type stage int

const (
	stageIdle stage = iota
	stageKeysBuilt
	stageSamplesBuilt
	stageAllocated
	stageFilled
)

func (s stage) String() string {
	switch s {
	case stageIdle:
		return "idle"
	case stageKeysBuilt:
		return "keysBuilt"
	case stageSamplesBuilt:
		return "samplesBuilt"
	case stageAllocated:
		return "allocated"
	case stageFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// mustAdvance asserts that cur is exactly the stage preceding next in the
// pipeline order, then returns next. It panics otherwise.
func mustAdvance(cur, next stage) stage {
	if next != cur+1 {
		panic("calculator: state machine transition skipped a step: " + cur.String() + " -> " + next.String())
	}

	return next
}

package converter

// RestRun is a run of identical rests: a note type name and how many of
// that rest to emit.
type RestRun struct {
	Type  string
	Count int
}

// restUnits are the rest sizes the decomposer divides by, largest first.
// There is deliberately no half-note bucket: remainders between a quarter
// and a whole come out as quarter multiples. Anything below 3 ticks is
// unrepresentable and dropped.
var restUnits = []struct {
	Type  string
	Ticks int
}{
	{"whole", 192},
	{"quarter", 48},
	{"eighth", 24},
	{"16th", 12},
	{"32nd", 6},
	{"64th", 3},
}

// DecomposeRest decomposes a gap in ticks into rest runs, greedily taking
// the largest unit first. The returned runs are ordered smallest unit
// first, which is the order they must be emitted in so that time moves
// forward correctly within a measure.
func DecomposeRest(gap int) []RestRun {
	counts := make([]int, len(restUnits))
	rem := gap
	for i, unit := range restUnits {
		counts[i] = rem / unit.Ticks
		rem -= counts[i] * unit.Ticks
	}

	runs := make([]RestRun, 0, len(restUnits))
	for i := len(restUnits) - 1; i >= 0; i-- {
		runs = append(runs, RestRun{Type: restUnits[i].Type, Count: counts[i]})
	}
	return runs
}

// RestDuration returns the MusicXML duration of one rest of the given
// type at the fixed division count. A 64th rest yields 0: with 8
// divisions per quarter the smallest representable unit is a 32nd.
func RestDuration(name string) int {
	return noteTypeTicks[name] / TicksPerDivision
}

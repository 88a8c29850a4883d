package converter

// AssignMeasure returns the 1-based measure index for a note at the given
// absolute position, given the measure assigned to the previous note.
// Positions inside the previous measure stay there; positions in the
// immediately following measure advance by one. Anything further jumps
// directly via ceiling division — advancing one measure at a time would
// under-count across fully empty measures.
func AssignMeasure(position, prevMeasure int) int {
	if position < prevMeasure*MeasureLength {
		return prevMeasure
	}
	if position < (prevMeasure+1)*MeasureLength {
		return prevMeasure + 1
	}
	return (position+MeasureLength-1)/MeasureLength + 1
}

// measureStart returns the absolute tick position where a measure begins.
func measureStart(measure int) int {
	return (measure - 1) * MeasureLength
}

// measureEnd returns the absolute tick position where a measure ends.
func measureEnd(measure int) int {
	return measure * MeasureLength
}

package config

// GapSize returns the gap size for an obstacle created at the given score.
// The gap narrows by one cell per point and never drops below MinGapSize.
func (o Obstacles) GapSize(score int) int {
	return max(o.MinGapSize, o.BaseGapSize-score)
}

// GapCenterSpan returns the number of distinct gap centers a new obstacle
// can take.
func (o Obstacles) GapCenterSpan() int {
	return o.GapCenterMax - o.GapCenterMin
}

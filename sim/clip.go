package sim

// clip bounds v to the closed interval [lo, hi].
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clip01 bounds v to [0,1], the range of every indicator except the teacher
// workload score.
func clip01(v float64) float64 {
	return clip(v, 0, 1)
}

// improve applies one diminishing-returns growth step: the increment is
// proportional to the remaining headroom (1-v), so the value approaches 1
// asymptotically and never overshoots for f >= 0.
func improve(v, f float64) float64 {
	return clip01(v * (1 + f*(1-v)))
}

// decay applies one pure multiplicative decay step, used by the access
// dropout indicators.
func decay(v, f float64) float64 {
	return clip01(v * (1 - f))
}

// driver looks up a named driver in a group, falling back to def when the
// key (or the whole group) is absent. Missing configuration is never an
// error; every lookup has a documented default.
func driver(group map[string]float64, key string, def float64) float64 {
	if v, ok := group[key]; ok {
		return v
	}
	return def
}

// groupMean is the unweighted arithmetic mean of a driver group's values.
// An empty group yields 0, not a division fault.
func groupMean(group map[string]float64) float64 {
	if len(group) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range group {
		sum += v
	}
	return sum / float64(len(group))
}

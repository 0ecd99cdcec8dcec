package tile

// indicatorToDora34 maps a dora indicator's 34-type to the dora it points to.
// Suited tiles wrap within their own suit of 9; winds wrap within the
// 4-element group starting at East; dragons wrap within the 3-element group
// starting at Haku.
func indicatorToDora34(indicator Type34) Type34 {
	switch {
	case indicator < East:
		suitBase := (indicator / 9) * 9
		return suitBase + (indicator-suitBase+1)%9
	case indicator <= North:
		return East + (indicator-East+1)%4
	default:
		return Haku + (indicator-Haku+1)%3
	}
}

// BuildDoraCountMap precomputes, for a set of revealed dora-indicator ids,
// how many dora each 34-type is worth.
func BuildDoraCountMap(indicators []ID136) map[Type34]int {
	m := make(map[Type34]int, len(indicators))
	for _, indicator := range indicators {
		dora := indicatorToDora34(indicator.Type())
		m[dora]++
	}
	return m
}

// CountDoraForHand sums the dora value of a hand given a precomputed map from
// BuildDoraCountMap.
func CountDoraForHand(count Count34, doraCountMap map[Type34]int) int {
	total := 0
	for t, n := range doraCountMap {
		total += count[t] * n
	}
	return total
}

// PlusDora computes the dora count contributed by a single physical tile,
// given the revealed dora indicators and whether aka dora should be added.
func PlusDora(id ID136, indicators []ID136, addAka bool) int {
	total := 0
	if addAka && IsAkaDora(id, true) {
		total++
	}
	t := id.Type()
	for _, indicator := range indicators {
		if indicatorToDora34(indicator.Type()) == t {
			total++
		}
	}
	return total
}

package analyze

import (
	"briq-utils/core/model"
)

// VersionStats summarizes how many inventory versions sets have.
type VersionStats struct {
	Sets               int         `json:"sets"`
	MoreThanOne        int         `json:"more_than_one"`
	MoreThanTwo        int         `json:"more_than_two"`
	MoreThanOnePercent float64     `json:"more_than_one_percent"`
	MoreThanTwoPercent float64     `json:"more_than_two_percent"`
	Distribution       map[int]int `json:"distribution"`
}

// Stats counts sets by number of versions.
func Stats(sets []model.Set) VersionStats {
	st := VersionStats{
		Sets:         len(sets),
		Distribution: make(map[int]int),
	}
	for _, s := range sets {
		n := len(s.Versions)
		st.Distribution[n]++
		if n > 1 {
			st.MoreThanOne++
		}
		if n > 2 {
			st.MoreThanTwo++
		}
	}
	st.MoreThanOnePercent = percent(st.MoreThanOne, st.Sets)
	st.MoreThanTwoPercent = percent(st.MoreThanTwo, st.Sets)
	return st
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

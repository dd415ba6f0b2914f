package analyze

import (
	"testing"

	"briq-utils/core/model"

	"github.com/stretchr/testify/assert"
)

func withVersions(n int) model.Set {
	return model.Set{Versions: make([]model.SetVersion, n)}
}

func TestStats(t *testing.T) {
	st := Stats([]model.Set{withVersions(0), withVersions(1), withVersions(2), withVersions(3)})

	assert.Equal(t, 4, st.Sets)
	assert.Equal(t, 2, st.MoreThanOne)
	assert.Equal(t, 1, st.MoreThanTwo)
	assert.InDelta(t, 50.0, st.MoreThanOnePercent, 1e-9)
	assert.InDelta(t, 25.0, st.MoreThanTwoPercent, 1e-9)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, st.Distribution)
}

func TestStats_Empty(t *testing.T) {
	st := Stats(nil)
	assert.Zero(t, st.Sets)
	assert.Zero(t, st.MoreThanOnePercent)
	assert.Empty(t, st.Distribution)
}

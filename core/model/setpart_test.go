package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestSetPart_Equal(t *testing.T) {
	base := SetPart{Number: "3001", ColorID: 0, Quantity: 4, IsSpare: false, ImgURL: ptr("a.jpg")}

	tests := []struct {
		name  string
		other SetPart
		want  bool
	}{
		{"Identical", SetPart{Number: "3001", ColorID: 0, Quantity: 4, ImgURL: ptr("a.jpg")}, true},
		{"OtherColor", SetPart{Number: "3001", ColorID: 1, Quantity: 4, ImgURL: ptr("a.jpg")}, false},
		{"Spare", SetPart{Number: "3001", ColorID: 0, Quantity: 4, IsSpare: true, ImgURL: ptr("a.jpg")}, false},
		{"OtherQuantity", SetPart{Number: "3001", ColorID: 0, Quantity: 5, ImgURL: ptr("a.jpg")}, false},
		{"NoURL", SetPart{Number: "3001", ColorID: 0, Quantity: 4}, false},
		{"OtherURL", SetPart{Number: "3001", ColorID: 0, Quantity: 4, ImgURL: ptr("b.jpg")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
			assert.Equal(t, tt.want, base.Key() == tt.other.Key())
		})
	}

	t.Run("AbsentVersusEmptyURL", func(t *testing.T) {
		a := SetPart{Number: "1"}
		b := SetPart{Number: "1", ImgURL: ptr("")}
		assert.False(t, a.Equal(b))
	})
}

func TestSortSetParts(t *testing.T) {
	parts := []SetPart{
		{Number: "3002", ColorID: 0, Quantity: 1},
		{Number: "3001", ColorID: 4, Quantity: 1},
		{Number: "3001", ColorID: 0, Quantity: 2, IsSpare: true},
		{Number: "3001", ColorID: 0, Quantity: 2},
	}
	SortSetParts(parts)

	assert.Equal(t, []SetPart{
		{Number: "3001", ColorID: 0, Quantity: 2},
		{Number: "3001", ColorID: 0, Quantity: 2, IsSpare: true},
		{Number: "3001", ColorID: 4, Quantity: 1},
		{Number: "3002", ColorID: 0, Quantity: 1},
	}, parts)
}

func TestSet_JSONContract(t *testing.T) {
	s := Set{Number: "1-1", Versions: []SetVersion{}}
	b, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, []any{}, m["versions"])
	_, hasURL := m["img_url"]
	assert.False(t, hasURL)
	for _, key := range []string{"number", "name", "year", "theme_id", "parts_count", "is_pack", "is_unreleased", "is_accessories"} {
		assert.Contains(t, m, key)
	}
}

func TestClassifier(t *testing.T) {
	t.Run("ZeroValueFlagsNothing", func(t *testing.T) {
		var c Classifier
		assert.False(t, c.IsPack("66330-1"))
		assert.False(t, c.IsUnreleased("21341-1"))
		assert.False(t, c.IsAccessories("850486-1"))
	})

	t.Run("ConfiguredLists", func(t *testing.T) {
		c := NewClassifier([]string{"66330-1", " 66359-1 "}, []string{"9999-1"}, []string{"850486-1", ""})

		assert.True(t, c.IsPack("66330-1"))
		assert.True(t, c.IsPack("66359-1"))
		assert.False(t, c.IsPack("1000-1"))
		assert.True(t, c.IsUnreleased("9999-1"))
		assert.False(t, c.IsUnreleased("66330-1"))
		assert.True(t, c.IsAccessories("850486-1"))
		assert.False(t, c.IsAccessories(""))
	})
}

func TestData_FindSet(t *testing.T) {
	d := &Data{Sets: []Set{{Number: "1-1"}, {Number: "2-1", Versions: []SetVersion{{Version: 1, Parts: []SetPart{{Number: "x"}}}}}}}

	s, ok := d.FindSet("2-1")
	require.True(t, ok)
	assert.Equal(t, [][]SetPart{{{Number: "x"}}}, s.PartLists())

	_, ok = d.FindSet("3-1")
	assert.False(t, ok)
}

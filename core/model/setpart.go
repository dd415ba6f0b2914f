package model

import (
	"cmp"
	"slices"
)

// SetPart is one part line of a set version.
//
// SetPart is a value type and its identity is every field: two SetParts are the
// same contribution only if number, color, quantity, spare flag and image URL all
// match. The same part number in another color, another quantity or as a spare is
// a different SetPart. The version diff relies on exactly this contract through Key.
type SetPart struct {
	Number   string  `json:"number"`
	ColorID  int32   `json:"color_id"`
	Quantity uint16  `json:"quantity"`
	IsSpare  bool    `json:"is_spare"`
	ImgURL   *string `json:"img_url,omitempty"`
}

// SetPartKey is the comparable form of a SetPart. An absent URL and an empty URL
// are distinguished by HasImg.
type SetPartKey struct {
	Number   string
	ColorID  int32
	Quantity uint16
	IsSpare  bool
	HasImg   bool
	ImgURL   string
}

// Key returns the equality key of p.
func (p SetPart) Key() SetPartKey {
	k := SetPartKey{
		Number:   p.Number,
		ColorID:  p.ColorID,
		Quantity: p.Quantity,
		IsSpare:  p.IsSpare,
	}
	if p.ImgURL != nil {
		k.HasImg = true
		k.ImgURL = *p.ImgURL
	}
	return k
}

// Equal reports whether p and o are the same contribution.
func (p SetPart) Equal(o SetPart) bool {
	return p.Key() == o.Key()
}

// CompareSetParts orders parts by number, color, spare flag, quantity and URL.
func CompareSetParts(a, b SetPart) int {
	ka, kb := a.Key(), b.Key()
	if c := cmp.Compare(ka.Number, kb.Number); c != 0 {
		return c
	}
	if c := cmp.Compare(ka.ColorID, kb.ColorID); c != 0 {
		return c
	}
	if ka.IsSpare != kb.IsSpare {
		if !ka.IsSpare {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(ka.Quantity, kb.Quantity); c != 0 {
		return c
	}
	if ka.HasImg != kb.HasImg {
		if !ka.HasImg {
			return -1
		}
		return 1
	}
	return cmp.Compare(ka.ImgURL, kb.ImgURL)
}

// SortSetParts sorts parts in place with CompareSetParts.
func SortSetParts(parts []SetPart) {
	slices.SortFunc(parts, CompareSetParts)
}

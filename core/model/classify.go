package model

import "strings"

// Classifier flags sets as packs, unreleased sets or accessory sets by set
// number. The zero value flags nothing. It is read-only once built.
type Classifier struct {
	packs       map[string]struct{}
	unreleased  map[string]struct{}
	accessories map[string]struct{}
}

// NewClassifier builds a Classifier from the configured set-number lists.
// Blank entries are ignored.
func NewClassifier(packs, unreleased, accessories []string) Classifier {
	return Classifier{
		packs:       setOf(packs),
		unreleased:  setOf(unreleased),
		accessories: setOf(accessories),
	}
}

func setOf(numbers []string) map[string]struct{} {
	m := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		if n = strings.TrimSpace(n); n != "" {
			m[n] = struct{}{}
		}
	}
	return m
}

// IsPack reports whether the set is a multi-set pack.
func (c Classifier) IsPack(setNum string) bool {
	_, ok := c.packs[setNum]
	return ok
}

// IsUnreleased reports whether the set was never released.
func (c Classifier) IsUnreleased(setNum string) bool {
	_, ok := c.unreleased[setNum]
	return ok
}

// IsAccessories reports whether the set is an accessory set rather than a build.
func (c Classifier) IsAccessories(setNum string) bool {
	_, ok := c.accessories[setNum]
	return ok
}

package analyze

import (
	"briq-utils/core/model"
)

// VersionDiff is the result of comparing the part lists of a set's versions.
type VersionDiff struct {
	// Unique has one entry per version: the parts of that version not in Common.
	Unique [][]model.SetPart `json:"unique"`
	// Common are the parts present in every version.
	Common []model.SetPart `json:"common"`
}

// Diff compares part lists with set semantics. Duplicate parts within one list
// collapse. Common is the intersection of all lists and Unique[i] is list i minus
// Common, so a part shared by some but not all versions is unique to each of
// them. With no lists, both fields are empty.
func Diff(perVersion [][]model.SetPart) VersionDiff {
	result := VersionDiff{
		Unique: make([][]model.SetPart, len(perVersion)),
		Common: []model.SetPart{},
	}

	sets := make([]map[model.SetPartKey]model.SetPart, len(perVersion))
	count := make(map[model.SetPartKey]int)
	for i, parts := range perVersion {
		sets[i] = make(map[model.SetPartKey]model.SetPart, len(parts))
		for _, p := range parts {
			k := p.Key()
			if _, dup := sets[i][k]; dup {
				continue
			}
			sets[i][k] = p
			count[k]++
		}
	}

	for i, set := range sets {
		unique := []model.SetPart{}
		for k, p := range set {
			if count[k] < len(sets) {
				unique = append(unique, p)
			}
		}
		model.SortSetParts(unique)
		result.Unique[i] = unique
	}

	if len(sets) > 0 {
		for k, p := range sets[0] {
			if count[k] == len(sets) {
				result.Common = append(result.Common, p)
			}
		}
		model.SortSetParts(result.Common)
	}

	return result
}

// DiffSet diffs the versions of set in version order.
func DiffSet(set model.Set) VersionDiff {
	return Diff(set.PartLists())
}

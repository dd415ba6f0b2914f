package index

import (
	"context"
	"sync"

	"briq-utils/core/table"
)

// InventoryRef points at one inventory of a set.
type InventoryRef struct {
	ID      uint32
	Version uint16
}

// Indices holds the join indices for one Store.
type Indices struct {
	PartExists        map[string]struct{}
	InventoryParts    map[uint32][]table.InventoryPartRecord
	InventoryMinifigs map[uint32][]table.InventoryMinifigRecord
	SetInventories    map[string][]InventoryRef
	ThemeByID         map[uint32]table.ThemeRecord
}

// HasPart reports whether partNum exists in the parts table.
func (x *Indices) HasPart(partNum string) bool {
	_, ok := x.PartExists[partNum]
	return ok
}

// PartsOf returns the inventory part rows of an inventory.
func (x *Indices) PartsOf(inventoryID uint32) []table.InventoryPartRecord {
	return x.InventoryParts[inventoryID]
}

// MinifigsOf returns the inventory minifig rows of an inventory.
func (x *Indices) MinifigsOf(inventoryID uint32) []table.InventoryMinifigRecord {
	return x.InventoryMinifigs[inventoryID]
}

// InventoriesOf returns the inventories of a set in source order.
func (x *Indices) InventoriesOf(setNum string) []InventoryRef {
	return x.SetInventories[setNum]
}

// Theme returns the theme with the given id.
func (x *Indices) Theme(id uint32) (table.ThemeRecord, bool) {
	t, ok := x.ThemeByID[id]
	return t, ok
}

// Build derives all indices from s.
func Build(ctx context.Context, s *table.Store) (*Indices, error) {
	x := &Indices{}
	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		x.PartExists = PartSet(s.Parts)
	}()

	go func() {
		defer wg.Done()
		x.InventoryParts = GroupBy(s.InventoryParts, func(r table.InventoryPartRecord) uint32 { return r.InventoryID })
	}()

	go func() {
		defer wg.Done()
		x.InventoryMinifigs = GroupBy(s.InventoryMinifigs, func(r table.InventoryMinifigRecord) uint32 { return r.InventoryID })
	}()

	go func() {
		defer wg.Done()
		x.SetInventories = SetInventories(s.Inventories)
	}()

	go func() {
		defer wg.Done()
		x.ThemeByID = ThemesByID(s.Themes)
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return x, nil
}

// PartSet returns the set of part numbers.
func PartSet(parts []table.PartRecord) map[string]struct{} {
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		set[p.PartNum] = struct{}{}
	}
	return set
}

// GroupBy groups rows by key, keeping source order inside each group.
func GroupBy[K comparable, T any](rows []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, r := range rows {
		k := key(r)
		groups[k] = append(groups[k], r)
	}
	return groups
}

// SetInventories groups inventories by set number, keeping source order.
func SetInventories(inventories []table.InventoryRecord) map[string][]InventoryRef {
	refs := make(map[string][]InventoryRef)
	for _, inv := range inventories {
		refs[inv.SetNum] = append(refs[inv.SetNum], InventoryRef{ID: inv.ID, Version: inv.Version})
	}
	return refs
}

// ThemesByID indexes themes by id. A duplicated id keeps the last row.
func ThemesByID(themes []table.ThemeRecord) map[uint32]table.ThemeRecord {
	byID := make(map[uint32]table.ThemeRecord, len(themes))
	for _, t := range themes {
		byID[t.ID] = t
	}
	return byID
}

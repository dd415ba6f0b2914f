package analyze

import (
	"errors"
	"fmt"
	"strings"

	"briq-utils/core/table"
)

// ErrCycle is wrapped by every *CycleError.
var ErrCycle = errors.New("parent chain contains a cycle")

// CycleError reports the node chain that led back to an already visited node.
type CycleError[K comparable] struct {
	Path []K
}

func (e *CycleError[K]) Error() string {
	parts := make([]string, len(e.Path))
	for i, k := range e.Path {
		parts[i] = fmt.Sprint(k)
	}
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(parts, " -> "))
}

func (e *CycleError[K]) Unwrap() error { return ErrCycle }

// MissingParentError reports a node whose parent does not exist.
type MissingParentError[K comparable] struct {
	Node   K
	Parent K
}

func (e *MissingParentError[K]) Error() string {
	return fmt.Sprintf("node %v references missing parent %v", e.Node, e.Parent)
}

// MaxDepth returns the maximum depth of the theme forest.
func MaxDepth(themes []table.ThemeRecord) (int, error) {
	return TreeDepth(themes,
		func(t table.ThemeRecord) uint32 { return t.ID },
		func(t table.ThemeRecord) (uint32, bool) {
			if t.ParentID == nil {
				return 0, false
			}
			return *t.ParentID, true
		},
	)
}

// TreeDepth returns the number of nodes on the longest root-to-leaf path of the
// forest described by nodes. parent returns false for roots. Depths are memoized
// so every node is walked once.
func TreeDepth[T any, K comparable](nodes []T, key func(T) K, parent func(T) (K, bool)) (int, error) {
	byKey := make(map[K]T, len(nodes))
	for _, n := range nodes {
		byKey[key(n)] = n
	}

	depths := make(map[K]int, len(nodes))
	maxDepth := 0

	for _, n := range nodes {
		d, err := depthOf(key(n), byKey, depths, parent)
		if err != nil {
			return 0, err
		}
		maxDepth = max(maxDepth, d)
	}
	return maxDepth, nil
}

// depthOf walks up from start until it reaches a root or a node with a known
// depth, then assigns depths to the walked chain on the way back.
func depthOf[T any, K comparable](start K, byKey map[K]T, depths map[K]int, parent func(T) (K, bool)) (int, error) {
	if d, ok := depths[start]; ok {
		return d, nil
	}

	var chain []K
	onChain := make(map[K]struct{})
	base := 0

	for k := start; ; {
		if d, ok := depths[k]; ok {
			base = d
			break
		}
		if _, seen := onChain[k]; seen {
			return 0, &CycleError[K]{Path: append(chain, k)}
		}
		chain = append(chain, k)
		onChain[k] = struct{}{}

		p, ok := parent(byKey[k])
		if !ok {
			break
		}
		if _, exists := byKey[p]; !exists {
			return 0, &MissingParentError[K]{Node: k, Parent: p}
		}
		k = p
	}

	for i := len(chain) - 1; i >= 0; i-- {
		base++
		depths[chain[i]] = base
	}
	return depths[start], nil
}

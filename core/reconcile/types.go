package reconcile

import (
	"context"
	"strings"
	"time"
)

// Item is a source entity. Sources define the concrete type.
type Item any

// Source loads one side of a reconciliation.
type Source interface {
	// Name identifies the source in results (e.g. "catalog", "cache").
	Name() string
	// Load returns every item of the source indexed by key.
	Load(ctx context.Context) (map[string]Item, error)
}

type funcSource struct {
	name string
	load func(ctx context.Context) (map[string]Item, error)
}

func (s funcSource) Name() string { return s.name }

func (s funcSource) Load(ctx context.Context) (map[string]Item, error) { return s.load(ctx) }

// NewSource adapts a load function into a Source.
func NewSource(name string, load func(ctx context.Context) (map[string]Item, error)) Source {
	return funcSource{name: name, load: load}
}

// KeySource is a Source over a fixed key set.
func KeySource(name string, keys []string) Source {
	return NewSource(name, func(context.Context) (map[string]Item, error) {
		index := make(map[string]Item, len(keys))
		for _, k := range keys {
			index[k] = k
		}
		return index, nil
	})
}

// Spec defines a reconciliation.
type Spec struct {
	// Name identifies the reconciliation in the cache and in errors.
	Name string

	// Sources are loaded concurrently. Source names must be unique.
	Sources []Source

	// Required names the sources a key must be present in. A key missing from
	// any of them is incomplete and may be purged. Empty means all sources.
	Required []string

	// Compare, if set, is called for keys present in every source and returns
	// mismatch descriptions such as "size: cache=10 storage=12".
	Compare func(key string, items map[string]Item) []string

	// CacheTTL is the time-to-live for cached indices. Zero disables caching.
	CacheTTL time.Duration
}

// CacheKey returns a unique key for caching based on spec parameters.
func (s *Spec) CacheKey() string {
	names := make([]string, 0, len(s.Sources)+1)
	names = append(names, s.Name)
	for _, src := range s.Sources {
		names = append(names, src.Name())
	}
	return strings.Join(names, "|")
}

func (s *Spec) required() []string {
	if len(s.Required) > 0 {
		return s.Required
	}
	names := make([]string, len(s.Sources))
	for i, src := range s.Sources {
		names[i] = src.Name()
	}
	return names
}

// Result represents the reconciliation output for a single key.
type Result struct {
	// ID is the key.
	ID string `json:"id"`

	// Present maps each source name to whether the key exists there.
	Present map[string]bool `json:"present"`

	// Mismatch contains descriptions of field mismatches between sources.
	Mismatch []string `json:"mismatch"`
}

// In reports whether the key is present in the named source.
func (r Result) In(source string) bool {
	return r.Present[source]
}

// Missing returns the names of the given sources that lack the key.
func (r Result) Missing(sources []string) []string {
	var missing []string
	for _, name := range sources {
		if !r.Present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionPurge removes a key from a source that has it although a required
	// source does not.
	ActionPurge ActionType = "purge"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Source is the source the action applies to.
	Source string `json:"source"`

	// Key is the entity identifier.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan contains reconciliation results and planned actions.
type Plan struct {
	// Results contains per-key reconciliation data.
	Results []Result `json:"results"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalItems is the total number of unique keys.
	TotalItems int `json:"total_items"`

	// Complete counts keys present in every source.
	Complete int `json:"complete"`

	// Missing counts, per source, keys present elsewhere but not there.
	Missing map[string]int `json:"missing"`

	// Mismatches counts keys with field discrepancies.
	Mismatches int `json:"mismatches"`

	// PurgeActions counts planned purge actions.
	PurgeActions int `json:"purge_actions"`
}

// Options controls purge planning.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoPurge plans removal of keys missing from a required source.
	DoPurge bool

	// Confirmed indicates user has confirmed destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}

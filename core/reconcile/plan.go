package reconcile

import (
	"context"
	"fmt"
)

// Mutator executes planned actions against the sources of a spec.
type Mutator interface {
	// Apply executes a single action.
	Apply(ctx context.Context, action Action) error
}

// BatchMutator is implemented by mutators that can execute many actions at once.
type BatchMutator interface {
	ApplyBatch(ctx context.Context, actions []Action) error
}

// ReconcileWithPlan performs reconciliation and returns a plan with results and
// actions. It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, spec *Spec, opts Options) (*Plan, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}

	results := reconcileFromCache(cache, spec)
	summary, actions := buildPlanFromResults(results, spec, opts)

	return &Plan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

// ApplyPlan executes the actions in a plan and returns how many ran.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, m Mutator, plan *Plan, opts Options) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun || len(plan.Actions) == 0 {
		return 0, nil
	}

	if batch, ok := m.(BatchMutator); ok {
		if err := batch.ApplyBatch(ctx, plan.Actions); err != nil {
			return 0, fmt.Errorf("failed to apply actions: %w", err)
		}
		return len(plan.Actions), nil
	}

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		if err := m.Apply(ctx, action); err != nil {
			return executed, fmt.Errorf("failed to %s %s in %s: %w", action.Type, action.Key, action.Source, err)
		}
		executed++
	}
	return executed, nil
}

// buildPlanFromResults generates a summary and action plan from results.
func buildPlanFromResults(results []Result, spec *Spec, opts Options) (PlanSummary, []Action) {
	summary := PlanSummary{
		TotalItems: len(results),
		Missing:    make(map[string]int, len(spec.Sources)),
	}
	var actions []Action

	required := spec.required()

	for _, result := range results {
		complete := true
		for _, src := range spec.Sources {
			if !result.Present[src.Name()] {
				summary.Missing[src.Name()]++
				complete = false
			}
		}
		if complete {
			summary.Complete++
		}
		if len(result.Mismatch) > 0 {
			summary.Mismatches++
		}

		missingRequired := result.Missing(required)

		if opts.DoPurge && len(missingRequired) > 0 {
			reason := fmt.Sprintf("missing in: %v", missingRequired)
			for _, src := range spec.Sources {
				if result.Present[src.Name()] {
					actions = append(actions, Action{
						Type:   ActionPurge,
						Source: src.Name(),
						Key:    result.ID,
						Reason: reason,
					})
					summary.PurgeActions++
				}
			}
		}
	}

	return summary, actions
}

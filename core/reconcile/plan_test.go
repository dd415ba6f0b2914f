package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMutator struct {
	applied []Action
	failOn  string
}

func (m *recordingMutator) Apply(_ context.Context, a Action) error {
	if a.Key == m.failOn {
		return errors.New("apply failed")
	}
	m.applied = append(m.applied, a)
	return nil
}

type batchMutator struct {
	recordingMutator
	batches int
}

func (m *batchMutator) ApplyBatch(_ context.Context, actions []Action) error {
	m.batches++
	m.applied = append(m.applied, actions...)
	return nil
}

// TestReconcileWithPlan_Summary tests per-source missing counts.
func TestReconcileWithPlan_Summary(t *testing.T) {
	spec := &Spec{Name: "summary", Sources: threeSources()}

	plan, err := ReconcileWithPlan(context.Background(), spec, Options{})
	require.NoError(t, err)

	assert.Equal(t, 4, plan.Summary.TotalItems)
	assert.Equal(t, 0, plan.Summary.Complete)
	assert.Equal(t, map[string]int{"catalog": 2, "cache": 2, "storage": 2}, plan.Summary.Missing)
	assert.Empty(t, plan.Actions)
}

// TestReconcileWithPlan_PurgeActions tests that keys missing from a required
// source are purged from every source that has them.
func TestReconcileWithPlan_PurgeActions(t *testing.T) {
	spec := &Spec{Name: "purge", Sources: threeSources(), Required: []string{"catalog"}}

	plan, err := ReconcileWithPlan(context.Background(), spec, Options{DoPurge: true})
	require.NoError(t, err)

	// C is in cache and storage, D only in storage.
	assert.Equal(t, 3, plan.Summary.PurgeActions)
	assert.Equal(t, []Action{
		{Type: ActionPurge, Source: "cache", Key: "C", Reason: "missing in: [catalog]"},
		{Type: ActionPurge, Source: "storage", Key: "C", Reason: "missing in: [catalog]"},
		{Type: ActionPurge, Source: "storage", Key: "D", Reason: "missing in: [catalog]"},
	}, plan.Actions)
}

func TestApplyPlan(t *testing.T) {
	plan := &Plan{Actions: []Action{
		{Type: ActionPurge, Source: "cache", Key: "C"},
		{Type: ActionPurge, Source: "storage", Key: "D"},
	}}

	t.Run("NotConfirmed", func(t *testing.T) {
		m := &recordingMutator{}
		n, err := ApplyPlan(context.Background(), m, plan, Options{DoPurge: true})
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, m.applied)
	})

	t.Run("DryRun", func(t *testing.T) {
		m := &recordingMutator{}
		n, err := ApplyPlan(context.Background(), m, plan, Options{Confirmed: true, DryRun: true})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Confirmed", func(t *testing.T) {
		m := &recordingMutator{}
		n, err := ApplyPlan(context.Background(), m, plan, Options{Confirmed: true})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, plan.Actions, m.applied)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		m := &recordingMutator{failOn: "D"}
		n, err := ApplyPlan(context.Background(), m, plan, Options{Confirmed: true})
		assert.Error(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Batch", func(t *testing.T) {
		m := &batchMutator{}
		n, err := ApplyPlan(context.Background(), m, plan, Options{Confirmed: true})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 1, m.batches)
	})
}

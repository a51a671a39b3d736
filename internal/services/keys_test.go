package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/raidtracker/internal/common"
	"github.com/dmitrijs2005/raidtracker/internal/models"
)

func TestAddKey(t *testing.T) {
	tr, repo := newTestTracker(t)
	ctx := context.Background()

	k, err := tr.AddKey(ctx, "Dorm Key", models.LocationFarm, 150000)
	require.NoError(t, err)
	assert.NotEmpty(t, k.ID)
	assert.Equal(t, 0, k.CurrentUses)
	assert.Empty(t, k.Runs)
	require.Len(t, repo.list[0].Keys, 1, "key is persisted")
}

func TestAddKey_Validation(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.AddKey(ctx, "  ", models.LocationFarm, 100)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = tr.AddKey(ctx, "K", models.Location("Atlantis"), 100)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = tr.AddKey(ctx, "K", models.LocationFarm, 0)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestEditKey_KeepsRunHistory(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	k, err := tr.AddKey(ctx, "Dorm Key", models.LocationFarm, 150000)
	require.NoError(t, err)
	_, err = tr.AddRun(ctx, k.ID, 50000)
	require.NoError(t, err)

	require.NoError(t, tr.EditKey(ctx, k.ID, "Dorm Key 2", models.LocationArmory, 200000))

	p, err := tr.ActiveProfile(ctx)
	require.NoError(t, err)
	got := p.FindKey(k.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Dorm Key 2", got.Name)
	assert.Equal(t, models.LocationArmory, got.Location)
	assert.Equal(t, int64(200000), got.Cost)
	assert.Len(t, got.Runs, 1)
	assert.Equal(t, 1, got.CurrentUses)
}

func TestEditKey_ValidationLeavesKeyUntouched(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	k, err := tr.AddKey(ctx, "Dorm Key", models.LocationFarm, 150000)
	require.NoError(t, err)

	err = tr.EditKey(ctx, k.ID, "", models.LocationFarm, 150000)
	require.ErrorIs(t, err, common.ErrValidation)

	p, _ := tr.ActiveProfile(ctx)
	assert.Equal(t, "Dorm Key", p.FindKey(k.ID).Name)
}

func TestDeleteKey(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	k, err := tr.AddKey(ctx, "Dorm Key", models.LocationFarm, 150000)
	require.NoError(t, err)

	require.NoError(t, tr.DeleteKey(ctx, k.ID))

	p, _ := tr.ActiveProfile(ctx)
	assert.Empty(t, p.Keys)

	assert.ErrorIs(t, tr.DeleteKey(ctx, k.ID), common.ErrNotFound)
}

func TestAddRun_UpdatesTotalsAndBadge(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	k, err := tr.AddKey(ctx, "Dorm Key", models.LocationFarm, 500000)
	require.NoError(t, err)

	for _, profit := range []int64{100000, -50000, 200000} {
		_, err := tr.AddRun(ctx, k.ID, profit)
		require.NoError(t, err)
	}

	p, _ := tr.ActiveProfile(ctx)
	got := p.FindKey(k.ID)
	assert.Equal(t, 3, got.TotalRuns)
	assert.Equal(t, 3, got.CurrentUses)
	assert.Equal(t, int64(250000), got.TotalProfit)
}

func TestAddRun_UnknownKey(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.AddRun(context.Background(), "nope", 100)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEditRun(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	k, err := tr.AddKey(ctx, "Dorm Key", models.LocationFarm, 500000)
	require.NoError(t, err)
	_, err = tr.AddRun(ctx, k.ID, 100)
	require.NoError(t, err)

	require.NoError(t, tr.EditRun(ctx, k.ID, 1, 999))

	p, _ := tr.ActiveProfile(ctx)
	assert.Equal(t, int64(999), p.FindKey(k.ID).TotalProfit)

	assert.ErrorIs(t, tr.EditRun(ctx, k.ID, 42, 1), common.ErrNotFound)
}

func TestDeleteRun_RenumbersAndReconcilesBadge(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	k, err := tr.AddKey(ctx, "Dorm Key", models.LocationFarm, 500000)
	require.NoError(t, err)
	for _, profit := range []int64{10, 20, 30} {
		_, err := tr.AddRun(ctx, k.ID, profit)
		require.NoError(t, err)
	}

	require.NoError(t, tr.DeleteRun(ctx, k.ID, 2))

	p, _ := tr.ActiveProfile(ctx)
	got := p.FindKey(k.ID)
	require.Len(t, got.Runs, 2)
	assert.Equal(t, 1, got.Runs[0].RunNumber)
	assert.Equal(t, 2, got.Runs[1].RunNumber)
	assert.Equal(t, int64(30), got.Runs[1].Profit)
	assert.Equal(t, 2, got.CurrentUses)
	assert.Equal(t, int64(40), got.TotalProfit)
}

func TestResetKeyUses(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	k, err := tr.AddKey(ctx, "Dorm Key", models.LocationFarm, 500000)
	require.NoError(t, err)
	_, err = tr.AddRun(ctx, k.ID, 100)
	require.NoError(t, err)

	require.NoError(t, tr.ResetKeyUses(ctx, k.ID))

	p, _ := tr.ActiveProfile(ctx)
	got := p.FindKey(k.ID)
	assert.Equal(t, 0, got.CurrentUses)
	assert.Equal(t, 1, got.TotalRuns, "run history is untouched")
}

package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/raidtracker/internal/models"
)

func keyWithRuns(cost int64, profits ...int64) models.Key {
	k := models.Key{ID: "k", Name: "K", Location: models.LocationFarm, Cost: cost, Runs: []models.Run{}}
	now := time.Now()
	for _, p := range profits {
		k.AddRun(p, now)
	}
	return k
}

func TestROI(t *testing.T) {
	k := keyWithRuns(500000, 100000, -50000, 200000)
	require.Equal(t, 3, k.TotalRuns)
	require.Equal(t, int64(250000), k.TotalProfit)
	assert.InDelta(t, -50.0, ROI(&k), 1e-9)
}

func TestROI_NoRunsIsZero(t *testing.T) {
	k := keyWithRuns(750000)
	assert.Equal(t, 0.0, ROI(&k))
}

func TestAverageProfitPerRun(t *testing.T) {
	k := keyWithRuns(100, 300, 100, 200)
	assert.InDelta(t, 200.0, AverageProfitPerRun(&k), 1e-9)

	empty := keyWithRuns(100)
	assert.Equal(t, 0.0, AverageProfitPerRun(&empty))
}

func TestPortfolioTotals(t *testing.T) {
	keys := []models.Key{
		keyWithRuns(100, 50),
		keyWithRuns(200, 25, 25),
	}
	got := PortfolioTotals(keys)
	assert.Equal(t, int64(300), got.Investment)
	assert.Equal(t, int64(100), got.Profit)
	assert.Equal(t, 3, got.Runs)
}

func TestRollupByLocation(t *testing.T) {
	farm := keyWithRuns(10, 100)
	armory := keyWithRuns(10, 200, 300)
	armory.Location = models.LocationArmory
	keys := []models.Key{farm, armory}

	rollups := RollupByLocation(keys)
	require.Len(t, rollups, 4, "table view keeps every known location")

	byLoc := map[models.Location]LocationRollup{}
	for _, r := range rollups {
		byLoc[r.Location] = r
	}
	assert.Equal(t, int64(100), byLoc[models.LocationFarm].Profit)
	assert.Equal(t, 1, byLoc[models.LocationFarm].Runs)
	assert.Equal(t, int64(500), byLoc[models.LocationArmory].Profit)
	assert.Equal(t, 2, byLoc[models.LocationArmory].Runs)
	assert.Zero(t, byLoc[models.LocationNorthridge].Runs)

	active := Nonzero(rollups)
	require.Len(t, active, 2, "chart view drops idle locations")
}

func TestRollupByDay_ZeroFillsAndAccumulates(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	k := models.Key{Name: "K", Location: models.LocationFarm, Cost: 1, Runs: []models.Run{
		{RunNumber: 1, Profit: 100, Date: now.AddDate(0, 0, -6)},
		{RunNumber: 2, Profit: 50, Date: now.AddDate(0, 0, -2)},
		{RunNumber: 3, Profit: -20, Date: now.AddDate(0, 0, -2)},
		{RunNumber: 4, Profit: 999, Date: now.AddDate(0, 0, -10)}, // outside window
	}}

	points := RollupByDay([]models.Key{k}, 7, now)
	require.Len(t, points, 7, "every day of the window appears")

	assert.Equal(t, int64(100), points[0].Profit)
	assert.Equal(t, int64(100), points[0].CumulativeProfit)
	assert.Equal(t, int64(0), points[1].Profit, "idle days carry zero profit")
	assert.Equal(t, int64(100), points[1].CumulativeProfit, "cumulative line has no gaps")
	assert.Equal(t, int64(30), points[4].Profit)
	assert.Equal(t, int64(130), points[4].CumulativeProfit)
	assert.Equal(t, int64(130), points[6].CumulativeProfit)

	for i := 1; i < len(points); i++ {
		assert.Equal(t, points[i-1].Day.AddDate(0, 0, 1), points[i].Day)
	}
}

func TestPeriodSummary(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	k := models.Key{Name: "K", Location: models.LocationFarm, Cost: 1, Runs: []models.Run{
		{RunNumber: 1, Profit: 100, Date: now.AddDate(0, 0, -5)},
		{RunNumber: 2, Profit: 300, Date: now.AddDate(0, 0, -10)},
		{RunNumber: 3, Profit: 200, Date: now.AddDate(0, 0, -45)},
		{RunNumber: 4, Profit: 999, Date: now.AddDate(0, 0, -90)}, // older than both periods
	}}

	c := PeriodSummary([]models.Key{k}, now)
	assert.Equal(t, int64(400), c.CurrentProfit)
	assert.Equal(t, 2, c.CurrentRuns)
	assert.Equal(t, int64(200), c.PreviousProfit)
	assert.Equal(t, 1, c.PreviousRuns)
	assert.InDelta(t, 100.0, c.ProfitDeltaPct, 1e-9)
	assert.InDelta(t, 100.0, c.RunsDeltaPct, 1e-9)
}

func TestPeriodSummary_EmptyPeriods(t *testing.T) {
	c := PeriodSummary(nil, time.Now())
	assert.Zero(t, c.ProfitDeltaPct)
	assert.Zero(t, c.RunsDeltaPct)
}

func TestSortedRuns(t *testing.T) {
	k := keyWithRuns(1, 300, 100, 200)

	byNumberDesc := SortedRuns(&k, false, true)
	assert.Equal(t, 3, byNumberDesc[0].RunNumber)

	byProfitAsc := SortedRuns(&k, true, false)
	assert.Equal(t, int64(100), byProfitAsc[0].Profit)
	assert.Equal(t, int64(300), byProfitAsc[2].Profit)

	// The stored order is untouched.
	assert.Equal(t, 1, k.Runs[0].RunNumber)
}

func TestFilterArmors(t *testing.T) {
	armors := []models.Armor{
		{Name: "926 Composite Body Armor", Kind: models.ArmorTypeBody},
		{Name: "HMP Exoskeleton", Kind: models.ArmorTypeRig},
		{Name: "Composite Rig", Kind: models.ArmorTypeRig},
	}

	assert.Len(t, FilterArmors(armors, "composite", ""), 2)
	assert.Len(t, FilterArmors(armors, "", models.ArmorTypeRig), 2)
	assert.Len(t, FilterArmors(armors, "composite", models.ArmorTypeRig), 1)
	assert.Len(t, FilterArmors(armors, "", ""), 3)
}

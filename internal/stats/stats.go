// Package stats computes derived views over keys and armor pieces: ROI,
// per-location and per-day rollups, portfolio totals and repair projections.
// Everything here is a pure function over the models; nothing mutates its
// inputs.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/raidtracker/internal/models"
)

// ROI returns the key's return on investment in percent:
// (totalProfit - cost) / cost * 100. A key with no runs yields 0 regardless
// of cost.
func ROI(k *models.Key) float64 {
	if k.TotalRuns == 0 {
		return 0
	}
	return float64(k.TotalProfit-k.Cost) / float64(k.Cost) * 100
}

// AverageProfitPerRun returns totalProfit / run count, 0 for no runs.
func AverageProfitPerRun(k *models.Key) float64 {
	if len(k.Runs) == 0 {
		return 0
	}
	return float64(k.TotalProfit) / float64(len(k.Runs))
}

// Totals are portfolio-wide sums over all keys.
type Totals struct {
	Investment int64
	Profit     int64
	Runs       int
}

// PortfolioTotals sums cost, profit and run counts over the key list.
func PortfolioTotals(keys []models.Key) Totals {
	var t Totals
	for i := range keys {
		t.Investment += keys[i].Cost
		t.Profit += keys[i].TotalProfit
		t.Runs += keys[i].TotalRuns
	}
	return t
}

// LocationRollup groups profit and run counts for one raid location.
type LocationRollup struct {
	Location models.Location
	Profit   int64
	Runs     int
}

// RollupByLocation sums profit and runs per known location, in display
// order. Locations without activity are included with zero values; table
// views show the full list, chart views filter through Nonzero.
func RollupByLocation(keys []models.Key) []LocationRollup {
	out := make([]LocationRollup, 0, len(models.Locations()))
	for _, loc := range models.Locations() {
		r := LocationRollup{Location: loc}
		for i := range keys {
			if keys[i].Location != loc {
				continue
			}
			r.Profit += keys[i].TotalProfit
			r.Runs += keys[i].TotalRuns
		}
		out = append(out, r)
	}
	return out
}

// Nonzero filters a location rollup down to entries with any activity.
func Nonzero(rollups []LocationRollup) []LocationRollup {
	out := make([]LocationRollup, 0, len(rollups))
	for _, r := range rollups {
		if r.Profit != 0 || r.Runs != 0 {
			out = append(out, r)
		}
	}
	return out
}

// DayPoint is one day of the profit trend. Days with no runs appear with
// Profit 0 so the cumulative line has no gaps.
type DayPoint struct {
	Day              time.Time
	Profit           int64
	CumulativeProfit int64
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RollupByDay builds the trailing profit trend over rangeDays calendar days
// ending today (inclusive). The cumulative sum runs in date order and starts
// at zero within the window.
func RollupByDay(keys []models.Key, rangeDays int, now time.Time) []DayPoint {
	today := startOfDay(now)
	first := today.AddDate(0, 0, -(rangeDays - 1))

	perDay := make(map[time.Time]int64)
	for i := range keys {
		for _, run := range keys[i].Runs {
			day := startOfDay(run.Date.In(now.Location()))
			if day.Before(first) || day.After(today) {
				continue
			}
			perDay[day] += run.Profit
		}
	}

	out := make([]DayPoint, 0, rangeDays)
	var cumulative int64
	for d := first; !d.After(today); d = d.AddDate(0, 0, 1) {
		profit := perDay[d]
		cumulative += profit
		out = append(out, DayPoint{Day: d, Profit: profit, CumulativeProfit: cumulative})
	}
	return out
}

// PeriodComparison compares the trailing 30 days against the 30 days before
// that. Delta percentages are 0 when the previous period had no activity and
// the current one doesn't either, and 100 when activity appeared from nothing.
type PeriodComparison struct {
	CurrentProfit  int64
	PreviousProfit int64
	CurrentRuns    int
	PreviousRuns   int
	ProfitDeltaPct float64
	RunsDeltaPct   float64
}

func deltaPct(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

// PeriodSummary computes the dashboard's 30-day comparison cards.
func PeriodSummary(keys []models.Key, now time.Time) PeriodComparison {
	cutoff := now.AddDate(0, 0, -30)
	prevCutoff := now.AddDate(0, 0, -60)

	var c PeriodComparison
	for i := range keys {
		for _, run := range keys[i].Runs {
			switch {
			case !run.Date.Before(cutoff) && !run.Date.After(now):
				c.CurrentProfit += run.Profit
				c.CurrentRuns++
			case !run.Date.Before(prevCutoff) && run.Date.Before(cutoff):
				c.PreviousProfit += run.Profit
				c.PreviousRuns++
			}
		}
	}
	c.ProfitDeltaPct = deltaPct(float64(c.CurrentProfit), float64(c.PreviousProfit))
	c.RunsDeltaPct = deltaPct(float64(c.CurrentRuns), float64(c.PreviousRuns))
	return c
}

// SortedRuns returns the key's runs ordered by run number or profit, without
// touching the stored order.
func SortedRuns(k *models.Key, byProfit, descending bool) []models.Run {
	runs := make([]models.Run, len(k.Runs))
	copy(runs, k.Runs)
	sort.SliceStable(runs, func(i, j int) bool {
		if byProfit {
			if descending {
				return runs[i].Profit > runs[j].Profit
			}
			return runs[i].Profit < runs[j].Profit
		}
		if descending {
			return runs[i].RunNumber > runs[j].RunNumber
		}
		return runs[i].RunNumber < runs[j].RunNumber
	})
	return runs
}

// FilterArmors narrows an armor list by case-insensitive name substring and,
// when kind is non-empty, by armor kind.
func FilterArmors(armors []models.Armor, search string, kind models.ArmorType) []models.Armor {
	needle := strings.ToLower(search)
	out := make([]models.Armor, 0, len(armors))
	for i := range armors {
		if needle != "" && !strings.Contains(strings.ToLower(armors[i].Name), needle) {
			continue
		}
		if kind != "" && armors[i].Kind != kind {
			continue
		}
		out = append(out, armors[i])
	}
	return out
}

// Package models defines the tracker's data contracts: profiles, keys with
// their run histories, and armor pieces with their repair histories. All
// shapes are plain structs persisted as JSON; normalization rules applied at
// the repository's load boundary live here too.
package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/raidtracker/internal/common"
)

// ErrRunNotFound is returned by run edits/deletes for an unknown run number.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded use of a key. Run numbers are dense and 1-based within
// the owning key; profits are signed (a run can lose money).
type Run struct {
	RunNumber int       `json:"runNumber"`
	Profit    int64     `json:"profit"`
	Date      time.Time `json:"date"`
}

// Key is a purchasable raid key tracked for profitability.
//
// TotalRuns and TotalProfit are denormalized from Runs for display; every
// list mutation goes through recomputeTotals so they never drift from the
// run list. CurrentUses tracks recorded runs one to one, except that the
// user may explicitly reset the badge to zero.
type Key struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    Location `json:"location"`
	Cost        int64    `json:"cost"`
	CurrentUses int      `json:"currentUses"`
	TotalRuns   int      `json:"totalRuns"`
	TotalProfit int64    `json:"totalProfit"`
	Runs        []Run    `json:"runs"`
}

// ValidateKey checks the fields required before a key write is accepted.
// Violations wrap common.ErrValidation and name the offending field.
func ValidateKey(k *Key) error {
	if strings.TrimSpace(k.Name) == "" {
		return fmt.Errorf("%w: key name is required", common.ErrValidation)
	}
	if !KnownLocation(k.Location) {
		return fmt.Errorf("%w: unknown location %q", common.ErrValidation, k.Location)
	}
	if k.Cost <= 0 {
		return fmt.Errorf("%w: key cost must be greater than 0", common.ErrValidation)
	}
	return nil
}

// recomputeTotals rebuilds TotalRuns and TotalProfit from the run list.
func (k *Key) recomputeTotals() {
	k.TotalRuns = len(k.Runs)
	var sum int64
	for _, r := range k.Runs {
		sum += r.Profit
	}
	k.TotalProfit = sum
}

// AddRun appends a run with the next dense run number, bumps the uses badge
// and recomputes totals.
func (k *Key) AddRun(profit int64, at time.Time) Run {
	run := Run{RunNumber: len(k.Runs) + 1, Profit: profit, Date: at}
	k.Runs = append(k.Runs, run)
	k.CurrentUses++
	k.recomputeTotals()
	return run
}

// EditRun replaces the profit of the run with the given number and recomputes
// totals from the full list.
func (k *Key) EditRun(runNumber int, profit int64) error {
	for i := range k.Runs {
		if k.Runs[i].RunNumber == runNumber {
			k.Runs[i].Profit = profit
			k.recomputeTotals()
			return nil
		}
	}
	return fmt.Errorf("%w: #%d", ErrRunNotFound, runNumber)
}

// DeleteRun removes the run with the given number, renumbers the remaining
// runs densely from 1 in run-number order, and recomputes totals. The uses
// badge is reconciled to match the surviving run count.
func (k *Key) DeleteRun(runNumber int) error {
	kept := make([]Run, 0, len(k.Runs))
	found := false
	for _, r := range k.Runs {
		if r.RunNumber == runNumber {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("%w: #%d", ErrRunNotFound, runNumber)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].RunNumber < kept[j].RunNumber })
	for i := range kept {
		kept[i].RunNumber = i + 1
	}
	k.Runs = kept
	k.recomputeTotals()
	k.CurrentUses = k.TotalRuns
	return nil
}

// ResetUses zeroes the uses badge without touching run history.
func (k *Key) ResetUses() {
	k.CurrentUses = 0
}

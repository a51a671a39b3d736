package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/raidtracker/internal/models"
	"github.com/dmitrijs2005/raidtracker/internal/stats"
)

// Keys prints the active profile's keys with their derived metrics.
func (a *App) Keys(ctx context.Context) error {
	p, err := a.service.ActiveProfile(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	if len(p.Keys) == 0 {
		fmt.Fprintln(a.out, "No keys yet, use 'addkey'")
		return nil
	}
	for i := range p.Keys {
		k := &p.Keys[i]
		fmt.Fprintf(a.out, "%d. %s (%s)  cost: %d  uses: %d  runs: %d  profit: %d  roi: %.1f%%  avg/run: %.0f\n",
			i+1, k.Name, k.Location, k.Cost, k.CurrentUses, k.TotalRuns, k.TotalProfit,
			stats.ROI(k), stats.AverageProfitPerRun(k))
	}
	return nil
}

// pickKey prompts for a key by list position.
func (a *App) pickKey(ctx context.Context) (*models.Key, error) {
	p, err := a.service.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}
	if len(p.Keys) == 0 {
		return nil, fmt.Errorf("no keys yet, use 'addkey'")
	}
	options := make([]string, 0, len(p.Keys))
	for i := range p.Keys {
		options = append(options, fmt.Sprintf("%s (%s)", p.Keys[i].Name, p.Keys[i].Location))
	}
	idx, err := GetChoice(a.reader, "Keys:", options, a.out)
	if err != nil {
		return nil, err
	}
	return &p.Keys[idx], nil
}

// pickLocation prompts for one of the known raid locations.
func (a *App) pickLocation() (models.Location, error) {
	locs := models.Locations()
	options := make([]string, 0, len(locs))
	for _, l := range locs {
		options = append(options, string(l))
	}
	idx, err := GetChoice(a.reader, "Location:", options, a.out)
	if err != nil {
		return "", err
	}
	return locs[idx], nil
}

// AddKey prompts for the key fields and records it.
func (a *App) AddKey(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Key name", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	location, err := a.pickLocation()
	if err != nil {
		a.printErr(err)
		return err
	}
	cost, err := GetInt(a.reader, "Cost", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	k, err := a.service.AddKey(ctx, name, location, cost)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Added %s\n", k.Name)
	return nil
}

// EditKey updates a key's name, location and cost.
func (a *App) EditKey(ctx context.Context) error {
	k, err := a.pickKey(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	name, err := GetSimpleText(a.reader, fmt.Sprintf("New name [%s]", k.Name), a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if name == "" {
		name = k.Name
	}
	location, err := a.pickLocation()
	if err != nil {
		a.printErr(err)
		return err
	}
	cost, err := GetInt(a.reader, fmt.Sprintf("Cost [%d]", k.Cost), a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if err := a.service.EditKey(ctx, k.ID, name, location, cost); err != nil {
		a.printErr(err)
		return err
	}
	return nil
}

// DeleteKey removes a key and its runs after confirmation.
func (a *App) DeleteKey(ctx context.Context) error {
	k, err := a.pickKey(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %s and its %d runs? (y/n)", k.Name, k.TotalRuns), a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if confirm != "y" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.service.DeleteKey(ctx, k.ID); err != nil {
		a.printErr(err)
		return err
	}
	return nil
}

// ResetKey zeroes the uses badge of a key.
func (a *App) ResetKey(ctx context.Context) error {
	k, err := a.pickKey(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	if err := a.service.ResetKeyUses(ctx, k.ID); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Uses reset for %s\n", k.Name)
	return nil
}

// AddRun records a run with its profit against a key.
func (a *App) AddRun(ctx context.Context) error {
	k, err := a.pickKey(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	profit, err := GetInt(a.reader, "Profit (negative for a loss)", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	run, err := a.service.AddRun(ctx, k.ID, profit)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Recorded run #%d\n", run.RunNumber)
	return nil
}

// pickRun prompts for one of the key's runs, newest first.
func (a *App) pickRun(k *models.Key) (int, error) {
	if len(k.Runs) == 0 {
		return 0, fmt.Errorf("no runs recorded for %s", k.Name)
	}
	runs := stats.SortedRuns(k, false, true)
	options := make([]string, 0, len(runs))
	for _, r := range runs {
		options = append(options, fmt.Sprintf("#%d  %s  profit: %d", r.RunNumber, r.Date.Format("2006-01-02"), r.Profit))
	}
	idx, err := GetChoice(a.reader, "Runs:", options, a.out)
	if err != nil {
		return 0, err
	}
	return runs[idx].RunNumber, nil
}

// EditRun replaces the profit of a recorded run.
func (a *App) EditRun(ctx context.Context) error {
	k, err := a.pickKey(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	runNumber, err := a.pickRun(k)
	if err != nil {
		a.printErr(err)
		return err
	}
	profit, err := GetInt(a.reader, "New profit", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if err := a.service.EditRun(ctx, k.ID, runNumber, profit); err != nil {
		a.printErr(err)
		return err
	}
	return nil
}

// DeleteRun removes a recorded run; remaining runs are renumbered.
func (a *App) DeleteRun(ctx context.Context) error {
	k, err := a.pickKey(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	runNumber, err := a.pickRun(k)
	if err != nil {
		a.printErr(err)
		return err
	}
	if err := a.service.DeleteRun(ctx, k.ID, runNumber); err != nil {
		a.printErr(err)
		return err
	}
	return nil
}

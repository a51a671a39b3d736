package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/raidtracker/internal/stats"
)

// Stats prints the dashboard: portfolio totals, the 30-day comparison and
// the per-location breakdown.
func (a *App) Stats(ctx context.Context) error {
	p, err := a.service.ActiveProfile(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}

	totals := stats.PortfolioTotals(p.Keys)
	fmt.Fprintf(a.out, "Investment: %d  Profit: %d  Runs: %d\n", totals.Investment, totals.Profit, totals.Runs)

	c := stats.PeriodSummary(p.Keys, a.service.Now())
	fmt.Fprintf(a.out, "Last 30 days: profit %d (%+.1f%%), runs %d (%+.1f%%)\n",
		c.CurrentProfit, c.ProfitDeltaPct, c.CurrentRuns, c.RunsDeltaPct)

	fmt.Fprintln(a.out, "By location:")
	for _, r := range stats.RollupByLocation(p.Keys) {
		fmt.Fprintf(a.out, "  %-12s profit: %-10d runs: %d\n", r.Location, r.Profit, r.Runs)
	}
	return nil
}

// Trend prints the daily profit trend for a prompted window of days.
func (a *App) Trend(ctx context.Context) error {
	p, err := a.service.ActiveProfile(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}

	days, err := GetInt(a.reader, "Window in days (e.g. 7, 30)", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if days < 1 {
		err := fmt.Errorf("window must be at least 1 day")
		a.printErr(err)
		return err
	}

	for _, pt := range stats.RollupByDay(p.Keys, int(days), a.service.Now()) {
		fmt.Fprintf(a.out, "%s  profit: %-10d cumulative: %d\n",
			pt.Day.Format("2006-01-02"), pt.Profit, pt.CumulativeProfit)
	}
	return nil
}

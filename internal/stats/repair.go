package stats

import (
	"math"

	"github.com/dmitrijs2005/raidtracker/internal/models"
)

// RepairRating is the qualitative advice shown next to a projected repair.
type RepairRating string

const (
	RatingExcellent      RepairRating = "Excellent repair choice"
	RatingDecent         RepairRating = "Decent repair option"
	RatingNotRecommended RepairRating = "Not recommended"
)

// RepairProjection is the outcome of accepting a repair tier: the durability
// left after the tier's deduction, and how that compares to the armor's
// condition thresholds.
type RepairProjection struct {
	ResultingDurability float64
	Rating              RepairRating
}

// RepairResult projects a repair without applying it. The resulting
// durability is max(0, current - deduction), reported rounded to one decimal
// the way the game displays it; the rating compares the raw value against
// the like-new and worn thresholds.
func RepairResult(a *models.Armor, currentDurability float64, tier models.RepairTier) RepairProjection {
	deduction := a.RepairDeductions.ForTier(tier)
	after := math.Max(0, currentDurability-deduction)

	rating := RatingNotRecommended
	switch {
	case after >= a.LikeNewDurability:
		rating = RatingExcellent
	case after >= a.WornDurability:
		rating = RatingDecent
	}

	return RepairProjection{
		ResultingDurability: math.Round(after*10) / 10,
		Rating:              rating,
	}
}

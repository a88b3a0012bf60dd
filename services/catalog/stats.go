package catalog

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Per-item environmental estimates shown on the my-listings screen.
const (
	co2SavedPerItemKG      = 2.1
	wasteDivertedPerItemKG = 0.5
)

// SellerStats summarizes one seller's listings.
type SellerStats struct {
	TotalListings     int
	TotalValue        decimal.Decimal
	AvgDaysListed     int
	CO2SavedKG        float64
	WasteDivertedKG   float64
	ItemsGivenNewLife int
}

// Stats computes the my-listings summary for one seller.
func (s *Service) Stats(ctx context.Context, sellerID string) SellerStats {
	mine := s.SellerListings(ctx, sellerID)

	stats := SellerStats{
		TotalListings:     len(mine),
		TotalValue:        decimal.Zero,
		ItemsGivenNewLife: len(mine),
		CO2SavedKG:        float64(len(mine)) * co2SavedPerItemKG,
		WasteDivertedKG:   float64(len(mine)) * wasteDivertedPerItemKG,
	}

	totalDays := 0
	for _, p := range mine {
		stats.TotalValue = stats.TotalValue.Add(p.Price)
		totalDays += int(math.Floor(time.Since(p.CreatedAt).Hours() / 24))
	}
	if len(mine) > 0 {
		stats.AvgDaysListed = int(math.Round(float64(totalDays) / float64(len(mine))))
	}
	return stats
}

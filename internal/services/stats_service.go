package services

import (
	"context"
	"sort"
	"time"

	"github.com/greenroots/treefund-backend/internal/apperrors"
	"github.com/greenroots/treefund-backend/internal/models"
	"github.com/greenroots/treefund-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure StatsServiceImpl implements StatsService
var _ StatsService = (*StatsServiceImpl)(nil)

// defaultTreeUnitAmount is the fallback tree-per-currency ratio: one tree per
// 50 currency units, matching the smallest donation tier.
const defaultTreeUnitAmount = 50

type StatsServiceImpl struct {
	donationRepo repositories.DonationRepository
	treeUnit     int
	topN         int
}

// NewStatsService creates a new StatsService implementation. treeUnit is the
// currency amount that funds one tree; topN bounds the summary's top-donor
// list.
func NewStatsService(donationRepo repositories.DonationRepository, treeUnit, topN int) *StatsServiceImpl {
	if treeUnit <= 0 {
		treeUnit = defaultTreeUnitAmount
	}
	if topN <= 0 {
		topN = 10
	}
	return &StatsServiceImpl{
		donationRepo: donationRepo,
		treeUnit:     treeUnit,
		topN:         topN,
	}
}

// GlobalStats computes the public impact figures. Only Success donations
// count toward any total; amountUsed sums Success donations flagged Yes, so
// remainingAmount is always totalDonation minus amountUsed.
func (s *StatsServiceImpl) GlobalStats(ctx context.Context) (*models.GlobalStats, error) {
	donations, err := s.successSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	var total, used int
	for _, d := range donations {
		total += d.Amount
		if d.AmountUsed == models.AmountUsedYes {
			used += d.Amount
		}
	}

	return &models.GlobalStats{
		TotalTrees:      total / s.treeUnit,
		TotalDonation:   total,
		AmountUsed:      used,
		RemainingAmount: total - used,
	}, nil
}

// Summary computes the tracker view. All three aggregates derive from one
// snapshot read, so a donation created mid-request cannot appear in one
// series and be missing from another.
func (s *StatsServiceImpl) Summary(ctx context.Context) (*models.DonationSummary, error) {
	donations, err := s.successSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DonationSummary{
		MonthlyTrees:          s.monthlySeries(donations),
		DonorTypeDistribution: s.donorTypeDistribution(donations),
		TopDonors:             s.topDonors(donations, s.topN),
	}, nil
}

// TopDonors returns the n highest-ranked donors by tree-equivalent of their
// Success donations.
func (s *StatsServiceImpl) TopDonors(ctx context.Context, n int) ([]models.TopDonor, error) {
	donations, err := s.successSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.topDonors(donations, n), nil
}

// successSnapshot reads the Success set once, ordered by creation time
// ascending. One cursor per call keeps each response internally consistent.
func (s *StatsServiceImpl) successSnapshot(ctx context.Context) ([]*models.Donation, error) {
	donations, err := s.donationRepo.FindByStatus(ctx, models.StatusSuccess)
	if err != nil {
		return nil, &apperrors.UpstreamError{Op: "donation store", Err: err}
	}
	return donations, nil
}

// monthlySeries buckets donations by calendar month of creation and converts
// each bucket's amount to trees. Months without donations are omitted; the
// series is chronological.
func (s *StatsServiceImpl) monthlySeries(donations []*models.Donation) []models.MonthlyTrees {
	buckets := make(map[string]int)
	for _, d := range donations {
		key := d.CreatedAt.Format("2006-01")
		buckets[key] += d.Amount
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	series := make([]models.MonthlyTrees, 0, len(months))
	for _, m := range months {
		series = append(series, models.MonthlyTrees{Month: m, Trees: buckets[m] / s.treeUnit})
	}
	return series
}

// donorTypeDistribution reports each donor type's percentage of the total
// Success amount. All three types are always present, zero-valued types
// included, so chart shapes stay stable.
func (s *StatsServiceImpl) donorTypeDistribution(donations []*models.Donation) []models.DonorTypeShare {
	sums := make(map[models.DonorType]int)
	total := 0
	for _, d := range donations {
		sums[d.DonorType] += d.Amount
		total += d.Amount
	}

	shares := make([]models.DonorTypeShare, 0, len(models.DonorTypes))
	for _, dt := range models.DonorTypes {
		pct := 0.0
		if total > 0 {
			pct = float64(sums[dt]) / float64(total) * 100
		}
		shares = append(shares, models.DonorTypeShare{DonorType: dt, Percentage: pct})
	}
	return shares
}

type donorTally struct {
	name     string
	amount   int
	earliest time.Time
}

// topDonors ranks donors by the tree-equivalent of their summed Success
// amounts, descending; ties break toward the earlier first donation.
func (s *StatsServiceImpl) topDonors(donations []*models.Donation, n int) []models.TopDonor {
	tallies := make(map[primitive.ObjectID]*donorTally)
	order := make([]primitive.ObjectID, 0)
	for _, d := range donations {
		t, ok := tallies[d.UserID]
		if !ok {
			t = &donorTally{name: d.Name, earliest: d.CreatedAt}
			tallies[d.UserID] = t
			order = append(order, d.UserID)
		}
		t.amount += d.Amount
		if d.CreatedAt.Before(t.earliest) {
			t.earliest = d.CreatedAt
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := tallies[order[i]], tallies[order[j]]
		if a.amount/s.treeUnit != b.amount/s.treeUnit {
			return a.amount/s.treeUnit > b.amount/s.treeUnit
		}
		return a.earliest.Before(b.earliest)
	})

	if n < 0 {
		n = 0
	}
	if n > len(order) {
		n = len(order)
	}
	top := make([]models.TopDonor, 0, n)
	for _, id := range order[:n] {
		t := tallies[id]
		top = append(top, models.TopDonor{Name: t.name, Trees: t.amount / s.treeUnit})
	}
	return top
}

package order

import (
	"context"
	"strings"
	"time"

	"github.com/bersihin/laundry-pos/internal/domain/pricing"
)

// ListFilter is the combined filter state of a list screen. Zero values and
// the "semua" sentinels pass their stage through unchanged.
type ListFilter struct {
	Payment       string
	ProductionTab string
	Query         string
	Service       string
	Status        string
}

// Service exposes the order lifecycle operations the POS screens call.
type Service struct {
	repo   *Repository
	events EventSink
	now    func() time.Time
}

// NewService creates the order service.
func NewService(repo *Repository, events EventSink) *Service {
	return &Service{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

// Create prices the draft and persists a new order. Incomplete drafts are
// rejected with a ValidationError describing the missing part; the caller
// keeps the form open.
func (s *Service) Create(ctx context.Context, draft pricing.Draft) (*Order, error) {
	if !pricing.CanSubmit(draft) {
		reason := "at least one line with weight or quantity is required"
		if strings.TrimSpace(draft.CustomerName) == "" {
			reason = "customer name is required"
		}
		return nil, &ValidationError{Reason: reason}
	}

	o := Order{
		CustomerName:  draft.CustomerName,
		CustomerPhone: draft.CustomerPhone,

		Items:       pricing.ItemCount(draft),
		Weight:      pricing.TotalWeight(draft),
		ServiceType: pricing.ServiceLabel(draft),
		ItemDetails: pricing.DetailText(draft),
		Fragrance:   draft.Fragrance,
		Notes:       draft.Notes,

		TotalPrice:    pricing.Total(draft),
		PaidAmount:    0,
		PaymentStatus: PaymentBelumBayar,

		Status:           StatusDalamProses,
		ProductionStatus: ProductionAntrian,

		CreatedAt:     s.now(),
		EstimatedDate: draft.EstimatedDate,
		PickupTime:    draft.PickupTime,
	}

	created := s.repo.Create(ctx, o)
	s.events.OrderCreated(ctx, created)
	return &created, nil
}

// AdvanceProduction moves the order one production stage forward. It returns
// ErrNotFound for unknown ids and ErrInvalidTransition for orders already at
// selesai; in both cases the collection is unchanged.
func (s *Service) AdvanceProduction(ctx context.Context, id string) (*Order, error) {
	var from ProductionStatus
	updated, err := s.repo.Update(ctx, id, func(o *Order) error {
		from = o.ProductionStatus
		return Advance(o)
	})
	if err != nil {
		return nil, err
	}

	s.events.ProductionAdvanced(ctx, updated, from)
	return &updated, nil
}

// RecordPayment adds amount to the order's paid total and re-derives the
// payment status from paid vs total: nothing paid is belum_bayar, a partial
// payment is dp, and reaching the total is lunas. Payments past the total
// are capped at it.
func (s *Service) RecordPayment(ctx context.Context, id string, amount int64) (*Order, error) {
	if amount <= 0 {
		return nil, &ValidationError{Reason: "payment amount must be positive"}
	}

	updated, err := s.repo.Update(ctx, id, func(o *Order) error {
		o.PaidAmount += amount
		if o.PaidAmount > o.TotalPrice {
			o.PaidAmount = o.TotalPrice
		}
		switch {
		case o.PaidAmount <= 0:
			o.PaymentStatus = PaymentBelumBayar
		case o.PaidAmount < o.TotalPrice:
			o.PaymentStatus = PaymentDP
		default:
			o.PaymentStatus = PaymentLunas
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.PaymentRecorded(ctx, updated, amount)
	return &updated, nil
}

// Get returns one order by id.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List applies the screens' filter pipeline over a snapshot: payment and
// production tab filters, then free-text search, then service/status
// filters, then the sort. Stages compose without clobbering each other.
func (s *Service) List(ctx context.Context, filter ListFilter, mode SortMode) []Order {
	orders := s.repo.Snapshot(ctx)
	orders = FilterByPayment(orders, filter.Payment)
	orders = FilterByProductionTab(orders, filter.ProductionTab)
	orders = Search(orders, filter.Query)
	orders = FilterByService(orders, filter.Service)
	orders = FilterByStatus(orders, filter.Status)
	return Sort(orders, mode)
}

// All returns the full snapshot in canonical order, for export.
func (s *Service) All(ctx context.Context) []Order {
	return s.repo.Snapshot(ctx)
}

// Counts returns the production queue badges.
func (s *Service) Counts(ctx context.Context) ProductionCounts {
	return CountProduction(s.repo.Snapshot(ctx))
}

// Distribution returns the service-type distribution for the dashboard.
func (s *Service) Distribution(ctx context.Context) []DistributionBucket {
	return ServiceDistribution(s.repo.Snapshot(ctx))
}

// Suggest returns customer autocomplete entries derived from order history.
func (s *Service) Suggest(ctx context.Context, query string) []CustomerSuggestion {
	return SuggestCustomers(s.repo.Snapshot(ctx), query)
}

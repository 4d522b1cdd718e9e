package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bersihin/laundry-pos/internal/domain/catalog"
	"github.com/bersihin/laundry-pos/internal/domain/pricing"
)

type recordedEvent struct {
	kind   string
	id     string
	from   ProductionStatus
	amount int64
}

type mockSink struct {
	events []recordedEvent
}

func (m *mockSink) OrderCreated(_ context.Context, o Order) {
	m.events = append(m.events, recordedEvent{kind: "created", id: o.ID})
}

func (m *mockSink) ProductionAdvanced(_ context.Context, o Order, from ProductionStatus) {
	m.events = append(m.events, recordedEvent{kind: "advanced", id: o.ID, from: from})
}

func (m *mockSink) PaymentRecorded(_ context.Context, o Order, amount int64) {
	m.events = append(m.events, recordedEvent{kind: "payment", id: o.ID, amount: amount})
}

var fixedNow = time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, seed []Order) (*Service, *mockSink) {
	t.Helper()
	repo := NewRepository(context.Background(), &mockStore{orders: seed}, nil, zap.NewNop())
	sink := &mockSink{}
	svc := NewService(repo, sink)
	svc.now = func() time.Time { return fixedNow }
	return svc, sink
}

func validDraft() pricing.Draft {
	return pricing.Draft{
		CustomerName:  "Budi Santoso",
		CustomerPhone: "0812-1111",
		Kiloan: []pricing.KiloanEntry{{
			Service:    catalog.Service{ID: "cuci-reguler", Name: "Cuci Reguler", PricePerKg: decimal.NewFromInt(7000)},
			WeightText: "2,5",
		}},
		Satuan: []pricing.SatuanEntry{{
			Item: catalog.Item{ID: "jaket", Name: "Jaket", Price: 15000},
			Qty:  1,
		}},
		Fragrance:     "lavender",
		EstimatedDate: fixedNow.AddDate(0, 0, 2),
		PickupTime:    "17:00",
	}
}

func TestService_Create(t *testing.T) {
	svc, sink := newTestService(t, nil)

	o, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)

	assert.Equal(t, "ORD-001", o.ID)
	assert.Equal(t, int64(32500), o.TotalPrice)
	assert.Equal(t, int64(0), o.PaidAmount)
	assert.Equal(t, PaymentBelumBayar, o.PaymentStatus)
	assert.Equal(t, StatusDalamProses, o.Status)
	assert.Equal(t, ProductionAntrian, o.ProductionStatus)
	assert.Equal(t, fixedNow, o.CreatedAt)
	assert.Equal(t, "Cuci Reguler, Jaket", o.ServiceType)
	assert.Equal(t, "Cuci Reguler 2.5 kg; Jaket x1", o.ItemDetails)
	assert.Equal(t, 2, o.Items)
	assert.True(t, decimal.RequireFromString("2.5").Equal(o.Weight))
	assert.Equal(t, "lavender", o.Fragrance)

	require.Len(t, sink.events, 1)
	assert.Equal(t, recordedEvent{kind: "created", id: "ORD-001"}, sink.events[0])
}

func TestService_CreateRejectsIncompleteDrafts(t *testing.T) {
	tests := []struct {
		name  string
		draft func() pricing.Draft
	}{
		{
			name: "blank customer name",
			draft: func() pricing.Draft {
				d := validDraft()
				d.CustomerName = "  "
				return d
			},
		},
		{
			name: "no priced lines",
			draft: func() pricing.Draft {
				d := validDraft()
				d.Kiloan = nil
				d.Satuan = nil
				return d
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sink := newTestService(t, nil)

			o, err := svc.Create(context.Background(), tt.draft())

			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Nil(t, o)
			assert.Empty(t, sink.events)
			assert.Empty(t, svc.All(context.Background()))
		})
	}
}

func TestService_AdvanceProduction(t *testing.T) {
	svc, sink := newTestService(t, nil)
	created, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)

	// Three advances reach selesai.
	stages := []ProductionStatus{ProductionDiproses, ProductionSiapDiambil, ProductionSelesai}
	for _, want := range stages {
		o, err := svc.AdvanceProduction(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, want, o.ProductionStatus)
	}

	// Finishing production flips the customer status to siap_diambil.
	final, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSiapDiambil, final.Status)

	// A fourth advance is rejected and nothing changes.
	_, err = svc.AdvanceProduction(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
	unchanged, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *final, *unchanged)

	// created + 3 advances, none for the rejected call.
	assert.Len(t, sink.events, 4)
	assert.Equal(t, ProductionSiapDiambil, sink.events[3].from)
}

func TestService_AdvanceProductionUnknownID(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.AdvanceProduction(context.Background(), "ORD-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_RecordPayment(t *testing.T) {
	tests := []struct {
		name       string
		amounts    []int64
		wantPaid   int64
		wantStatus PaymentStatus
	}{
		{name: "partial payment is dp", amounts: []int64{10000}, wantPaid: 10000, wantStatus: PaymentDP},
		{name: "exact payment is lunas", amounts: []int64{32500}, wantPaid: 32500, wantStatus: PaymentLunas},
		{name: "two partials reaching total", amounts: []int64{20000, 12500}, wantPaid: 32500, wantStatus: PaymentLunas},
		{name: "overpayment capped at total", amounts: []int64{50000}, wantPaid: 32500, wantStatus: PaymentLunas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, nil)
			created, err := svc.Create(context.Background(), validDraft())
			require.NoError(t, err)

			var last *Order
			for _, amount := range tt.amounts {
				last, err = svc.RecordPayment(context.Background(), created.ID, amount)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantPaid, last.PaidAmount)
			assert.Equal(t, tt.wantStatus, last.PaymentStatus)
		})
	}
}

func TestService_RecordPaymentRejectsNonPositiveAmounts(t *testing.T) {
	svc, _ := newTestService(t, nil)
	created, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)

	for _, amount := range []int64{0, -5000} {
		_, err := svc.RecordPayment(context.Background(), created.ID, amount)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestService_List(t *testing.T) {
	svc, _ := newTestService(t, sampleOrders())

	got := svc.List(context.Background(), ListFilter{Payment: "lunas"}, SortHargaTinggi)
	assert.Equal(t, []string{"ORD-003", "ORD-004"}, ids(got))

	got = svc.List(context.Background(), ListFilter{ProductionTab: "semua", Query: "budi"}, SortTerlama)
	assert.Equal(t, []string{"ORD-001"}, ids(got))
}

func TestService_Aggregates(t *testing.T) {
	svc, _ := newTestService(t, sampleOrders())

	counts := svc.Counts(context.Background())
	assert.Equal(t, ProductionCounts{Antrian: 1, Diproses: 1, SiapDiambil: 1, Selesai: 1}, counts)

	buckets := svc.Distribution(context.Background())
	require.NotEmpty(t, buckets)
	sum := 0
	for _, b := range buckets {
		sum += b.Percentage
	}
	assert.Equal(t, 100, sum)
}

func TestService_Suggest(t *testing.T) {
	svc, _ := newTestService(t, sampleOrders())

	got := svc.Suggest(context.Background(), "budi")
	assert.Len(t, got, 2)
}

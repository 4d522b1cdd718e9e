package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByProductionStatus(t *testing.T) {
	orders := sampleOrders()

	assert.Equal(t, 1, CountByProductionStatus(orders, ProductionAntrian))
	assert.Equal(t, 1, CountByProductionStatus(orders, ProductionDiproses))
	assert.Equal(t, 1, CountByProductionStatus(orders, ProductionSiapDiambil))
	assert.Equal(t, 1, CountByProductionStatus(orders, ProductionSelesai))
	assert.Equal(t, 0, CountByProductionStatus(nil, ProductionAntrian))
}

func TestCountProduction(t *testing.T) {
	counts := CountProduction(sampleOrders())
	assert.Equal(t, ProductionCounts{Antrian: 1, Diproses: 1, SiapDiambil: 1, Selesai: 1}, counts)
}

func TestServiceDistribution(t *testing.T) {
	tests := []struct {
		name   string
		orders []Order
		want   []DistributionBucket
	}{
		{
			name:   "empty collection",
			orders: nil,
			want:   nil,
		},
		{
			name: "single type",
			orders: []Order{
				{ServiceType: "Cuci Reguler"},
				{ServiceType: "Cuci Reguler"},
			},
			want: []DistributionBucket{
				{Label: "Cuci Reguler", Count: 2, Percentage: 100},
			},
		},
		{
			name: "even split",
			orders: []Order{
				{ServiceType: "Cuci Reguler"},
				{ServiceType: "Cuci Express"},
			},
			want: []DistributionBucket{
				{Label: "Cuci Express", Count: 1, Percentage: 50},
				{Label: "Cuci Reguler", Count: 1, Percentage: 50},
			},
		},
		{
			name: "rounding reconciled on largest bucket",
			orders: []Order{
				{ServiceType: "Cuci Reguler"},
				{ServiceType: "Cuci Reguler"},
				{ServiceType: "Cuci Reguler"},
				{ServiceType: "Cuci Reguler"},
				{ServiceType: "Cuci Express"},
				{ServiceType: "Setrika Saja"},
			},
			// Raw: 66, 16, 16 (sums to 98); the largest absorbs the remainder.
			want: []DistributionBucket{
				{Label: "Cuci Reguler", Count: 4, Percentage: 68},
				{Label: "Cuci Express", Count: 1, Percentage: 16},
				{Label: "Setrika Saja", Count: 1, Percentage: 16},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServiceDistribution(tt.orders)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceDistribution_AlwaysSumsTo100(t *testing.T) {
	orders := []Order{
		{ServiceType: "A"}, {ServiceType: "A"}, {ServiceType: "A"},
		{ServiceType: "B"}, {ServiceType: "B"},
		{ServiceType: "C"},
		{ServiceType: "D"},
	}

	buckets := ServiceDistribution(orders)
	require.NotEmpty(t, buckets)

	sum := 0
	for _, b := range buckets {
		sum += b.Percentage
	}
	assert.Equal(t, 100, sum)
}

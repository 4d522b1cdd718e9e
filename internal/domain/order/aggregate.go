package order

import "sort"

// ProductionCounts holds the queue badges shown on the dashboard.
type ProductionCounts struct {
	Antrian     int `json:"antrian"`
	Diproses    int `json:"diproses"`
	SiapDiambil int `json:"siap_diambil"`
	Selesai     int `json:"selesai"`
}

// CountByProductionStatus counts orders at one production stage.
func CountByProductionStatus(orders []Order, state ProductionStatus) int {
	count := 0
	for _, o := range orders {
		if o.ProductionStatus == state {
			count++
		}
	}
	return count
}

// CountProduction tallies every production stage in one pass.
func CountProduction(orders []Order) ProductionCounts {
	var c ProductionCounts
	for _, o := range orders {
		switch o.ProductionStatus {
		case ProductionAntrian:
			c.Antrian++
		case ProductionDiproses:
			c.Diproses++
		case ProductionSiapDiambil:
			c.SiapDiambil++
		case ProductionSelesai:
			c.Selesai++
		}
	}
	return c
}

// DistributionBucket is one slice of the service-type distribution chart.
type DistributionBucket struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// ServiceDistribution groups orders by service type and computes whole
// percentages. Rounding leftovers are reconciled onto the largest bucket so
// the percentages always sum to exactly 100. Buckets are ordered by count
// descending, ties broken by label, so the chart is deterministic.
func ServiceDistribution(orders []Order) []DistributionBucket {
	if len(orders) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.ServiceType]++
	}

	buckets := make([]DistributionBucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, DistributionBucket{Label: label, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})

	total := len(orders)
	sum := 0
	for i := range buckets {
		buckets[i].Percentage = buckets[i].Count * 100 / total
		sum += buckets[i].Percentage
	}
	// Integer division always rounds down, so the shortfall lands on the
	// largest bucket (index 0 after sorting).
	buckets[0].Percentage += 100 - sum

	return buckets
}

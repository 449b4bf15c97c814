package pricing

import "github.com/shopspring/decimal"

// TierStats summarizes one price column.
type TierStats struct {
	Min  int64           `json:"min"`
	Max  int64           `json:"max"`
	Mean decimal.Decimal `json:"mean"`
}

// Summary is shown next to the table and chart.
type Summary struct {
	NonRefundable TierStats       `json:"non_refundable"`
	Refundable    TierStats       `json:"refundable"`
	MeanPremium   decimal.Decimal `json:"mean_premium"`
}

// Summarize computes per-tier min, max and mean. Means keep two decimals.
func Summarize(table PriceTable) Summary {
	if len(table.Rooms) == 0 {
		return Summary{}
	}

	nonRefundable := make([]int64, len(table.Rooms))
	refundable := make([]int64, len(table.Rooms))
	var premium int64
	for i, room := range table.Rooms {
		nonRefundable[i] = room.NonRefundable
		refundable[i] = room.Refundable
		premium += room.Refundable - room.NonRefundable
	}

	n := decimal.NewFromInt(int64(len(table.Rooms)))
	return Summary{
		NonRefundable: tierStats(nonRefundable),
		Refundable:    tierStats(refundable),
		MeanPremium:   decimal.NewFromInt(premium).DivRound(n, 2),
	}
}

func tierStats(values []int64) TierStats {
	stats := TierStats{Min: values[0], Max: values[0]}
	var sum int64
	for _, v := range values {
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		sum += v
	}
	stats.Mean = decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(int64(len(values))), 2)
	return stats
}

// Package pricing derives per-room prices from a single base price.
package pricing

import "github.com/shopspring/decimal"

// PricedRoom holds the two price tiers of one room type.
type PricedRoom struct {
	Name          string `json:"name"`
	NonRefundable int64  `json:"non_refundable"`
	Refundable    int64  `json:"refundable"`
}

// PriceTable is the result of one derivation, rooms in tariff order.
type PriceTable struct {
	Base  decimal.Decimal `json:"base"`
	Rooms []PricedRoom    `json:"rooms"`
}

// Deriver computes price tables with a fixed rounding mode.
type Deriver struct {
	Rounding RoundingMode
}

// Derive prices every tariff entry at base. base must already be validated
// with ParseBasePrice or be positive.
func (d Deriver) Derive(base decimal.Decimal) PriceTable {
	rooms := make([]PricedRoom, 0, len(tariff))
	for _, t := range tariff {
		rooms = append(rooms, PricedRoom{
			Name:          t.Name,
			NonRefundable: d.Rounding.round(base.Mul(t.Coefficient)),
			Refundable:    d.Rounding.round(base.Mul(t.Coefficient.Add(RefundablePremium))),
		})
	}

	return PriceTable{Base: base, Rooms: rooms}
}

// Derive uses round-half-to-even.
func Derive(base decimal.Decimal) PriceTable {
	return Deriver{Rounding: HalfEven}.Derive(base)
}

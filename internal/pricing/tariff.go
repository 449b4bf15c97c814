package pricing

import "github.com/shopspring/decimal"

// RoomTariff is one room type and its multiplier relative to the base price.
type RoomTariff struct {
	Name        string
	Coefficient decimal.Decimal
}

// RefundablePremium is added to every coefficient for the refundable tier.
var RefundablePremium = decimal.RequireFromString("0.15")

var tariff = []RoomTariff{
	{Name: "Eco", Coefficient: decimal.RequireFromString("0.80")},
	{Name: "Pokój 2 os z aneksem", Coefficient: decimal.RequireFromString("0.85")},
	{Name: "Pokój 2 os z balkonem", Coefficient: decimal.RequireFromString("0.90")},
	{Name: "Loftowy 1-2 os", Coefficient: decimal.RequireFromString("0.90")},
	{Name: "Loftowy 3-4 os", Coefficient: decimal.RequireFromString("0.95")},
	{Name: "Pokój 2 os z ogrodem", Coefficient: decimal.RequireFromString("0.95")},
	{Name: "Comfort Plus 2 os", Coefficient: decimal.RequireFromString("0.95")},
	{Name: "Comfort Plus z balkonem", Coefficient: decimal.RequireFromString("1.00")},
	{Name: "Spokojna 42,49,53", Coefficient: decimal.RequireFromString("1.05")},
	{Name: "Comfort Plus z ogrodem", Coefficient: decimal.RequireFromString("1.05")},
	{Name: "Superior 1-2 os", Coefficient: decimal.RequireFromString("1.10")},
	{Name: "Superior 3-4 os", Coefficient: decimal.RequireFromString("1.15")},
}

// Tariff returns a copy of the room tariff in display order.
func Tariff() []RoomTariff {
	out := make([]RoomTariff, len(tariff))
	copy(out, tariff)
	return out
}

// RoomCount is the number of room types every price table holds.
func RoomCount() int {
	return len(tariff)
}

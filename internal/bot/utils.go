package bot

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"roomprice/internal/pricing"
)

// FormatPriceTable renders the table as a monospace HTML block.
func FormatPriceTable(table pricing.PriceTable) string {
	width := utf8.RuneCountInString("Typ pokoju")
	for _, room := range table.Rooms {
		if n := utf8.RuneCountInString(room.Name); n > width {
			width = n
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "💵 Cena bazowa: %s PLN\n\n<pre>", html.EscapeString(table.Base.String()))
	fmt.Fprintf(&sb, "%s %10s %10s\n", pad("Typ pokoju", width), "Bezzwrotna", "Zwrotna")
	for _, room := range table.Rooms {
		fmt.Fprintf(&sb, "%s %10s %10s\n",
			pad(html.EscapeString(room.Name), width),
			fmt.Sprintf("%d PLN", room.NonRefundable),
			fmt.Sprintf("%d PLN", room.Refundable))
	}
	sb.WriteString("</pre>")
	return sb.String()
}

// FormatSummary renders the statistics under the table.
func FormatSummary(s pricing.Summary) string {
	return fmt.Sprintf(
		"📊 Statystyki:\n"+
			"- Bezzwrotna: min %d, maks %d, średnia %s PLN\n"+
			"- Zwrotna: min %d, maks %d, średnia %s PLN\n"+
			"- Średnia dopłata za zwrot: %s PLN",
		s.NonRefundable.Min, s.NonRefundable.Max, s.NonRefundable.Mean.StringFixed(2),
		s.Refundable.Min, s.Refundable.Max, s.Refundable.Mean.StringFixed(2),
		s.MeanPremium.StringFixed(2),
	)
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

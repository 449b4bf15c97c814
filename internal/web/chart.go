package web

import (
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"roomprice/internal/pricing"
)

const (
	chartWidth  = 760
	chartHeight = 360
	chartLeft   = 50
	chartRight  = 10
	chartTop    = 20
	chartBottom = 120
)

type bar struct {
	X, Y, Width, Height float64
	Class               string
	Title               string
}

type axisLabel struct {
	X, Y float64
	Text string
}

// barChart is an SVG grouped bar chart, one group per room type.
type barChart struct {
	Width, Height int
	BaselineY     float64
	Bars          []bar
	Labels        []axisLabel
	MaxLabel      string
}

func newBarChart(table pricing.PriceTable) barChart {
	c := barChart{
		Width:     chartWidth,
		Height:    chartHeight,
		BaselineY: chartHeight - chartBottom,
	}
	if len(table.Rooms) == 0 {
		return c
	}

	var peak int64 = 1
	for _, room := range table.Rooms {
		if room.Refundable > peak {
			peak = room.Refundable
		}
	}
	c.MaxLabel = formatPLN(peak)

	plotHeight := float64(chartHeight - chartTop - chartBottom)
	group := float64(chartWidth-chartLeft-chartRight) / float64(len(table.Rooms))
	barWidth := group * 0.35

	scale := func(v int64) float64 {
		return plotHeight * float64(v) / float64(peak)
	}

	for i, room := range table.Rooms {
		x := chartLeft + float64(i)*group + group*0.15

		h := scale(room.NonRefundable)
		c.Bars = append(c.Bars, bar{
			X: x, Y: c.BaselineY - h, Width: barWidth, Height: h,
			Class: "non-refundable",
			Title: fmt.Sprintf("%s: %s", room.Name, formatPLN(room.NonRefundable)),
		})

		h = scale(room.Refundable)
		c.Bars = append(c.Bars, bar{
			X: x + barWidth, Y: c.BaselineY - h, Width: barWidth, Height: h,
			Class: "refundable",
			Title: fmt.Sprintf("%s: %s", room.Name, formatPLN(room.Refundable)),
		})

		c.Labels = append(c.Labels, axisLabel{
			X:    x + barWidth,
			Y:    c.BaselineY + 12,
			Text: room.Name,
		})
	}

	return c
}

func formatPLN(v int64) string {
	return fmt.Sprintf("%d PLN", v)
}

var templateFuncs = template.FuncMap{
	"pln": formatPLN,
	"amount": func(d decimal.Decimal) string {
		return d.StringFixed(2) + " PLN"
	},
}

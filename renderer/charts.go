package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/budget"
)

// barWidth is the length of the longest bar, in characters.
const barWidth = 30

// bar draws a horizontal bar of ratio*barWidth blocks. Ratios are clamped to [0,1].
func bar(ratio float64) string {
	if math.IsNaN(ratio) || ratio <= 0 {
		return ""
	}
	ratio = min(ratio, 1)
	return strings.Repeat("█", int(math.Round(ratio*barWidth)))
}

type slice struct {
	Label   string
	Amount  budget.Amount
	Percent string
	Bar     string
}

type pie struct {
	Title  string
	Slices []slice
}

// newPie computes the share of each slice in the total.
// Shares are only defined when no slice is negative, otherwise they read "n/a".
func newPie(c budget.Chart[budget.Amount]) pie {
	var total budget.Amount
	shares := true
	for _, v := range c.Values {
		total = total.Add(v)
		shares = shares && !v.IsNegative()
	}
	p := pie{Title: c.Title}
	for i, label := range c.Labels {
		v := c.Values[i]
		s := slice{Label: label, Amount: v, Percent: "n/a"}
		if shares {
			ratio := v.Ratio(total)
			s.Percent = fmt.Sprintf("%.1f%%", ratio*100)
			s.Bar = bar(ratio)
		}
		p.Slices = append(p.Slices, s)
	}
	return p
}

type row struct {
	Label string
	Count int
	Bar   string
}

type histogram struct {
	Title  string
	XLabel string
	YLabel string
	Rows   []row
}

func newHistogram(c budget.Chart[int]) histogram {
	h := histogram{Title: c.Title, XLabel: c.XLabel, YLabel: c.YLabel}
	highest := 0
	for _, v := range c.Values {
		highest = max(highest, v)
	}
	for i, label := range c.Labels {
		v := c.Values[i]
		var ratio float64
		if highest > 0 {
			ratio = float64(v) / float64(highest)
		}
		h.Rows = append(h.Rows, row{Label: label, Count: v, Bar: bar(ratio)})
	}
	return h
}

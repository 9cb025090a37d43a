package charts

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/pkg/apiclient"
)

const CountyLoadingText = "Loading county data..."

const (
	barWidth   = 500
	barHeight  = 300
	barPadding = 40
)

// CountyBars renders one bar per county scaled to the largest value.
func CountyBars(stats []apiclient.CountyStat) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := base.NewWriter(w)
		bars := CountySeries(stats)
		if len(bars) == 0 {
			return hw.Raw(`<p class="chart-message">`, CountyLoadingText, "</p>").Err()
		}
		var maxValue int64 = 1
		for _, b := range bars {
			if b.Value > maxValue {
				maxValue = b.Value
			}
		}

		plotW := float64(barWidth - 2*barPadding)
		plotH := float64(barHeight - 2*barPadding)
		slot := plotW / float64(len(bars))
		bw := slot * 0.6

		hw.Raw(`<figure class="chart chart-county"><svg role="img" viewBox="0 0 500 300" width="100%" height="300">`)
		hw.Raw(`<line x1="40" y1="260" x2="460" y2="260" stroke="#ccc"></line>`)
		for i, b := range bars {
			h := plotH * float64(b.Value) / float64(maxValue)
			x := float64(barPadding) + slot*float64(i) + (slot-bw)/2
			y := float64(barHeight-barPadding) - h
			hw.Raw(`<rect class="bar"`).
				Attr("x", num(x)).Attr("y", num(y)).Attr("width", num(bw)).Attr("height", num(h)).
				Attr("fill", BarColor).Raw(">")
			hw.Raw("<title>").Text(b.Name + ": " + strconv.FormatInt(b.Value, 10)).Raw("</title></rect>")
			hw.Raw(`<text class="bar-label" text-anchor="middle" font-size="12"`).
				Attr("x", num(x+bw/2)).Attr("y", strconv.Itoa(barHeight-barPadding+16)).Raw(">").
				Text(b.Name).Raw("</text>")
		}
		hw.Raw(`</svg><ul class="chart-legend"><li><span class="swatch"`).Attr("style", "background:"+BarColor).
			Raw("></span>", BarSeriesName, "</li></ul></figure>")
		return hw.Err()
	})
}

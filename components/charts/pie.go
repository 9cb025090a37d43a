package charts

import (
	"context"
	"io"
	"math"
	"strconv"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/pkg/apiclient"
)

const (
	GenderLoadingText = "Loading gender data..."
	GenderEmptyText   = "No gender data available to display."
)

const (
	pieSize   = 300
	pieRadius = 110
)

// GenderPie renders the gender distribution. Nil stats mean the data has not
// been loaded; stats with only zero counts render the empty message.
func GenderPie(stats *apiclient.GenderStats) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := base.NewWriter(w)
		if stats == nil {
			return hw.Raw(`<p class="chart-message">`, GenderLoadingText, "</p>").Err()
		}
		slices := GenderSeries(stats)
		if len(slices) == 0 {
			return hw.Raw(`<p class="chart-message">`, GenderEmptyText, "</p>").Err()
		}
		var total int64
		for _, s := range slices {
			total += s.Value
		}

		c := float64(pieSize) / 2
		hw.Raw(`<figure class="chart chart-gender"><svg role="img" viewBox="0 0 300 300" width="100%" height="300">`)
		if len(slices) == 1 {
			hw.Raw(`<circle class="slice" cx="150" cy="150" r="110"`).Attr("fill", slices[0].Color).Raw(">")
			hw.Raw("<title>").Text(sliceTitle(slices[0], total)).Raw("</title></circle>")
		} else {
			angle := -math.Pi / 2
			for _, s := range slices {
				sweep := 2 * math.Pi * float64(s.Value) / float64(total)
				hw.Raw(`<path class="slice"`).Attr("d", arcPath(c, c, pieRadius, angle, angle+sweep)).Attr("fill", s.Color).Raw(">")
				hw.Raw("<title>").Text(sliceTitle(s, total)).Raw("</title></path>")
				angle += sweep
			}
		}
		hw.Raw(`</svg><ul class="chart-legend">`)
		for _, s := range slices {
			hw.Raw(`<li><span class="swatch"`).Attr("style", "background:"+s.Color).Raw("></span>").
				Text(s.Name).Raw(" ").Text(percent(s.Value, total)).Raw("</li>")
		}
		hw.Raw("</ul></figure>")
		return hw.Err()
	})
}

func sliceTitle(s Slice, total int64) string {
	return s.Name + ": " + strconv.FormatInt(s.Value, 10) + " (" + percent(s.Value, total) + ")"
}

func percent(v, total int64) string {
	return strconv.FormatFloat(float64(v)*100/float64(total), 'f', 0, 64) + "%"
}

func arcPath(cx, cy, r, from, to float64) string {
	large := "0"
	if to-from > math.Pi {
		large = "1"
	}
	return "M" + num(cx) + "," + num(cy) +
		" L" + num(cx+r*math.Cos(from)) + "," + num(cy+r*math.Sin(from)) +
		" A" + num(r) + "," + num(r) + " 0 " + large + " 1 " +
		num(cx+r*math.Cos(to)) + "," + num(cy+r*math.Sin(to)) + " Z"
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

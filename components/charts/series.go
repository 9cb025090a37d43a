// Package charts maps dashboard statistics to chart series and renders
// them as inline SVG.
package charts

import "github.com/county-directory/console/pkg/apiclient"

// Palette used for gender slices, in order.
var Palette = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042"}

const BarColor = "#82ca9d"

// BarSeriesName labels the county bars.
const BarSeriesName = "Contacts"

type Slice struct {
	Name  string
	Value int64
	Color string
}

type Bar struct {
	Name  string
	Value int64
}

// GenderSeries returns the positive gender counts in Male, Female,
// Not Specified order, coloured by position among the kept slices.
// Nil stats yield nil.
func GenderSeries(stats *apiclient.GenderStats) []Slice {
	if stats == nil {
		return nil
	}
	all := []Slice{
		{Name: "Male", Value: stats.MaleCount},
		{Name: "Female", Value: stats.FemaleCount},
		{Name: "Not Specified", Value: stats.NotSpecified},
	}
	out := make([]Slice, 0, len(all))
	for _, s := range all {
		if s.Value <= 0 {
			continue
		}
		s.Color = Palette[len(out)%len(Palette)]
		out = append(out, s)
	}
	return out
}

// CountySeries keeps counties with a positive value, in input order.
func CountySeries(stats []apiclient.CountyStat) []Bar {
	out := make([]Bar, 0, len(stats))
	for _, s := range stats {
		if s.Value <= 0 {
			continue
		}
		out = append(out, Bar{Name: s.Name, Value: s.Value})
	}
	return out
}

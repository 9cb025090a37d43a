package charts_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/county-directory/console/components/charts"
	"github.com/county-directory/console/pkg/apiclient"
)

func renderDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(html))
	require.NoError(t, err)
	return doc
}

func TestGenderSeries(t *testing.T) {
	assert.Nil(t, charts.GenderSeries(nil))

	only := charts.GenderSeries(&apiclient.GenderStats{FemaleCount: 5})
	require.Len(t, only, 1)
	assert.Equal(t, "Female", only[0].Name)
	assert.Equal(t, int64(5), only[0].Value)
	assert.Equal(t, "#0088FE", only[0].Color)

	negative := charts.GenderSeries(&apiclient.GenderStats{MaleCount: -2, NotSpecified: 4})
	require.Len(t, negative, 1)
	assert.Equal(t, "Not Specified", negative[0].Name)
	assert.Equal(t, "#0088FE", negative[0].Color)

	all := charts.GenderSeries(&apiclient.GenderStats{MaleCount: 3, FemaleCount: 2, NotSpecified: 1})
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Male", "Female", "Not Specified"}, []string{all[0].Name, all[1].Name, all[2].Name})
	assert.Equal(t, []string{"#0088FE", "#00C49F", "#FFBB28"}, []string{all[0].Color, all[1].Color, all[2].Color})

	assert.Empty(t, charts.GenderSeries(&apiclient.GenderStats{}))
}

func TestCountySeries(t *testing.T) {
	bars := charts.CountySeries([]apiclient.CountyStat{
		{Name: "Nairobi", Value: 10},
		{Name: "Mombasa", Value: 0},
		{Name: "Kisumu", Value: 4},
		{Name: "Nakuru", Value: -1},
	})
	assert.Equal(t, []charts.Bar{{Name: "Nairobi", Value: 10}, {Name: "Kisumu", Value: 4}}, bars)
	assert.Empty(t, charts.CountySeries(nil))
	assert.Empty(t, charts.CountySeries([]apiclient.CountyStat{{Name: "Kisumu", Value: 0}}))
}

func TestGenderPie(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, charts.GenderPie(nil).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), charts.GenderLoadingText)

	buf.Reset()
	require.NoError(t, charts.GenderPie(&apiclient.GenderStats{}).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), charts.GenderEmptyText)
	assert.NotContains(t, buf.String(), "<svg")

	buf.Reset()
	require.NoError(t, charts.GenderPie(&apiclient.GenderStats{FemaleCount: 5}).Render(context.Background(), &buf))
	doc := renderDoc(t, buf.String())
	assert.Equal(t, 1, doc.Find(".chart-legend li").Length())
	assert.Contains(t, doc.Find(".chart-legend").Text(), "Female")
	assert.NotContains(t, doc.Find(".chart-legend").Text(), "Male ")

	buf.Reset()
	require.NoError(t, charts.GenderPie(&apiclient.GenderStats{MaleCount: 1, FemaleCount: 1}).Render(context.Background(), &buf))
	doc = renderDoc(t, buf.String())
	assert.Equal(t, 2, doc.Find("path.slice").Length())
	assert.Contains(t, doc.Find(".chart-legend").Text(), "50%")
}

func TestCountyBars(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, charts.CountyBars(nil).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), charts.CountyLoadingText)

	buf.Reset()
	stats := []apiclient.CountyStat{{Name: "Nairobi", Value: 10}, {Name: "Kisumu", Value: 5}}
	require.NoError(t, charts.CountyBars(stats).Render(context.Background(), &buf))
	doc := renderDoc(t, buf.String())
	bars := doc.Find("rect.bar")
	require.Equal(t, 2, bars.Length())
	h0, _ := bars.Eq(0).Attr("height")
	h1, _ := bars.Eq(1).Attr("height")
	assert.Equal(t, "220.00", h0)
	assert.Equal(t, "110.00", h1)
	assert.Equal(t, "Nairobi", doc.Find("text.bar-label").First().Text())
	fill, _ := bars.First().Attr("fill")
	assert.Equal(t, charts.BarColor, fill)
}

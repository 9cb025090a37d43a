package spotlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	t.Parallel()
	words := []string{"Nairobi", "Nakuru", "Mombasa", "Narok"}

	assert.Equal(t, []int{0, 1, 2, 3}, Find("  ", words))
	assert.Equal(t, []int{2}, Find("mom", words))
	assert.Equal(t, []int{0}, Find("NAIR", words))
	assert.Empty(t, Find("xyz", words))
}

func TestFind_BestMatchFirst(t *testing.T) {
	t.Parallel()
	// "nak" is a prefix of Nakuru and only a scattered match in Narok County.
	got := Find("nak", []string{"Narok County", "Nakuru"})
	assert.Equal(t, []int{1, 0}, got)
}

func TestFilter(t *testing.T) {
	t.Parallel()
	type county struct{ name string }
	items := []county{{"Kisumu"}, {"Kiambu"}, {"Kilifi"}}
	got := Filter("kia", items, func(c county) string { return c.name })
	assert.Equal(t, []county{{"Kiambu"}}, got)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLookup(t *testing.T) {
	c := Seed()

	dosa, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Masala Dosa", dosa.Name)
	assert.Equal(t, int64(60), dosa.Price)
	assert.Equal(t, 10, dosa.PreparationTime)
	assert.True(t, dosa.Available)

	_, ok = c.Get("999")
	assert.False(t, ok)
}

func TestListIsACopy(t *testing.T) {
	c := Seed()
	items := c.List()
	require.NotEmpty(t, items)
	items[0].Name = "mutated"

	again := c.List()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestCategories(t *testing.T) {
	c := Seed()
	assert.ElementsMatch(t,
		[]string{"Breakfast", "Main Course", "Snacks", "Beverages", "Desserts"},
		c.Categories())
}

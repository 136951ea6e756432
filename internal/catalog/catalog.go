// Package catalog models the menu at its read interface. Catalog storage
// lives outside this service; orders only need item lookups at creation
// time, served here from the seeded canteen menu.
package catalog

import (
	"sort"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

type Catalog struct {
	byID  map[string]domain.MenuItem
	items []domain.MenuItem
}

func New(items []domain.MenuItem) *Catalog {
	c := &Catalog{byID: make(map[string]domain.MenuItem, len(items))}
	c.items = append(c.items, items...)
	sort.Slice(c.items, func(i, j int) bool { return c.items[i].ID < c.items[j].ID })
	for _, item := range items {
		c.byID[item.ID] = item
	}
	return c
}

// Seed returns the canteen menu.
func Seed() *Catalog {
	return New(menuItems)
}

func (c *Catalog) Get(id string) (domain.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) List() []domain.MenuItem {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	sort.Strings(out)
	return out
}

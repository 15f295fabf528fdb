package domain

import "fmt"

// Catalog is the read-only menu: drinks by category plus the addition lists.
// Loaded once at startup and validated before the bot accepts orders.
type Catalog struct {
	categories map[Category][]MenuItem
	milks      []Addition
	syrups     []Addition

	itemsByID map[string]MenuItem
	milkByID  map[string]Addition
	syrupByID map[string]Addition
}

// NewCatalog indexes the given menu. Items keep their slice order for
// keyboard rendering.
func NewCatalog(categories map[Category][]MenuItem, milks, syrups []Addition) *Catalog {
	c := &Catalog{
		categories: categories,
		milks:      milks,
		syrups:     syrups,
		itemsByID:  make(map[string]MenuItem),
		milkByID:   make(map[string]Addition),
		syrupByID:  make(map[string]Addition),
	}
	for _, items := range categories {
		for _, item := range items {
			c.itemsByID[item.ID] = item
		}
	}
	for _, m := range milks {
		c.milkByID[m.ID] = m
	}
	for _, s := range syrups {
		c.syrupByID[s.ID] = s
	}
	return c
}

// FindItem looks up a drink by id. A miss means a stale or malformed
// callback and the action must be rejected.
func (c *Catalog) FindItem(id string) (MenuItem, bool) {
	item, ok := c.itemsByID[id]
	return item, ok
}

// FindAddition looks up a milk or syrup by id.
func (c *Catalog) FindAddition(kind AdditionKind, id string) (Addition, bool) {
	switch kind {
	case AdditionMilk:
		a, ok := c.milkByID[id]
		return a, ok
	case AdditionSyrup:
		a, ok := c.syrupByID[id]
		return a, ok
	}
	return Addition{}, false
}

// Items returns the drinks of one category in menu order.
func (c *Catalog) Items(cat Category) []MenuItem {
	return c.categories[cat]
}

// Milks returns the alternative milk options in menu order.
func (c *Catalog) Milks() []Addition { return c.milks }

// Syrups returns the syrup options in menu order.
func (c *Catalog) Syrups() []Addition { return c.syrups }

// Validate checks catalog integrity: every item has either a positive fixed
// price or a non-empty volume table, and additions have positive surcharges.
// A violation is a programming error that must abort startup.
func (c *Catalog) Validate() error {
	for cat, items := range c.categories {
		for _, item := range items {
			if item.ID == "" || item.Name == "" {
				return fmt.Errorf("category %s: item with empty id or name", cat)
			}
			amount, serving, fixed := item.Pricing.Fixed()
			if fixed {
				if amount <= 0 {
					return fmt.Errorf("item %s: fixed price must be positive", item.ID)
				}
				if serving == "" {
					return fmt.Errorf("item %s: fixed-price item needs a serving volume", item.ID)
				}
				continue
			}
			vols := item.Pricing.Volumes()
			if len(vols) == 0 {
				return fmt.Errorf("item %s: no pricing defined", item.ID)
			}
			for _, v := range vols {
				if amount, ok := item.Pricing.PriceFor(v); !ok || amount <= 0 {
					return fmt.Errorf("item %s: volume %s has no positive price", item.ID, v)
				}
			}
		}
	}
	for _, a := range append(append([]Addition{}, c.milks...), c.syrups...) {
		if a.ID == "" || a.Name == "" || a.Surcharge <= 0 {
			return fmt.Errorf("addition %q: incomplete entry", a.ID)
		}
	}
	return nil
}

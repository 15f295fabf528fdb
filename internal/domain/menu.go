package domain

import "sort"

// Category groups menu items for navigation and back-routing.
type Category string

const (
	CategoryBlackCoffee Category = "black_coffee"
	CategoryMilkCoffee  Category = "milk_coffee"
	CategoryTea         Category = "tea"
	CategoryAlternative Category = "alternative"
	CategorySignature   Category = "signature"
	CategoryNonCoffee   Category = "not_coffee"
)

// Volume is a serving size label as shown on buttons, e.g. "0.3".
type Volume string

// Pricing is a tagged variant: either a fixed price with a preset serving
// volume, or a price table keyed by volume. Exactly one side is set.
type Pricing struct {
	fixed    bool
	amount   int64
	serving  Volume
	byVolume map[Volume]int64
}

// FixedPrice builds pricing for items served in exactly one volume.
func FixedPrice(amount int64, serving Volume) Pricing {
	return Pricing{fixed: true, amount: amount, serving: serving}
}

// VolumePriced builds pricing for items the customer picks a volume for.
func VolumePriced(prices map[Volume]int64) Pricing {
	return Pricing{byVolume: prices}
}

// Fixed reports the fixed price and its preset serving volume.
func (p Pricing) Fixed() (int64, Volume, bool) {
	return p.amount, p.serving, p.fixed
}

// PriceFor looks up the price for a volume in the price table.
func (p Pricing) PriceFor(v Volume) (int64, bool) {
	amount, ok := p.byVolume[v]
	return amount, ok
}

// Volumes returns the price-table volumes in stable ascending order.
func (p Pricing) Volumes() []Volume {
	vols := make([]Volume, 0, len(p.byVolume))
	for v := range p.byVolume {
		vols = append(vols, v)
	}
	sort.Slice(vols, func(i, j int) bool { return vols[i] < vols[j] })
	return vols
}

// MenuItem is one drink on the menu. Immutable after catalog load.
type MenuItem struct {
	ID       string
	Name     string
	Category Category
	Pricing  Pricing
}

// AdditionKind distinguishes the two addition catalogs.
type AdditionKind string

const (
	AdditionMilk  AdditionKind = "milk"
	AdditionSyrup AdditionKind = "syrup"
)

// Addition is an alternative milk or syrup with a flat surcharge.
type Addition struct {
	ID        string
	Name      string
	Surcharge int64
}

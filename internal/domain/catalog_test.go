package domain

import (
	"reflect"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog must validate: %v", err)
	}
}

func TestValidateRejectsItemWithoutPricing(t *testing.T) {
	cat := NewCatalog(map[Category][]MenuItem{
		CategoryBlackCoffee: {{ID: "broken", Name: "Сломанный", Category: CategoryBlackCoffee, Pricing: VolumePriced(nil)}},
	}, nil, nil)
	if err := cat.Validate(); err == nil {
		t.Fatalf("expected validation error for empty price table")
	}
}

func TestValidateRejectsZeroSurcharge(t *testing.T) {
	cat := NewCatalog(map[Category][]MenuItem{}, []Addition{{ID: "oat", Name: "Овсяное"}}, nil)
	if err := cat.Validate(); err == nil {
		t.Fatalf("expected validation error for zero surcharge")
	}
}

func TestFindItemAndAddition(t *testing.T) {
	cat := DefaultCatalog()

	item, ok := cat.FindItem("cappuccino")
	if !ok || item.Name != "Капучино" || item.Category != CategoryMilkCoffee {
		t.Fatalf("unexpected item: %+v ok=%v", item, ok)
	}
	if _, ok := cat.FindItem("ghost"); ok {
		t.Fatalf("unknown id must miss")
	}

	milk, ok := cat.FindAddition(AdditionMilk, "oat")
	if !ok || milk.Surcharge != AltMilkSurcharge {
		t.Fatalf("unexpected milk: %+v ok=%v", milk, ok)
	}
	if _, ok := cat.FindAddition(AdditionSyrup, "oat"); ok {
		// "oat" is a milk id; the syrup catalog must not leak it.
		t.Fatalf("addition kinds must be looked up separately")
	}
}

func TestPricingVolumesSorted(t *testing.T) {
	p := VolumePriced(map[Volume]int64{"0.4": 260, "0.2": 180, "0.3": 200})
	want := []Volume{"0.2", "0.3", "0.4"}
	if got := p.Volumes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDraftTotalPrice(t *testing.T) {
	d := NewOrderDraft()
	if !d.IsEmpty() || d.TotalPrice() != 0 {
		t.Fatalf("fresh draft must be empty with zero total")
	}

	d.ItemID = "cappuccino"
	d.Price = 300
	d.Lines = []LineItem{{ItemID: "espresso", Price: 150}, {ItemID: "tea_black", Price: 180}}
	if d.IsEmpty() {
		t.Fatalf("draft with selections is not empty")
	}
	if got := d.TotalPrice(); got != 630 {
		t.Fatalf("expected total 630, got %d", got)
	}

	d.ResetDrink()
	if d.ItemID != "" || d.Price != 0 || d.Additions != nil {
		t.Fatalf("reset must clear in-progress fields: %+v", d)
	}
	if got := d.TotalPrice(); got != 330 {
		t.Fatalf("line items must survive reset, got total %d", got)
	}
}

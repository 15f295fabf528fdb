package render

import (
	"reflect"
	"strings"
	"testing"

	"coffee-order-bot/internal/domain"
)

func draftAt(step domain.Step, mutate func(*domain.OrderDraft)) *domain.OrderDraft {
	d := domain.NewOrderDraft()
	d.Step = step
	if mutate != nil {
		mutate(d)
	}
	return d
}

func buttons(v View) []string {
	var data []string
	for _, row := range v.Keyboard {
		for _, b := range row {
			data = append(data, b.Data)
		}
	}
	return data
}

func TestRenderIsIdempotent(t *testing.T) {
	cat := domain.DefaultCatalog()
	d := draftAt(domain.StepVolume, func(d *domain.OrderDraft) {
		d.ItemID = "americano"
		d.CategoryName = "Черный кофе"
	})

	first := Render(d, cat, Options{OnlinePayment: true})
	second := Render(d, cat, Options{OnlinePayment: true})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("render is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestVolumeButtonsMatchPriceTable(t *testing.T) {
	cat := domain.DefaultCatalog()
	d := draftAt(domain.StepVolume, func(d *domain.OrderDraft) { d.ItemID = "americano" })

	v := Render(d, cat, Options{})
	want := []string{"vol_0.2", "vol_0.3", "vol_0.4", "back"}
	if got := buttons(v); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected volume buttons %v, got %v", want, got)
	}
}

func TestPaymentKeyboardHonorsOnlineToggle(t *testing.T) {
	cat := domain.DefaultCatalog()
	d := draftAt(domain.StepPayment, func(d *domain.OrderDraft) {
		d.ItemID = "espresso"
		d.Volume = "0.042"
		d.Price = 150
	})

	withOnline := buttons(Render(d, cat, Options{OnlinePayment: true}))
	if !contains(withOnline, CallbackPayOnline) {
		t.Fatalf("online button missing: %v", withOnline)
	}

	withoutOnline := buttons(Render(d, cat, Options{OnlinePayment: false}))
	if contains(withoutOnline, CallbackPayOnline) {
		t.Fatalf("online button must be hidden when disabled: %v", withoutOnline)
	}
	if !contains(withoutOnline, CallbackPayCash) || !contains(withoutOnline, CallbackAddAnother) {
		t.Fatalf("cash and add-another must always be offered: %v", withoutOnline)
	}
}

func TestSummaryListsLinesAndInProgress(t *testing.T) {
	cat := domain.DefaultCatalog()
	d := draftAt(domain.StepSyrup, func(d *domain.OrderDraft) {
		d.Lines = []domain.LineItem{{
			ItemID:    "espresso",
			Volume:    "0.042",
			Price:     150,
			Additions: nil,
		}}
		d.ItemID = "cappuccino"
		d.Volume = "0.3"
		d.MilkID = "oat"
		d.Price = 300
		d.Additions = []string{"Молоко Овсяное"}
		d.Comments = []string{"без сахара"}
	})

	got := Summary(d, cat)
	for _, want := range []string{"1. ☕️ Эспрессо", "Капучино (0.3л)", "Молоко: Овсяное", "без сахара", "Итого: 450₽"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryEmptyForFreshDraft(t *testing.T) {
	if got := Summary(domain.NewOrderDraft(), domain.DefaultCatalog()); got != "" {
		t.Fatalf("fresh draft must render an empty summary, got %q", got)
	}
}

func TestAwaitPaymentShowsLink(t *testing.T) {
	cat := domain.DefaultCatalog()
	d := draftAt(domain.StepAwaitPayment, func(d *domain.OrderDraft) {
		d.ItemID = ""
		d.Lines = []domain.LineItem{{ItemID: "espresso", Volume: "0.042", Price: 150}}
		d.PaymentURL = "https://pay.example/p1"
	})

	v := Render(d, cat, Options{OnlinePayment: true})
	if !strings.Contains(v.Text, "https://pay.example/p1") {
		t.Fatalf("payment link missing:\n%s", v.Text)
	}
	if got := buttons(v); !reflect.DeepEqual(got, []string{CallbackPayCheck, CallbackBack}) {
		t.Fatalf("unexpected await-payment keyboard: %v", got)
	}
}

func TestTerminalStepHasNoKeyboard(t *testing.T) {
	cat := domain.DefaultCatalog()
	d := draftAt(domain.StepDone, func(d *domain.OrderDraft) {
		d.Lines = []domain.LineItem{{ItemID: "espresso", Volume: "0.042", Price: 150}}
		d.OrderNumber = 12
	})

	v := Render(d, cat, Options{})
	if len(v.Keyboard) != 0 {
		t.Fatalf("terminal step must not offer buttons: %+v", v.Keyboard)
	}
	if !strings.Contains(v.Text, "#12") {
		t.Fatalf("order number missing:\n%s", v.Text)
	}
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

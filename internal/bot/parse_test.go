package bot

import (
	"testing"

	"coffee-order-bot/internal/engine"
)

func TestParseAction(t *testing.T) {
	cases := []struct {
		data   string
		want   engine.Action
		wantOK bool
	}{
		{"back", engine.Action{Kind: engine.ActionBack}, true},
		{"add_more", engine.Action{Kind: engine.ActionAddAnother}, true},
		{"pay_cash", engine.Action{Kind: engine.ActionPayCash}, true},
		{"pay_online", engine.Action{Kind: engine.ActionPayOnline}, true},
		{"pay_check", engine.Action{Kind: engine.ActionConfirmPayment}, true},
		{"cat_milk", engine.Action{Kind: engine.ActionCategory, ID: "milk"}, true},
		{"item_americano", engine.Action{Kind: engine.ActionItem, ID: "americano"}, true},
		{"vol_0.3", engine.Action{Kind: engine.ActionVolume, Volume: "0.3"}, true},
		{"milk_oat", engine.Action{Kind: engine.ActionMilk, ID: "oat"}, true},
		{"milk_none", engine.Action{Kind: engine.ActionMilk, ID: "none"}, true},
		{"syrup_vanilla", engine.Action{Kind: engine.ActionSyrup, ID: "vanilla"}, true},
		{"", engine.Action{}, false},
		{"high_load_42", engine.Action{}, false},
		{"garbage", engine.Action{}, false},
	}

	for _, tc := range cases {
		got, ok := parseAction(tc.data)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("parseAction(%q) = %+v, %v; want %+v, %v", tc.data, got, ok, tc.want, tc.wantOK)
		}
	}
}

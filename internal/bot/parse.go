package bot

import (
	"strings"

	"coffee-order-bot/internal/domain"
	"coffee-order-bot/internal/engine"
	"coffee-order-bot/internal/render"
)

// parseAction maps callback data back to an engine action. Unknown data is
// treated as a stale button and dropped.
func parseAction(data string) (engine.Action, bool) {
	switch data {
	case render.CallbackBack:
		return engine.Action{Kind: engine.ActionBack}, true
	case render.CallbackAddAnother:
		return engine.Action{Kind: engine.ActionAddAnother}, true
	case render.CallbackPayCash:
		return engine.Action{Kind: engine.ActionPayCash}, true
	case render.CallbackPayOnline:
		return engine.Action{Kind: engine.ActionPayOnline}, true
	case render.CallbackPayCheck:
		return engine.Action{Kind: engine.ActionConfirmPayment}, true
	}

	switch {
	case strings.HasPrefix(data, render.PrefixCategory):
		return engine.Action{Kind: engine.ActionCategory, ID: strings.TrimPrefix(data, render.PrefixCategory)}, true
	case strings.HasPrefix(data, render.PrefixItem):
		return engine.Action{Kind: engine.ActionItem, ID: strings.TrimPrefix(data, render.PrefixItem)}, true
	case strings.HasPrefix(data, render.PrefixVolume):
		return engine.Action{Kind: engine.ActionVolume, Volume: domain.Volume(strings.TrimPrefix(data, render.PrefixVolume))}, true
	case strings.HasPrefix(data, render.PrefixMilk):
		return engine.Action{Kind: engine.ActionMilk, ID: strings.TrimPrefix(data, render.PrefixMilk)}, true
	case strings.HasPrefix(data, render.PrefixSyrup):
		return engine.Action{Kind: engine.ActionSyrup, ID: strings.TrimPrefix(data, render.PrefixSyrup)}, true
	}
	return engine.Action{}, false
}

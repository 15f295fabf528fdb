package engine

import "coffee-order-bot/internal/domain"

// ActionKind enumerates the user actions the state machine accepts.
type ActionKind int

const (
	ActionCategory ActionKind = iota
	ActionItem
	ActionVolume
	ActionMilk
	ActionSyrup
	ActionBack
	ActionAddAnother
	ActionPayCash
	ActionPayOnline
	ActionConfirmPayment
	ActionComment
)

// Action is one inbound user action, already parsed off the wire.
type Action struct {
	Kind   ActionKind
	ID     string // category key, item id, or addition id ("none" declines)
	Volume domain.Volume
	Text   string // comment text
}

// DeclineID marks a declined milk or syrup offer.
const DeclineID = "none"

// allowedSteps is the legality table: an action arriving while the draft is
// at any other step never mutates the draft.
var allowedSteps = map[ActionKind][]domain.Step{
	ActionCategory:       {domain.StepCategory},
	ActionItem:           {domain.StepBlackCoffee, domain.StepMilkCoffee, domain.StepTea},
	ActionVolume:         {domain.StepVolume},
	ActionMilk:           {domain.StepMilk},
	ActionSyrup:          {domain.StepSyrup},
	ActionBack:           {domain.StepBlackCoffee, domain.StepMilkCoffee, domain.StepVolume, domain.StepTea, domain.StepMilk, domain.StepSyrup, domain.StepPayment, domain.StepAwaitPayment},
	ActionAddAnother:     {domain.StepPayment},
	ActionPayCash:        {domain.StepPayment},
	ActionPayOnline:      {domain.StepPayment},
	ActionConfirmPayment: {domain.StepAwaitPayment},
	ActionComment:        {domain.StepCategory, domain.StepBlackCoffee, domain.StepMilkCoffee, domain.StepVolume, domain.StepTea, domain.StepMilk, domain.StepSyrup, domain.StepPayment},
}

func legal(kind ActionKind, step domain.Step) bool {
	for _, s := range allowedSteps[kind] {
		if s == step {
			return true
		}
	}
	return false
}

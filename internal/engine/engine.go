// Package engine implements the order state machine: it is the only code
// that mutates an order draft. Every forward transition has an exact
// inverse used by back-navigation, so routing and price deltas are always
// re-derived from the catalog rather than popped blindly.
package engine

import (
	"context"
	"fmt"
	"log"
	"strings"

	"coffee-order-bot/internal/domain"
	"coffee-order-bot/internal/payment"
	"coffee-order-bot/internal/repository/settings"
)

// PaymentGateway creates online payments and reports their status.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, amount int64, description string) (*payment.Payment, error)
	PaymentStatus(ctx context.Context, id string) (payment.Status, error)
}

// Coordinator assigns order numbers and delivers finished orders to staff.
type Coordinator interface {
	NextOrderNumber(ctx context.Context) (int, error)
	Finalize(ctx context.Context, d *domain.OrderDraft, r domain.Requester) error
}

// SettingsReader exposes the shop toggles the engine consults.
type SettingsReader interface {
	GetSettings(ctx context.Context) (settings.Settings, error)
}

// Result tells the transport what to do after a transition.
type Result struct {
	// Notice is a transient message for the user; set when the draft was
	// left unchanged on purpose (pending payment, gateway failure).
	Notice string
	// Changed means the draft mutated and the message must be re-rendered.
	Changed bool
	// Finalized means the order is placed and the session can be dropped.
	Finalized bool
}

// Engine applies user actions to order drafts.
type Engine struct {
	catalog  *domain.Catalog
	payments PaymentGateway
	orders   Coordinator
	settings SettingsReader
	logger   *log.Logger
}

// New wires the engine with its collaborators.
func New(catalog *domain.Catalog, payments PaymentGateway, orders Coordinator, sr SettingsReader, logger *log.Logger) *Engine {
	return &Engine{catalog: catalog, payments: payments, orders: orders, settings: sr, logger: logger}
}

const (
	noticePaymentCreateFailed = "Ошибка создания платежа. Попробуйте позже или оплатите на кассе."
	noticePaymentNotCreated   = "Платеж не был создан."
	noticePaymentPending      = "Оплата ещё в процессе. Завершите оплату и нажмите «Я оплатил» снова."
	noticePaymentRejected     = "Оплата не найдена или отклонена. Попробуйте снова или оплатите на кассе."
	noticePaymentCheckFailed  = "Не удалось проверить оплату. Попробуйте ещё раз."
	noticeOnlineUnavailable   = "Онлайн-оплата сейчас недоступна."
	noticeOrderFailed         = "Не получилось оформить заказ. Попробуйте ещё раз."
)

var categorySteps = map[string]struct {
	step  domain.Step
	label string
}{
	"black": {domain.StepBlackCoffee, "Черный кофе"},
	"milk":  {domain.StepMilkCoffee, "Молочный кофе"},
	"tea":   {domain.StepTea, "Чай"},
}

// Apply validates the action against the draft's current step and performs
// the transition. Illegal actions return domain.ErrIllegalAction with the
// draft untouched; stale catalog references return domain.ErrNotFound.
func (e *Engine) Apply(ctx context.Context, d *domain.OrderDraft, r domain.Requester, a Action) (Result, error) {
	if !legal(a.Kind, d.Step) {
		return Result{}, domain.ErrIllegalAction
	}

	switch a.Kind {
	case ActionCategory:
		return e.pickCategory(d, a.ID)
	case ActionItem:
		return e.pickItem(d, a.ID)
	case ActionVolume:
		return e.pickVolume(d, a.Volume)
	case ActionMilk:
		return e.pickAddition(d, domain.AdditionMilk, a.ID)
	case ActionSyrup:
		return e.pickAddition(d, domain.AdditionSyrup, a.ID)
	case ActionBack:
		return e.back(d)
	case ActionAddAnother:
		appendLine(d)
		d.Step = domain.StepCategory
		return Result{Changed: true}, nil
	case ActionPayCash:
		return e.payCash(ctx, d, r)
	case ActionPayOnline:
		return e.payOnline(ctx, d, r)
	case ActionConfirmPayment:
		return e.confirmPayment(ctx, d, r)
	case ActionComment:
		text := strings.TrimSpace(a.Text)
		if text == "" {
			return Result{}, domain.ErrIllegalAction
		}
		d.Comments = append(d.Comments, text)
		return Result{Changed: true}, nil
	}
	return Result{}, domain.ErrIllegalAction
}

func (e *Engine) pickCategory(d *domain.OrderDraft, key string) (Result, error) {
	dst, ok := categorySteps[key]
	if !ok {
		return Result{}, domain.ErrNotFound
	}
	d.Step = dst.step
	d.CategoryName = dst.label
	return Result{Changed: true}, nil
}

func (e *Engine) pickItem(d *domain.OrderDraft, id string) (Result, error) {
	item, ok := e.catalog.FindItem(id)
	if !ok {
		return Result{}, domain.ErrNotFound
	}
	if listStep(item.Category) != d.Step {
		// A stale button from another category's list.
		return Result{}, domain.ErrIllegalAction
	}

	d.ItemID = item.ID
	if amount, serving, fixed := item.Pricing.Fixed(); fixed {
		// Fixed-volume drinks skip volume selection entirely.
		d.Volume = serving
		d.Price = amount
		d.Step = domain.StepPayment
	} else {
		d.Step = domain.StepVolume
	}
	return Result{Changed: true}, nil
}

func (e *Engine) pickVolume(d *domain.OrderDraft, vol domain.Volume) (Result, error) {
	item, ok := e.catalog.FindItem(d.ItemID)
	if !ok {
		return Result{}, domain.ErrNotFound
	}
	price, ok := item.Pricing.PriceFor(vol)
	if !ok {
		return Result{}, domain.ErrNotFound
	}

	d.Volume = vol
	d.Price = price
	if item.Category == domain.CategoryMilkCoffee {
		d.Step = domain.StepMilk
	} else {
		d.Step = domain.StepPayment
	}
	return Result{Changed: true}, nil
}

func (e *Engine) pickAddition(d *domain.OrderDraft, kind domain.AdditionKind, id string) (Result, error) {
	next := domain.StepSyrup
	if kind == domain.AdditionSyrup {
		next = domain.StepPayment
	}

	if id == DeclineID {
		d.Step = next
		return Result{Changed: true}, nil
	}

	add, ok := e.catalog.FindAddition(kind, id)
	if !ok {
		return Result{}, domain.ErrNotFound
	}
	if kind == domain.AdditionMilk {
		d.MilkID = add.ID
		d.Additions = append(d.Additions, milkLabel(add.Name))
	} else {
		d.SyrupID = add.ID
		d.Additions = append(d.Additions, syrupLabel(add.Name))
	}
	d.Price += add.Surcharge
	d.Step = next
	return Result{Changed: true}, nil
}

func (e *Engine) payCash(ctx context.Context, d *domain.OrderDraft, r domain.Requester) (Result, error) {
	return e.complete(ctx, d, r, domain.PaymentCash)
}

func (e *Engine) payOnline(ctx context.Context, d *domain.OrderDraft, r domain.Requester) (Result, error) {
	s, err := e.settings.GetSettings(ctx)
	if err != nil {
		e.logger.Printf("read settings: %v", err)
		return Result{Notice: noticePaymentCreateFailed}, nil
	}
	if !s.OnlinePaymentActive {
		return Result{Notice: noticeOnlineUnavailable}, nil
	}

	// Charge the cumulative total: every finished drink plus the one in
	// progress, which is appended below on success.
	amount := d.TotalPrice()
	created, err := e.payments.CreatePayment(ctx, amount, fmt.Sprintf("Заказ от %s", r.Name()))
	if err != nil {
		e.logger.Printf("create payment for %s: %v", r.Name(), err)
		return Result{Notice: noticePaymentCreateFailed}, nil
	}

	appendLine(d)
	d.PaymentMethod = domain.PaymentOnline
	d.PaymentID = created.ID
	d.PaymentURL = created.ConfirmationURL
	d.Step = domain.StepAwaitPayment
	return Result{Changed: true}, nil
}

func (e *Engine) confirmPayment(ctx context.Context, d *domain.OrderDraft, r domain.Requester) (Result, error) {
	if d.PaymentID == "" {
		return Result{Notice: noticePaymentNotCreated}, nil
	}

	status, err := e.payments.PaymentStatus(ctx, d.PaymentID)
	if err != nil {
		e.logger.Printf("check payment %s: %v", d.PaymentID, err)
		return Result{Notice: noticePaymentCheckFailed}, nil
	}

	switch status {
	case payment.StatusSucceeded:
		return e.complete(ctx, d, r, d.PaymentMethod)
	case payment.StatusPending:
		return Result{Notice: noticePaymentPending}, nil
	default:
		return Result{Notice: noticePaymentRejected}, nil
	}
}

// complete assigns the daily order number and moves the draft to the
// terminal step. The OrderNumber guard keeps duplicate terminal triggers
// from assigning twice or notifying staff twice.
func (e *Engine) complete(ctx context.Context, d *domain.OrderDraft, r domain.Requester, method domain.PaymentMethod) (Result, error) {
	if d.OrderNumber != 0 {
		return Result{Changed: true, Finalized: true}, nil
	}

	number, err := e.orders.NextOrderNumber(ctx)
	if err != nil {
		e.logger.Printf("next order number: %v", err)
		return Result{Notice: noticeOrderFailed}, nil
	}

	appendLine(d)
	d.PaymentMethod = method
	d.OrderNumber = number
	d.Step = domain.StepDone

	// Delivery is best effort: the order is placed from the user's
	// perspective even if the staff channel is unreachable.
	if err := e.orders.Finalize(ctx, d, r); err != nil {
		e.logger.Printf("deliver order #%d: %v", number, err)
	}
	return Result{Changed: true, Finalized: true}, nil
}

func (e *Engine) back(d *domain.OrderDraft) (Result, error) {
	switch d.Step {
	case domain.StepBlackCoffee, domain.StepMilkCoffee, domain.StepTea:
		d.Step = domain.StepCategory
		d.CategoryName = ""

	case domain.StepVolume:
		item, ok := e.catalog.FindItem(d.ItemID)
		switch {
		case ok && item.Category == domain.CategoryBlackCoffee:
			d.Step = domain.StepBlackCoffee
		case ok && item.Category == domain.CategoryMilkCoffee:
			d.Step = domain.StepMilkCoffee
		default:
			d.Step = domain.StepCategory
			d.CategoryName = ""
		}
		d.ItemID = ""
		d.Price = 0

	case domain.StepMilk:
		d.Step = domain.StepVolume
		d.Volume = ""
		d.Price = 0

	case domain.StepSyrup:
		d.Step = domain.StepMilk
		if d.MilkID != "" {
			if add, ok := e.catalog.FindAddition(domain.AdditionMilk, d.MilkID); ok {
				d.Price -= add.Surcharge
			}
			d.Additions = removeLabeled(d.Additions, "Молоко")
			d.MilkID = ""
		}

	case domain.StepPayment:
		e.backFromPayment(d)

	case domain.StepAwaitPayment:
		d.Step = domain.StepPayment
		d.PaymentMethod = ""
		d.PaymentID = ""
		d.PaymentURL = ""

	default:
		return Result{}, domain.ErrIllegalAction
	}
	return Result{Changed: true}, nil
}

// backFromPayment re-derives the forward branch that reached the payment
// step from the still-present item and undoes exactly that branch.
func (e *Engine) backFromPayment(d *domain.OrderDraft) {
	d.PaymentID = ""
	d.PaymentURL = ""

	item, ok := e.catalog.FindItem(d.ItemID)
	if !ok {
		// No drink in progress: fall back to the category step.
		d.Step = domain.StepCategory
		d.CategoryName = ""
		return
	}

	_, _, fixed := item.Pricing.Fixed()
	switch {
	case item.Category == domain.CategoryTea:
		d.Step = domain.StepTea
		d.ItemID = ""
		d.Volume = ""
		d.Price = 0

	case item.Category == domain.CategoryMilkCoffee:
		d.Step = domain.StepSyrup
		if d.SyrupID != "" {
			if add, ok := e.catalog.FindAddition(domain.AdditionSyrup, d.SyrupID); ok {
				d.Price -= add.Surcharge
			}
			d.Additions = removeLabeled(d.Additions, "Сироп")
			d.SyrupID = ""
		}

	case fixed:
		// The forward jump skipped volume selection, so back out to the
		// item list of the drink's category.
		switch item.Category {
		case domain.CategoryBlackCoffee:
			d.Step = domain.StepBlackCoffee
		default:
			d.Step = domain.StepCategory
			d.CategoryName = ""
		}
		d.ItemID = ""
		d.Volume = ""
		d.Price = 0

	default:
		// Variable-volume drink without milk options: re-select volume.
		d.Step = domain.StepVolume
		d.Volume = ""
		d.Price = 0
	}
}

// appendLine freezes the in-progress drink as a line item and clears every
// in-progress field so the next drink starts from scratch.
func appendLine(d *domain.OrderDraft) {
	if d.ItemID == "" {
		return
	}
	additions := make([]string, len(d.Additions))
	copy(additions, d.Additions)
	d.Lines = append(d.Lines, domain.LineItem{
		ItemID:    d.ItemID,
		Volume:    d.Volume,
		MilkID:    d.MilkID,
		SyrupID:   d.SyrupID,
		Additions: additions,
		Price:     d.Price,
	})
	d.ResetDrink()
}

// listStep maps a category to the step its item list is shown at, or 0 for
// categories without a list of their own.
func listStep(cat domain.Category) domain.Step {
	switch cat {
	case domain.CategoryBlackCoffee:
		return domain.StepBlackCoffee
	case domain.CategoryMilkCoffee:
		return domain.StepMilkCoffee
	case domain.CategoryTea:
		return domain.StepTea
	}
	return 0
}

func milkLabel(name string) string { return "Молоко " + name }

func syrupLabel(name string) string { return "Сироп " + name }

func removeLabeled(additions []string, prefix string) []string {
	kept := additions[:0]
	for _, a := range additions {
		if !strings.HasPrefix(a, prefix) {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

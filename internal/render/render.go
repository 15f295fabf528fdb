// Package render turns an order draft into the message text and inline
// keyboard for its current step. Rendering is pure: the same draft and
// options always produce the same view.
package render

import (
	"fmt"
	"strings"

	"coffee-order-bot/internal/domain"
)

// Callback data emitted on buttons. The transport parses these back into
// engine actions.
const (
	CallbackBack       = "back"
	CallbackAddAnother = "add_more"
	CallbackPayCash    = "pay_cash"
	CallbackPayOnline  = "pay_online"
	CallbackPayCheck   = "pay_check"
	CallbackNone       = "none"

	PrefixCategory = "cat_"
	PrefixItem     = "item_"
	PrefixVolume   = "vol_"
	PrefixMilk     = "milk_"
	PrefixSyrup    = "syrup_"
)

// CategoryKey is the callback suffix for the selectable categories.
var CategoryKey = map[domain.Category]string{
	domain.CategoryBlackCoffee: "black",
	domain.CategoryMilkCoffee:  "milk",
	domain.CategoryTea:         "tea",
}

// Button is one inline keyboard button.
type Button struct {
	Label string
	Data  string
}

// View is a rendered message: Markdown text plus keyboard rows.
type View struct {
	Text     string
	Keyboard [][]Button
}

// Options carry the settings that shape the keyboard.
type Options struct {
	OnlinePayment bool
}

// Render builds the message for the draft's current step.
func Render(d *domain.OrderDraft, cat *domain.Catalog, opts Options) View {
	summary := Summary(d, cat)
	prompt, keyboard := stepView(d, cat, opts)

	text := summary
	if summary != "" && prompt != "" {
		// Extra blank line keeps the summary visually separate.
		text += "\n\n\n" + prompt
	} else {
		text += prompt
	}
	return View{Text: text, Keyboard: keyboard}
}

// Summary lists finished drinks, the drink in progress, comments and the
// running total. Used for the live message and the staff notification.
func Summary(d *domain.OrderDraft, cat *domain.Catalog) string {
	if d.IsEmpty() && d.CategoryName == "" && len(d.Comments) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("📋 *Ваш заказ:*\n")

	for i, line := range d.Lines {
		item, ok := cat.FindItem(line.ItemID)
		name := line.ItemID
		if ok {
			name = item.Name
		}
		fmt.Fprintf(&b, "%d. ☕️ %s", i+1, name)
		if line.Volume != "" {
			fmt.Fprintf(&b, " (%sл)", line.Volume)
		}
		b.WriteString("\n")
		for _, add := range line.Additions {
			fmt.Fprintf(&b, "    • %s\n", add)
		}
	}

	if d.ItemID != "" {
		item, ok := cat.FindItem(d.ItemID)
		name := d.ItemID
		if ok {
			name = item.Name
		}
		fmt.Fprintf(&b, "☕️ %s", name)
		if d.Volume != "" {
			fmt.Fprintf(&b, " (%sл)", d.Volume)
		}
		b.WriteString("\n")
		if milk, ok := cat.FindAddition(domain.AdditionMilk, d.MilkID); ok {
			fmt.Fprintf(&b, "🥛 Молоко: %s\n", milk.Name)
		}
		if syrup, ok := cat.FindAddition(domain.AdditionSyrup, d.SyrupID); ok {
			fmt.Fprintf(&b, "🍬 Сироп: %s\n", syrup.Name)
		}
	} else if d.CategoryName != "" {
		fmt.Fprintf(&b, "📂 %s\n", d.CategoryName)
	}

	for _, comment := range d.Comments {
		fmt.Fprintf(&b, "💬 %s\n", comment)
	}

	if total := d.TotalPrice(); total > 0 {
		fmt.Fprintf(&b, "\n💰 *Итого: %d₽*", total)
	}

	return strings.TrimRight(b.String(), "\n")
}

func stepView(d *domain.OrderDraft, cat *domain.Catalog, opts Options) (string, [][]Button) {
	switch d.Step {
	case domain.StepCategory:
		prompt := "Привет! 🙌 Что вам приготовить?"
		if !d.IsEmpty() {
			prompt = "Что приготовить ещё?"
		}
		return prompt, [][]Button{
			{{Label: "Черный кофе", Data: PrefixCategory + "black"}},
			{{Label: "Молочный кофе", Data: PrefixCategory + "milk"}},
			{{Label: "Чай 0,3", Data: PrefixCategory + "tea"}},
		}

	case domain.StepBlackCoffee:
		return "Отличный выбор! Какой именно?", itemRows(cat.Items(domain.CategoryBlackCoffee))

	case domain.StepMilkCoffee:
		return "Отличный выбор! Какой именно?", itemRows(cat.Items(domain.CategoryMilkCoffee))

	case domain.StepTea:
		return "Отличный выбор! Какой именно?", itemRows(cat.Items(domain.CategoryTea))

	case domain.StepVolume:
		rows := [][]Button{}
		if item, ok := cat.FindItem(d.ItemID); ok {
			for _, v := range item.Pricing.Volumes() {
				rows = append(rows, []Button{{Label: string(v) + " л", Data: PrefixVolume + string(v)}})
			}
		}
		rows = append(rows, backRow())
		return "Отличный выбор! Теперь давайте определимся с объемом!", rows

	case domain.StepMilk:
		rows := [][]Button{{{Label: "Спасибо, не надо", Data: PrefixMilk + CallbackNone}}}
		for _, m := range cat.Milks() {
			rows = append(rows, []Button{{Label: m.Name, Data: PrefixMilk + m.ID}})
		}
		rows = append(rows, backRow())
		return "Может на альтернативном молоке?", rows

	case domain.StepSyrup:
		rows := [][]Button{}
		syrups := cat.Syrups()
		for i := 0; i < len(syrups); i += 2 {
			row := []Button{{Label: syrups[i].Name, Data: PrefixSyrup + syrups[i].ID}}
			if i+1 < len(syrups) {
				row = append(row, Button{Label: syrups[i+1].Name, Data: PrefixSyrup + syrups[i+1].ID})
			}
			rows = append(rows, row)
		}
		rows = append(rows, []Button{{Label: "Спасибо, не надо", Data: PrefixSyrup + CallbackNone}})
		rows = append(rows, backRow())
		return "А как насчет сиропа?", rows

	case domain.StepPayment:
		rows := [][]Button{
			{{Label: "Оплатить на кассе", Data: CallbackPayCash}},
			{{Label: "➕ Добавить напиток", Data: CallbackAddAnother}},
		}
		if opts.OnlinePayment {
			rows = append(rows, []Button{{Label: "Оплатить онлайн", Data: CallbackPayOnline}})
		}
		rows = append(rows, backRow())
		return "Чудесно! Как будете оплачивать заказ?", rows

	case domain.StepAwaitPayment:
		prompt := "Остался последний шаг — оплата!"
		if d.PaymentURL != "" {
			prompt += fmt.Sprintf("\n\n[Ссылка на оплату](%s)", d.PaymentURL)
		}
		prompt += "\n\nОплатите заказ и нажмите «Я оплатил»."
		return prompt, [][]Button{
			{{Label: "Я оплатил", Data: CallbackPayCheck}},
			backRow(),
		}

	case domain.StepDone:
		prompt := "Супер! Ждем 👍"
		if d.OrderNumber > 0 {
			prompt += fmt.Sprintf("\n🔢 Номер заказа: #%d", d.OrderNumber)
		}
		return prompt, nil
	}

	return "", nil
}

func itemRows(items []domain.MenuItem) [][]Button {
	rows := make([][]Button, 0, len(items)+1)
	for _, item := range items {
		rows = append(rows, []Button{{Label: item.Name, Data: PrefixItem + item.ID}})
	}
	rows = append(rows, backRow())
	return rows
}

func backRow() []Button {
	return []Button{{Label: "Назад", Data: CallbackBack}}
}

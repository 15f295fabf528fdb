package domain

// Step is the draft's position in the ordering state machine.
type Step int

const (
	StepCategory     Step = 1  // pick a category, or start another drink
	StepBlackCoffee  Step = 2  // black coffee item list
	StepMilkCoffee   Step = 3  // milk coffee item list
	StepVolume       Step = 4  // volume selection
	StepTea          Step = 5  // tea item list
	StepMilk         Step = 6  // alternative milk selection
	StepSyrup        Step = 7  // syrup selection
	StepPayment      Step = 8  // payment method / add-another gate
	StepAwaitPayment Step = 9  // waiting for online payment confirmation
	StepDone         Step = 10 // order placed
)

// PaymentMethod is how the finished order gets paid.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// LineItem is one finished drink inside a multi-drink order. Immutable once
// appended to the draft.
type LineItem struct {
	ItemID    string
	Volume    Volume
	MilkID    string
	SyrupID   string
	Additions []string
	Price     int64
}

// Requester identifies the ordering user for the staff notification.
type Requester struct {
	ID        int64
	Username  string
	FirstName string
}

// Name returns the best available display name.
func (r Requester) Name() string {
	if r.Username != "" {
		return "@" + r.Username
	}
	return r.FirstName
}

// OrderDraft is the per-conversation order under construction. All mutation
// goes through the step transition engine.
type OrderDraft struct {
	Step         Step
	CategoryName string

	// In-progress drink. Cleared together when the drink becomes a line
	// item or is abandoned by backing out to the category step.
	ItemID    string
	Volume    Volume
	MilkID    string
	SyrupID   string
	Price     int64    // base price plus surcharges of Additions
	Additions []string // display labels, reverted together with Price

	Lines    []LineItem
	Comments []string

	PaymentMethod PaymentMethod
	PaymentID     string
	PaymentURL    string

	OrderNumber int // assigned exactly once at the terminal step
	MessageID   int // the single chat message this draft renders into
}

// NewOrderDraft starts an empty draft at the category step.
func NewOrderDraft() *OrderDraft {
	return &OrderDraft{Step: StepCategory}
}

// TotalPrice is the in-progress drink plus all finished line items.
func (d *OrderDraft) TotalPrice() int64 {
	total := d.Price
	for _, line := range d.Lines {
		total += line.Price
	}
	return total
}

// IsEmpty reports whether nothing has been picked yet.
func (d *OrderDraft) IsEmpty() bool {
	return d.ItemID == "" && len(d.Lines) == 0
}

// ResetDrink clears every in-progress field, keeping finished line items,
// comments and payment linkage untouched.
func (d *OrderDraft) ResetDrink() {
	d.CategoryName = ""
	d.ItemID = ""
	d.Volume = ""
	d.MilkID = ""
	d.SyrupID = ""
	d.Price = 0
	d.Additions = nil
}

package settings

import "context"

// Settings are the shop-wide toggles read on every order interaction.
type Settings struct {
	BotActive           bool `json:"botActive"`
	OnlinePaymentActive bool `json:"onlinePaymentActive"`
}

// UpdateInput carries partial settings changes; nil fields keep the stored
// value.
type UpdateInput struct {
	BotActive           *bool `json:"botActive"`
	OnlinePaymentActive *bool `json:"onlinePaymentActive"`
}

// Repository stores the settings and the daily order counter. The counter
// is the only cross-conversation mutable state; NextOrderNumber must be a
// serialized read-modify-write.
type Repository interface {
	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, in UpdateInput) (Settings, error)

	// NextOrderNumber returns the next sequential order number, starting
	// over from 1 on the first call after local midnight in the shop's
	// timezone.
	NextOrderNumber(ctx context.Context) (int, error)
}

package settings

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
	loc  *time.Location
	now  func() time.Time
}

// NewPostgres returns a Repository backed by the bot_settings and
// order_counter tables. loc is the shop's timezone used for the daily
// counter reset.
func NewPostgres(pool *pgxpool.Pool, loc *time.Location) Repository {
	return &postgresRepo{pool: pool, loc: loc, now: time.Now}
}

func (r *postgresRepo) GetSettings(ctx context.Context) (Settings, error) {
	const q = `
SELECT bot_active, online_payment_active
FROM bot_settings
WHERE id = 1
`
	var s Settings
	if err := r.pool.QueryRow(ctx, q).Scan(&s.BotActive, &s.OnlinePaymentActive); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (r *postgresRepo) UpdateSettings(ctx context.Context, in UpdateInput) (Settings, error) {
	const q = `
UPDATE bot_settings
SET bot_active = COALESCE($1, bot_active),
    online_payment_active = COALESCE($2, online_payment_active)
WHERE id = 1
RETURNING bot_active, online_payment_active
`
	var s Settings
	if err := r.pool.QueryRow(ctx, q, in.BotActive, in.OnlinePaymentActive).Scan(&s.BotActive, &s.OnlinePaymentActive); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (r *postgresRepo) NextOrderNumber(ctx context.Context) (int, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var lastReset string
	var current int
	err = tx.QueryRow(ctx, `
SELECT to_char(last_reset_date, 'YYYY-MM-DD'), current_id
FROM order_counter
WHERE id = 1
FOR UPDATE
`).Scan(&lastReset, &current)
	if err != nil {
		return 0, err
	}

	today := r.now().In(r.loc).Format("2006-01-02")
	if lastReset != today {
		current = 1
	} else {
		current++
	}

	if _, err := tx.Exec(ctx, `
UPDATE order_counter
SET last_reset_date = $1, current_id = $2
WHERE id = 1
`, today, current); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return current, nil
}

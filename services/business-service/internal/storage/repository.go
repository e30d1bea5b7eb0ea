package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pberardi-dev/slotwise/libs/db"
)

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

type BusinessProfile struct {
	BusinessID      string
	Name            string
	Timezone        string
	SlotStepMinutes int
	OffsetsMins     []int
}

func (r *Repository) GetOrCreateProfile(ctx context.Context, businessID string) (BusinessProfile, error) {
	// Create a default profile if missing (keeps dev UX smooth while other services mature).
	_, err := r.pool.Exec(ctx, `
		INSERT INTO business_profiles (business_id)
		VALUES ($1)
		ON CONFLICT (business_id) DO NOTHING
	`, businessID)
	if err != nil {
		return BusinessProfile{}, err
	}

	var p BusinessProfile
	err = r.pool.QueryRow(ctx, `
		SELECT business_id::text, name, timezone, slot_step_minutes, reminder_offsets_minutes
		FROM business_profiles
		WHERE business_id = $1
	`, businessID).Scan(&p.BusinessID, &p.Name, &p.Timezone, &p.SlotStepMinutes, &p.OffsetsMins)
	return p, err
}

func (r *Repository) UpdateProfile(ctx context.Context, businessID string, name string, timezone string, slotStepMinutes int, offsetsMins []int) error {
	if len(offsetsMins) == 0 {
		offsetsMins = []int{1440, 60}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO business_profiles (business_id, name, timezone, slot_step_minutes, reminder_offsets_minutes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (business_id) DO UPDATE
		SET name = EXCLUDED.name,
			timezone = EXCLUDED.timezone,
			slot_step_minutes = EXCLUDED.slot_step_minutes,
			reminder_offsets_minutes = EXCLUDED.reminder_offsets_minutes,
			updated_at = now()
	`, businessID, name, timezone, slotStepMinutes, offsetsMins)
	return err
}

type BusinessService struct {
	ID           string
	BusinessID   string
	Name         string
	DurationMins int
	Price        string
	Description  string
	CreatedAt    time.Time
}

func (r *Repository) CreateService(ctx context.Context, tx pgx.Tx, businessID, name string, durationMinutes int, price string, description string) (string, error) {
	id := uuid.NewString()
	_, err := tx.Exec(ctx, `
		INSERT INTO business_services (id, business_id, name, duration_minutes, price, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, businessID, name, durationMinutes, price, description)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) ListServices(ctx context.Context, businessID string, limit int) ([]BusinessService, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, business_id::text, name, duration_minutes, price::text, description, created_at
		FROM business_services
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BusinessService
	for rows.Next() {
		var s BusinessService
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Name, &s.DurationMins, &s.Price, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *Repository) GetServiceDuration(ctx context.Context, businessID, serviceID string) (int, error) {
	var mins int
	err := r.pool.QueryRow(ctx, `
		SELECT duration_minutes
		FROM business_services
		WHERE business_id = $1 AND id = $2
	`, businessID, serviceID).Scan(&mins)
	return mins, err
}

type Staff struct {
	ID         string
	BusinessID string
	Name       string
	IsActive   bool
}

func (r *Repository) CreateStaff(ctx context.Context, businessID, name string, isActive bool) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO staff (business_id, name, is_active)
		VALUES ($1, $2, $3)
		RETURNING id::text
	`, businessID, name, isActive).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) ListStaff(ctx context.Context, businessID string, limit int) ([]Staff, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, business_id::text, name, is_active
		FROM staff
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Staff
	for rows.Next() {
		var s Staff
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Name, &s.IsActive); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// WorkingHours is one weekday's opening window for a business. A weekday with
// no row counts as closed.
type WorkingHours struct {
	BusinessID  string
	Weekday     int
	IsOpen      bool
	OpenMinute  int
	CloseMinute int
}

func (r *Repository) GetWorkingHours(ctx context.Context, businessID string, weekday int) (WorkingHours, bool, error) {
	var wh WorkingHours
	err := r.pool.QueryRow(ctx, `
		SELECT business_id::text, weekday, is_open, open_minute, close_minute
		FROM business_working_hours
		WHERE business_id = $1 AND weekday = $2
	`, businessID, weekday).Scan(&wh.BusinessID, &wh.Weekday, &wh.IsOpen, &wh.OpenMinute, &wh.CloseMinute)
	if err == nil {
		return wh, true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return WorkingHours{BusinessID: businessID, Weekday: weekday}, false, nil
	}
	return WorkingHours{}, false, err
}

func (r *Repository) ListWorkingHours(ctx context.Context, businessID string) ([]WorkingHours, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT business_id::text, weekday, is_open, open_minute, close_minute
		FROM business_working_hours
		WHERE business_id = $1
		ORDER BY weekday ASC
	`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WorkingHours
	for rows.Next() {
		var wh WorkingHours
		if err := rows.Scan(&wh.BusinessID, &wh.Weekday, &wh.IsOpen, &wh.OpenMinute, &wh.CloseMinute); err != nil {
			return nil, err
		}
		out = append(out, wh)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *Repository) UpsertWorkingHours(ctx context.Context, tx pgx.Tx, wh WorkingHours) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO business_working_hours (business_id, weekday, is_open, open_minute, close_minute)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (business_id, weekday) DO UPDATE
		SET is_open = EXCLUDED.is_open,
			open_minute = EXCLUDED.open_minute,
			close_minute = EXCLUDED.close_minute,
			updated_at = now()
	`, wh.BusinessID, wh.Weekday, wh.IsOpen, wh.OpenMinute, wh.CloseMinute)
	return err
}

// ClosedDate is a one-off full-day closure, e.g. a public holiday.
type ClosedDate struct {
	ID         string
	BusinessID string
	Date       string // YYYY-MM-DD
	Reason     string
	CreatedAt  time.Time
}

func (r *Repository) CreateClosedDate(ctx context.Context, businessID, date, reason string) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO business_closed_dates (id, business_id, closed_date, reason)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (business_id, closed_date) DO UPDATE SET reason = EXCLUDED.reason
	`, id, businessID, date, reason)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) IsClosedDate(ctx context.Context, businessID, date string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM business_closed_dates
			WHERE business_id = $1 AND closed_date = $2
		)
	`, businessID, date).Scan(&exists)
	return exists, err
}

func (r *Repository) ListClosedDates(ctx context.Context, businessID, from, to string, limit int) ([]ClosedDate, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, business_id::text, closed_date::text, reason, created_at
		FROM business_closed_dates
		WHERE business_id = $1
			AND closed_date >= $2
			AND closed_date < $3
		ORDER BY closed_date ASC
		LIMIT $4
	`, businessID, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ClosedDate
	for rows.Next() {
		var c ClosedDate
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Date, &c.Reason, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *Repository) DeleteClosedDate(ctx context.Context, businessID, id string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM business_closed_dates
		WHERE business_id = $1 AND id = $2
	`, businessID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

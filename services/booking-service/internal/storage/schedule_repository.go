package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/availability"
)

// CachedDayHours is one weekday row of the local working-hours cache, fed by
// business.hours.updated.v1 events. Weekday is 0=Sunday, matching the
// business-service payload.
type CachedDayHours struct {
	BusinessID  string
	Weekday     int
	IsOpen      bool
	OpenMinute  int
	CloseMinute int
}

func (r *BookingRepository) UpsertCachedHours(ctx context.Context, tx pgx.Tx, row CachedDayHours) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO schedule_hours_cache (business_id, weekday, is_open, open_minute, close_minute)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (business_id, weekday)
		DO UPDATE SET is_open = EXCLUDED.is_open,
		              open_minute = EXCLUDED.open_minute,
		              close_minute = EXCLUDED.close_minute,
		              updated_at = now()
	`, row.BusinessID, row.Weekday, row.IsOpen, row.OpenMinute, row.CloseMinute)
	return err
}

// ListWeeklyHours loads the cached hours for a business as the resolver's
// weekly map. Weekdays without a cached row stay absent, which the resolver
// treats as closed.
func (r *BookingRepository) ListWeeklyHours(ctx context.Context, businessID string) (availability.WeeklyHours, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT weekday, is_open, open_minute, close_minute
		FROM schedule_hours_cache
		WHERE business_id = $1
	`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := availability.WeeklyHours{}
	for rows.Next() {
		var weekday int
		var day availability.DayHours
		if err := rows.Scan(&weekday, &day.Open, &day.OpenMinute, &day.CloseMinute); err != nil {
			return nil, err
		}
		hours[time.Weekday(weekday)] = day
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return hours, nil
}

func (r *BookingRepository) UpsertCachedServiceDuration(ctx context.Context, tx pgx.Tx, businessID, serviceID string, durationMinutes int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO schedule_services_cache (business_id, service_id, duration_minutes)
		VALUES ($1, $2, $3)
		ON CONFLICT (business_id, service_id)
		DO UPDATE SET duration_minutes = EXCLUDED.duration_minutes,
		              updated_at = now()
	`, businessID, serviceID, durationMinutes)
	return err
}

func (r *BookingRepository) GetCachedServiceDuration(ctx context.Context, businessID, serviceID string) (int, bool, error) {
	var duration int
	err := r.pool.QueryRow(ctx, `
		SELECT duration_minutes
		FROM schedule_services_cache
		WHERE business_id = $1 AND service_id = $2
	`, businessID, serviceID).Scan(&duration)
	if err != nil {
		if IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return duration, true, nil
}

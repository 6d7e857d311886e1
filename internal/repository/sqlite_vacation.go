package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// SQLiteVacationRepo implements VacationRepo using a SQLite database.
type SQLiteVacationRepo struct {
	db *sql.DB
}

// NewSQLiteVacationRepo creates a new SQLiteVacationRepo.
func NewSQLiteVacationRepo(db *sql.DB) *SQLiteVacationRepo {
	return &SQLiteVacationRepo{db: db}
}

func (r *SQLiteVacationRepo) Add(ctx context.Context, v *domain.VacationDay) error {
	// Adding the same day twice is a no-op, not an error.
	query := `INSERT OR IGNORE INTO vacation_days (id, date, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID,
		v.Date.Format(dateLayout),
		v.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting vacation day: %w", err)
	}
	return nil
}

func (r *SQLiteVacationRepo) Remove(ctx context.Context, date time.Time) error {
	query := `DELETE FROM vacation_days WHERE date = ?`
	res, err := r.db.ExecContext(ctx, query, date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("removing vacation day: %w", err)
	}
	return requireRow(res, "vacation day")
}

func (r *SQLiteVacationRepo) List(ctx context.Context) ([]*domain.VacationDay, error) {
	query := `SELECT id, date, created_at FROM vacation_days ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing vacation days: %w", err)
	}
	defer rows.Close()

	var days []*domain.VacationDay
	for rows.Next() {
		var v domain.VacationDay
		var dateStr, createdAtStr string
		if err := rows.Scan(&v.ID, &dateStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning vacation row: %w", err)
		}
		date, err := domain.ParseDay(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing vacation date: %w", err)
		}
		v.Date = date
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing vacation created_at: %w", err)
		}
		v.CreatedAt = createdAt
		days = append(days, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vacation rows: %w", err)
	}
	return days, nil
}


// SQLiteTimeSlotRepo implements TimeSlotRepo using a SQLite database.
type SQLiteTimeSlotRepo struct {
	db *sql.DB
}

// NewSQLiteTimeSlotRepo creates a new SQLiteTimeSlotRepo.
func NewSQLiteTimeSlotRepo(db *sql.DB) *SQLiteTimeSlotRepo {
	return &SQLiteTimeSlotRepo{db: db}
}

func (r *SQLiteTimeSlotRepo) Create(ctx context.Context, s *domain.TimeSlot) error {
	query := `INSERT INTO time_slots (id, activity_id, label, weekdays) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.ActivityID, s.Label, joinInts(s.Weekdays))
	if err != nil {
		return fmt.Errorf("inserting time slot: %w", err)
	}
	return nil
}

func (r *SQLiteTimeSlotRepo) ListByActivity(ctx context.Context, activityID string) ([]*domain.TimeSlot, error) {
	query := `SELECT id, activity_id, label, weekdays FROM time_slots WHERE activity_id = ? ORDER BY label`
	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("listing time slots by activity: %w", err)
	}
	defer rows.Close()
	return scanTimeSlots(rows)
}

func (r *SQLiteTimeSlotRepo) ListAll(ctx context.Context) ([]*domain.TimeSlot, error) {
	query := `SELECT id, activity_id, label, weekdays FROM time_slots ORDER BY activity_id, label`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing time slots: %w", err)
	}
	defer rows.Close()
	return scanTimeSlots(rows)
}

func (r *SQLiteTimeSlotRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM time_slots WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting time slot: %w", err)
	}
	return requireRow(res, "time slot")
}

func scanTimeSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	var slots []*domain.TimeSlot
	for rows.Next() {
		var s domain.TimeSlot
		var weekdays sql.NullString
		if err := rows.Scan(&s.ID, &s.ActivityID, &s.Label, &weekdays); err != nil {
			return nil, fmt.Errorf("scanning time slot row: %w", err)
		}
		s.Weekdays = splitInts(weekdays)
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time slot rows: %w", err)
	}
	return slots, nil
}


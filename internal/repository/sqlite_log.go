package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// SQLiteLogRepo implements LogRepo using a SQLite database.
type SQLiteLogRepo struct {
	db *sql.DB
}

// NewSQLiteLogRepo creates a new SQLiteLogRepo.
func NewSQLiteLogRepo(db *sql.DB) *SQLiteLogRepo {
	return &SQLiteLogRepo{db: db}
}

const logColumns = `id, activity_id, date, status, value, time_slot, skip_reason, completed_at, created_at`

func (r *SQLiteLogRepo) Create(ctx context.Context, l *domain.ActivityLog) error {
	query := `INSERT INTO activity_logs (` + logColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.ActivityID,
		l.Date.Format(dateLayout),
		string(l.Status),
		nullableFloatToValue(l.Value),
		nullableStrToValue(l.TimeSlot),
		nullableStrToValue(l.SkipReason),
		l.CompletedAt.Format(time.RFC3339),
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity log: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) GetByID(ctx context.Context, id string) (*domain.ActivityLog, error) {
	query := `SELECT ` + logColumns + ` FROM activity_logs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanLog(row)
}

func (r *SQLiteLogRepo) ListAll(ctx context.Context) ([]*domain.ActivityLog, error) {
	query := `SELECT ` + logColumns + ` FROM activity_logs ORDER BY date, completed_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activity logs: %w", err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteLogRepo) ListByActivity(ctx context.Context, activityID string) ([]*domain.ActivityLog, error) {
	query := `SELECT ` + logColumns + ` FROM activity_logs WHERE activity_id = ? ORDER BY date, completed_at`
	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("listing logs by activity: %w", err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteLogRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.ActivityLog, error) {
	query := `SELECT ` + logColumns + ` FROM activity_logs WHERE date = ? ORDER BY completed_at`
	rows, err := r.db.QueryContext(ctx, query, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing logs by date: %w", err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteLogRepo) ListSince(ctx context.Context, date time.Time) ([]*domain.ActivityLog, error) {
	query := `SELECT ` + logColumns + ` FROM activity_logs WHERE date >= ? ORDER BY date, completed_at`
	rows, err := r.db.QueryContext(ctx, query, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing logs since date: %w", err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteLogRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM activity_logs WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting activity log: %w", err)
	}
	return requireRow(res, "activity log")
}

func (r *SQLiteLogRepo) scanLog(row *sql.Row) (*domain.ActivityLog, error) {
	var l domain.ActivityLog
	var status, dateStr, completedAtStr, createdAtStr string
	var value sql.NullFloat64
	var timeSlot, skipReason sql.NullString

	err := row.Scan(
		&l.ID, &l.ActivityID, &dateStr, &status, &value, &timeSlot, &skipReason, &completedAtStr, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity log: %w", err)
	}

	return r.populateLog(&l, status, dateStr, completedAtStr, createdAtStr, value, timeSlot, skipReason)
}

func (r *SQLiteLogRepo) scanLogs(rows *sql.Rows) ([]*domain.ActivityLog, error) {
	var logs []*domain.ActivityLog
	for rows.Next() {
		var l domain.ActivityLog
		var status, dateStr, completedAtStr, createdAtStr string
		var value sql.NullFloat64
		var timeSlot, skipReason sql.NullString

		err := rows.Scan(
			&l.ID, &l.ActivityID, &dateStr, &status, &value, &timeSlot, &skipReason, &completedAtStr, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}

		log, err := r.populateLog(&l, status, dateStr, completedAtStr, createdAtStr, value, timeSlot, skipReason)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log rows: %w", err)
	}
	return logs, nil
}

func (r *SQLiteLogRepo) populateLog(
	l *domain.ActivityLog,
	status, dateStr, completedAtStr, createdAtStr string,
	value sql.NullFloat64,
	timeSlot, skipReason sql.NullString,
) (*domain.ActivityLog, error) {
	l.Status = domain.LogStatus(status)
	l.Value = floatFromNull(value)
	l.TimeSlot = strFromNull(timeSlot)
	l.SkipReason = strFromNull(skipReason)

	date, err := domain.ParseDay(dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing log date: %w", err)
	}
	l.Date = date

	completedAt, err := time.Parse(time.RFC3339, completedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing log completed_at: %w", err)
	}
	l.CompletedAt = completedAt

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing log created_at: %w", err)
	}
	l.CreatedAt = createdAt

	return l, nil
}

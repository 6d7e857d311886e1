package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkellner/cadence/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db *sql.DB
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(db *sql.DB) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

const activityColumns = `id, name, kind, schedule_kind, weekdays, month_days, adhoc_date,
	target_value, aggregation, carry_forward, parent_id, created_at, stopped_at, updated_at`

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		string(a.Kind),
		string(a.Schedule.Kind),
		joinInts(a.Schedule.Weekdays),
		joinInts(a.Schedule.MonthDays),
		nullableTimeToString(a.Schedule.Date, dateLayout),
		nullableFloatToValue(a.TargetValue),
		string(a.Aggregation),
		boolToInt(a.CarryForward),
		nullableStrToValue(a.ParentID),
		a.CreatedAt.Format(time.RFC3339),
		nullableTimeToString(a.StoppedAt, time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanActivity(row)
}

func (r *SQLiteActivityRepo) List(ctx context.Context, includeStopped bool) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities`
	if !includeStopped {
		query += ` WHERE stopped_at IS NULL`
	}
	query += ` ORDER BY created_at, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) ListChildren(ctx context.Context, parentID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE parent_id = ? ORDER BY created_at, name`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing children: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET
		name = ?, kind = ?, schedule_kind = ?, weekdays = ?, month_days = ?, adhoc_date = ?,
		target_value = ?, aggregation = ?, carry_forward = ?, parent_id = ?, stopped_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Name,
		string(a.Kind),
		string(a.Schedule.Kind),
		joinInts(a.Schedule.Weekdays),
		joinInts(a.Schedule.MonthDays),
		nullableTimeToString(a.Schedule.Date, dateLayout),
		nullableFloatToValue(a.TargetValue),
		string(a.Aggregation),
		boolToInt(a.CarryForward),
		nullableStrToValue(a.ParentID),
		nullableTimeToString(a.StoppedAt, time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	return requireRow(res, "activity")
}

func (r *SQLiteActivityRepo) Stop(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE activities SET stopped_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		at.Format(time.RFC3339), time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("stopping activity: %w", err)
	}
	return requireRow(res, "activity")
}

func (r *SQLiteActivityRepo) Resume(ctx context.Context, id string) error {
	query := `UPDATE activities SET stopped_at = NULL, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("resuming activity: %w", err)
	}
	return requireRow(res, "activity")
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM activities WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return requireRow(res, "activity")
}

// requireRow converts a zero-row result into ErrNotFound.
func requireRow(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

func (r *SQLiteActivityRepo) scanActivity(row *sql.Row) (*domain.Activity, error) {
	var a domain.Activity
	var kind, scheduleKind, aggregation, createdAtStr, updatedAtStr string
	var weekdays, monthDays, adhocDate, parentID, stoppedAt sql.NullString
	var targetValue sql.NullFloat64
	var carryForward int

	err := row.Scan(
		&a.ID, &a.Name, &kind, &scheduleKind, &weekdays, &monthDays, &adhocDate,
		&targetValue, &aggregation, &carryForward, &parentID, &createdAtStr, &stoppedAt, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	return r.populateActivity(&a, kind, scheduleKind, aggregation, createdAtStr, updatedAtStr,
		weekdays, monthDays, adhocDate, parentID, stoppedAt, targetValue, carryForward)
}

func (r *SQLiteActivityRepo) scanActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		var kind, scheduleKind, aggregation, createdAtStr, updatedAtStr string
		var weekdays, monthDays, adhocDate, parentID, stoppedAt sql.NullString
		var targetValue sql.NullFloat64
		var carryForward int

		err := rows.Scan(
			&a.ID, &a.Name, &kind, &scheduleKind, &weekdays, &monthDays, &adhocDate,
			&targetValue, &aggregation, &carryForward, &parentID, &createdAtStr, &stoppedAt, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}

		activity, err := r.populateActivity(&a, kind, scheduleKind, aggregation, createdAtStr, updatedAtStr,
			weekdays, monthDays, adhocDate, parentID, stoppedAt, targetValue, carryForward)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity rows: %w", err)
	}
	return activities, nil
}

func (r *SQLiteActivityRepo) populateActivity(
	a *domain.Activity,
	kind, scheduleKind, aggregation, createdAtStr, updatedAtStr string,
	weekdays, monthDays, adhocDate, parentID, stoppedAt sql.NullString,
	targetValue sql.NullFloat64,
	carryForward int,
) (*domain.Activity, error) {
	a.Kind = domain.ActivityKind(kind)
	a.Schedule = domain.Schedule{
		Kind:      domain.ScheduleKind(scheduleKind),
		Weekdays:  splitInts(weekdays),
		MonthDays: splitInts(monthDays),
		Date:      parseNullableTime(adhocDate, dateLayout),
	}
	a.TargetValue = floatFromNull(targetValue)
	a.Aggregation = domain.AggregationMode(aggregation)
	a.CarryForward = carryForward != 0
	a.ParentID = strFromNull(parentID)
	a.StoppedAt = parseNullableTime(stoppedAt, time.RFC3339)

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing activity created_at: %w", err)
	}
	a.CreatedAt = createdAt

	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing activity updated_at: %w", err)
	}
	a.UpdatedAt = updatedAt

	return a, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/leavetrack/leave-backend-go/internal/domain/leave"
	"github.com/leavetrack/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.user_id, lr.type, lr.start_date, lr.end_date, lr.reason,
	lr.status, lr.comment, lr.approved_by, lr.approved_at,
	lr.created_at, lr.updated_at,
	u.name, u.department, u.position
`

const leaveRequestJoin = `
	FROM leave_requests lr
	INNER JOIN users u ON lr.user_id = u.id
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.UserID,
		&lr.Type,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&lr.Status,
		&lr.Comment,
		&lr.ApprovedBy,
		&lr.ApprovedAt,
		&lr.CreatedAt,
		&lr.UpdatedAt,
		&lr.EmployeeName,
		&lr.EmployeeDepartment,
		&lr.EmployeePosition,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	now := time.Now()

	query := `
		INSERT INTO leave_requests (
			id, user_id, type, start_date, end_date, reason, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		request.ID,
		request.UserID,
		string(request.Type),
		request.StartDate,
		request.EndDate,
		request.Reason,
		string(request.Status),
		now,
		now,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoin + ` WHERE lr.id = $1`
	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by id: %w", err)
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoin + ` WHERE lr.user_id = $1 ORDER BY lr.created_at DESC`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by user: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// List applies the filter as a conjunction of independent predicates:
// search AND status AND department.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(u.name ILIKE $%d OR u.department ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Department != "" {
		where = append(where, fmt.Sprintf("LOWER(u.department) = LOWER($%d)", argIdx))
		args = append(args, filter.Department)
		argIdx++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	countQuery := `SELECT COUNT(*)` + leaveRequestJoin + whereClause
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoin + whereClause + ` ORDER BY lr.created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
		argIdx++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, filter.Offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := collectLeaveRequests(rows)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// UpdateStatus is the lifecycle's concurrency safeguard: the UPDATE only
// matches rows whose current status is in fromStatuses, so a racing
// transition affects zero rows for the loser.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, upd leave.StatusUpdate, fromStatuses []leave.LeaveStatus) (int64, error) {
	q := GetQuerier(ctx, r.db)

	statuses := make([]string, len(fromStatuses))
	for i, s := range fromStatuses {
		statuses[i] = string(s)
	}

	query := `
		UPDATE leave_requests
		SET status = $1,
			approved_by = COALESCE($2, approved_by),
			approved_at = COALESCE($3, approved_at),
			comment = COALESCE($4, comment),
			updated_at = $5
		WHERE id = $6 AND status = ANY($7)
	`
	commandTag, err := q.Exec(ctx, query,
		string(upd.Status),
		upd.ApprovedBy,
		upd.ApprovedAt,
		upd.Comment,
		time.Now(),
		upd.ID,
		statuses,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func (r *leaveRequestRepositoryImpl) GetApprovedOverlapping(ctx context.Context, date time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + leaveRequestJoin + `
		WHERE lr.status = 'approved'
		  AND lr.start_date <= $1
		  AND lr.end_date >= $1
		ORDER BY lr.start_date ASC, lr.id ASC
	`
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave requests for date: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return requests, nil
}

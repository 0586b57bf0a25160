package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ParticipationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipationRepo(db *dbpg.DB) *ParticipationRepository {
	return &ParticipationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const requestColumns = `id, event_id, requester_id, status, created_at, updated_at`

func (r *ParticipationRepository) Create(ctx context.Context, p *domain.Participation) error {
	query := `INSERT INTO participation_requests (id, event_id, requester_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.EventID, p.RequesterID, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrRequestExists
		}
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

func (r *ParticipationRepository) FindBlocking(ctx context.Context, eventID, requesterID string) (*domain.Participation, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE event_id=$1 AND requester_id=$2 AND status = ANY($3)
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, requesterID, pq.Array(domain.BlockingStatuses))
	if err != nil {
		return nil, fmt.Errorf("find blocking request: %w", err)
	}

	return scanRequest(row.Scan)
}

func (r *ParticipationRepository) GetByIDAndRequester(ctx context.Context, requestID, requesterID string) (*domain.Participation, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE id=$1 AND requester_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, requestID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	return scanRequest(row.Scan)
}

func (r *ParticipationRepository) ListByIDs(ctx context.Context, eventID string, requestIDs []string) ([]*domain.Participation, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE event_id=$1 AND id = ANY($2)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, pq.Array(requestIDs))
	if err != nil {
		return nil, fmt.Errorf("list requests by ids: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// CountConfirmed is a live aggregate over the stored rows. The limit is
// always compared against this count, never against a decrementing field.
func (r *ParticipationRepository) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM participation_requests
			  WHERE event_id=$1 AND status=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.RequestStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("count confirmed: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan confirmed count: %w", err)
	}

	return count, nil
}

// UpdateStatus is a compare-and-set on the prior status. The stale-request
// sweep runs outside the event guard, so a row loaded as PENDING may have
// been rejected in between; the status filter keeps such a row terminal.
func (r *ParticipationRepository) UpdateStatus(ctx context.Context, p *domain.Participation, from domain.RequestStatus) error {
	query := `UPDATE participation_requests
			  SET status=$2, updated_at=now()
			  WHERE id=$1 AND status=$3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.ID, p.Status, from)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("request rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRequestFinalized
	}

	return nil
}

func (r *ParticipationRepository) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Participation, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE requester_id=$1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list requests by requester: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func (r *ParticipationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Participation, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE event_id=$1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list requests by event: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func (r *ParticipationRepository) DeclineStale(ctx context.Context) ([]*domain.Participation, error) {
	query := `
		UPDATE participation_requests p
		SET status = $2, updated_at = NOW()
		FROM events e
		WHERE p.event_id = e.id
		  AND p.status = $1
		  AND e.event_date < NOW()
		RETURNING p.id, p.event_id, p.requester_id,
				  p.status, p.created_at, p.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.RequestStatusPending, domain.RequestStatusRejected,
	)
	if err != nil {
		return nil, fmt.Errorf("decline stale: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func scanRequest(scan func(dest ...any) error) (*domain.Participation, error) {
	var p domain.Participation
	err := scan(&p.ID, &p.EventID, &p.RequesterID, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return &p, nil
}

func collectRequests(rows *sql.Rows) ([]*domain.Participation, error) {
	var res []*domain.Participation
	for rows.Next() {
		p, err := scanRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

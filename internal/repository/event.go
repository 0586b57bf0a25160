package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, title, annotation, description, initiator_id, state,
			  event_date, participant_limit, request_moderation, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, annotation, description, initiator_id, state,
	          event_date, participant_limit, request_moderation, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Annotation, e.Description, e.InitiatorID, e.State,
		e.EventDate, e.ParticipantLimit, e.RequestModeration, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return scanEvent(row.Scan)
}

func (r *EventRepository) GetByInitiator(ctx context.Context, eventID, initiatorID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1 AND initiator_id=$2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, initiatorID)
	if err != nil {
		return nil, fmt.Errorf("get event by initiator: %w", err)
	}

	return scanEvent(row.Scan)
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) ListByInitiator(ctx context.Context, initiatorID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE initiator_id=$1
			  ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, initiatorID)
	if err != nil {
		return nil, fmt.Errorf("list events by initiator: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title=$2, annotation=$3, description=$4, state=$5, event_date=$6,
			      participant_limit=$7, request_moderation=$8, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Annotation, e.Description, e.State, e.EventDate,
		e.ParticipantLimit, e.RequestModeration,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	err := scan(
		&e.ID, &e.Title, &e.Annotation, &e.Description, &e.InitiatorID, &e.State,
		&e.EventDate, &e.ParticipantLimit, &e.RequestModeration, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

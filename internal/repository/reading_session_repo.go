package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"astro-reading/internal/domain"
)

// ReadingSessionRepository guarda el perfil mientras dura la sesion.
type ReadingSessionRepository interface {
	Create(ctx context.Context, session domain.ReadingSession) error
	GetActiveByID(ctx context.Context, id string, now time.Time) (domain.ReadingSession, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// dbtx es lo que usamos de pgxpool.Pool.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgReadingSessionRepository struct {
	pool dbtx
}

func NewPgReadingSessionRepository(pool dbtx) *PgReadingSessionRepository {
	return &PgReadingSessionRepository{pool: pool}
}

func (r *PgReadingSessionRepository) Create(ctx context.Context, session domain.ReadingSession) error {
	const query = `
		INSERT INTO reading_sessions (id, profile, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	profile, err := json.Marshal(session.Profile)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		session.ID,
		profile,
		session.ExpiresAt,
		session.CreatedAt,
	)
	return err
}

// GetActiveByID devuelve pgx.ErrNoRows si la sesion no existe o ya vencio.
func (r *PgReadingSessionRepository) GetActiveByID(ctx context.Context, id string, now time.Time) (domain.ReadingSession, error) {
	const query = `
		SELECT id, profile, expires_at, created_at
		FROM reading_sessions
		WHERE id = $1 AND expires_at > $2
	`
	var (
		session domain.ReadingSession
		profile []byte
	)
	err := r.pool.QueryRow(ctx, query, id, now).Scan(
		&session.ID,
		&profile,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ReadingSession{}, err
	}
	if err != nil {
		return domain.ReadingSession{}, err
	}
	if err := json.Unmarshal(profile, &session.Profile); err != nil {
		return domain.ReadingSession{}, err
	}
	return session, nil
}

func (r *PgReadingSessionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM reading_sessions WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PgReadingSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM reading_sessions WHERE expires_at <= $1`
	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"

	"github.com/lib/pq"
)

type sqlVideoRepository struct {
	db SQLQuerier
}

// NewSqlVideoRepository creates sqlVideoRepository that implements port.VideoRepository
func NewSqlVideoRepository(db SQLQuerier) port.VideoRepository {
	return &sqlVideoRepository{
		db: db,
	}
}

const videoColumns = `id, title, description, video_url, thumbnail_url, redirect_url, created_at, updated_at`

// Insert creates a new video row
func (s *sqlVideoRepository) Insert(ctx context.Context, video domain.Video) error {
	query := `INSERT INTO videos (` + videoColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		video.ID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.RedirectURL,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("video %s : %w", video.ID, domain.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("error inserting video: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlVideoRepository) FindByID(ctx context.Context, id string) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	var dbv dbVideo
	err := s.db.QueryRowContext(ctx, query, id).Scan(dbv.scanTargets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}

	return dbv.ToDomain(), nil
}

// ListAll returns every video, newest first
func (s *sqlVideoRepository) ListAll(ctx context.Context) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []domain.Video{}
	for rows.Next() {
		var dbv dbVideo
		if err := rows.Scan(dbv.scanTargets()...); err != nil {
			return nil, err
		}
		videos = append(videos, *dbv.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}

// UpdatePartial sets the provided fields and bumps updated_at
func (s *sqlVideoRepository) UpdatePartial(ctx context.Context, id string, update domain.VideoUpdate) error {
	if update.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalidArgument)
	}

	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.Description != nil {
		add("description", nullIfEmpty(*update.Description))
	}
	if update.RedirectURL != nil {
		add("redirect_url", *update.RedirectURL)
	}
	add("updated_at", domain.Now())

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE videos SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating video: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

// Delete removes the row
func (s *sqlVideoRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM videos WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting video: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// dbVideo represents a video row in DB
type dbVideo struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	Description  *string   `db:"description"`
	VideoURL     string    `db:"video_url"`
	ThumbnailURL *string   `db:"thumbnail_url"`
	RedirectURL  string    `db:"redirect_url"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (v *dbVideo) scanTargets() []any {
	return []any{
		&v.ID,
		&v.Title,
		&v.Description,
		&v.VideoURL,
		&v.ThumbnailURL,
		&v.RedirectURL,
		&v.CreatedAt,
		&v.UpdatedAt,
	}
}

// ToDomain converts to domain.Video
func (v *dbVideo) ToDomain() *domain.Video {
	return &domain.Video{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		RedirectURL:  v.RedirectURL,
		CreatedAt:    v.CreatedAt.UTC(),
		UpdatedAt:    v.UpdatedAt.UTC(),
	}
}

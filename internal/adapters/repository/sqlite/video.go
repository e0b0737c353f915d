package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"

	"github.com/mattn/go-sqlite3"
)

// SQLQuerier is satisfied by both *sql.DB and *sql.Tx
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqliteVideoRepository struct {
	db SQLQuerier
}

var _ port.VideoRepository = (*sqliteVideoRepository)(nil)

func NewVideoRepository(db SQLQuerier) port.VideoRepository {
	return &sqliteVideoRepository{db: db}
}

const videoColumns = `id, title, description, video_url, thumbnail_url, redirect_url, created_at, updated_at`

func (s *sqliteVideoRepository) Insert(ctx context.Context, video domain.Video) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO videos (`+videoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		video.ID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.RedirectURL,
		video.CreatedAt.UTC(),
		video.UpdatedAt.UTC(),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique) {
			return fmt.Errorf("video %s : %w", video.ID, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting video: %w", err)
	}
	return nil
}

func (s *sqliteVideoRepository) FindByID(ctx context.Context, id string) (*domain.Video, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = ?`, id)

	v, err := scanVideo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *sqliteVideoRepository) ListAll(ctx context.Context) ([]domain.Video, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+videoColumns+` FROM videos ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	return result, rows.Err()
}

func (s *sqliteVideoRepository) UpdatePartial(ctx context.Context, id string, update domain.VideoUpdate) error {
	if update.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalidArgument)
	}

	var sets []string
	var args []any
	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		if *update.Description == "" {
			args = append(args, nil)
		} else {
			args = append(args, *update.Description)
		}
	}
	if update.RedirectURL != nil {
		sets = append(sets, "redirect_url = ?")
		args = append(args, *update.RedirectURL)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, domain.Now(), id)

	result, err := s.db.ExecContext(ctx, `UPDATE videos SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("error updating video: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (s *sqliteVideoRepository) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting video: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVideo(row scanner) (*domain.Video, error) {
	var v domain.Video
	if err := row.Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&v.VideoURL,
		&v.ThumbnailURL,
		&v.RedirectURL,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return &v, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inkwell/internal/common"
	"inkwell/internal/domain/model"
)

// ChapterRepository enforces ownership transitively: the *Owned methods
// only match chapters whose book belongs to the given author.
type ChapterRepository interface {
	Create(ctx context.Context, chapter *model.Chapter) error
	ListByBook(ctx context.Context, bookID string) ([]model.Chapter, error)
	FindOwned(ctx context.Context, id, authorID string) (*model.Chapter, error)
	UpdateOwned(ctx context.Context, chapter *model.Chapter, authorID string) error
	DeleteOwned(ctx context.Context, id, authorID string) error
}

type pgChapterRepository struct {
	db *sql.DB
}

func NewPgChapterRepository(db *sql.DB) ChapterRepository {
	return &pgChapterRepository{db: db}
}

const chapterColumns = `id, book_id, chapter_order, cover, title, content, status, created_at, updated_at`

func (r *pgChapterRepository) Create(ctx context.Context, chapter *model.Chapter) error {
	query := `INSERT INTO chapters (id, book_id, chapter_order, cover, title, content, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		chapter.ID, chapter.BookID, chapter.Order, chapter.Cover, chapter.Title,
		chapter.Content, chapter.Status, chapter.CreatedAt, chapter.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("pgChapterRepository.Create: %w", err)
	}
	return nil
}

func (r *pgChapterRepository) ListByBook(ctx context.Context, bookID string) ([]model.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters
	          WHERE book_id = $1 ORDER BY chapter_order ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("pgChapterRepository.ListByBook: %w", err)
	}
	defer rows.Close()

	var chapters []model.Chapter
	for rows.Next() {
		var chapter model.Chapter
		if err := rows.Scan(
			&chapter.ID, &chapter.BookID, &chapter.Order, &chapter.Cover, &chapter.Title,
			&chapter.Content, &chapter.Status, &chapter.CreatedAt, &chapter.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgChapterRepository.ListByBook: %w", err)
		}
		chapters = append(chapters, chapter)
	}
	return chapters, rows.Err()
}

func (r *pgChapterRepository) FindOwned(ctx context.Context, id, authorID string) (*model.Chapter, error) {
	query := `SELECT c.id, c.book_id, c.chapter_order, c.cover, c.title, c.content, c.status, c.created_at, c.updated_at
	          FROM chapters c
	          JOIN books b ON b.id = c.book_id
	          WHERE c.id = $1 AND b.author = $2`
	chapter := &model.Chapter{}
	err := r.db.QueryRowContext(ctx, query, id, authorID).Scan(
		&chapter.ID, &chapter.BookID, &chapter.Order, &chapter.Cover, &chapter.Title,
		&chapter.Content, &chapter.Status, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgChapterRepository.FindOwned: %w", err)
	}
	return chapter, nil
}

func (r *pgChapterRepository) UpdateOwned(ctx context.Context, chapter *model.Chapter, authorID string) error {
	query := `UPDATE chapters c SET
	            chapter_order = $1, cover = $2, title = $3, content = $4, status = $5, updated_at = $6
	          WHERE c.id = $7
	            AND EXISTS (SELECT 1 FROM books b WHERE b.id = c.book_id AND b.author = $8)`
	result, err := r.db.ExecContext(ctx, query,
		chapter.Order, chapter.Cover, chapter.Title, chapter.Content, chapter.Status,
		chapter.UpdatedAt, chapter.ID, authorID,
	)
	if err != nil {
		return fmt.Errorf("pgChapterRepository.UpdateOwned: %w", err)
	}
	return requireRow(result)
}

func (r *pgChapterRepository) DeleteOwned(ctx context.Context, id, authorID string) error {
	query := `DELETE FROM chapters c
	          WHERE c.id = $1
	            AND EXISTS (SELECT 1 FROM books b WHERE b.id = c.book_id AND b.author = $2)`
	result, err := r.db.ExecContext(ctx, query, id, authorID)
	if err != nil {
		return fmt.Errorf("pgChapterRepository.DeleteOwned: %w", err)
	}
	return requireRow(result)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inkwell/internal/common"
	"inkwell/internal/domain/model"
)

// BookRepository scopes every mutation by both id and author so that a
// non-owner's update or delete misses like a nonexistent book.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id string) (*model.Book, error)
	FindByIDAndAuthor(ctx context.Context, id, authorID string) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	ListByAuthor(ctx context.Context, authorID string) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id, authorID string) error
}

type pgBookRepository struct {
	db *sql.DB
}

func NewPgBookRepository(db *sql.DB) BookRepository {
	return &pgBookRepository{db: db}
}

const bookColumns = `id, author, title, slug, cover, description, status, created_at, updated_at`

func (r *pgBookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `INSERT INTO books (id, author, title, slug, cover, description, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		book.ID, book.AuthorID, book.Title, book.Slug, book.Cover, book.Description,
		book.Status, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("pgBookRepository.Create: %w", err)
	}
	return nil
}

func (r *pgBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *pgBookRepository) FindByIDAndAuthor(ctx context.Context, id, authorID string) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 AND author = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, authorID))
}

func (r *pgBookRepository) scanOne(row *sql.Row) (*model.Book, error) {
	book := &model.Book{}
	err := row.Scan(
		&book.ID, &book.AuthorID, &book.Title, &book.Slug, &book.Cover, &book.Description,
		&book.Status, &book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgBookRepository.scanOne: %w", err)
	}
	return book, nil
}

func (r *pgBookRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`
	return r.scanMany(ctx, query)
}

func (r *pgBookRepository) ListByAuthor(ctx context.Context, authorID string) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE author = $1 ORDER BY created_at DESC`
	return r.scanMany(ctx, query, authorID)
}

func (r *pgBookRepository) scanMany(ctx context.Context, query string, args ...interface{}) ([]model.Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgBookRepository.scanMany: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(
			&book.ID, &book.AuthorID, &book.Title, &book.Slug, &book.Cover, &book.Description,
			&book.Status, &book.CreatedAt, &book.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgBookRepository.scanMany: %w", err)
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func (r *pgBookRepository) Update(ctx context.Context, book *model.Book) error {
	query := `UPDATE books SET
	            title = $1, slug = $2, cover = $3, description = $4, status = $5, updated_at = $6
	          WHERE id = $7 AND author = $8`
	result, err := r.db.ExecContext(ctx, query,
		book.Title, book.Slug, book.Cover, book.Description, book.Status, book.UpdatedAt,
		book.ID, book.AuthorID,
	)
	if err != nil {
		return fmt.Errorf("pgBookRepository.Update: %w", err)
	}
	return requireRow(result)
}

func (r *pgBookRepository) Delete(ctx context.Context, id, authorID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1 AND author = $2`, id, authorID)
	if err != nil {
		return fmt.Errorf("pgBookRepository.Delete: %w", err)
	}
	return requireRow(result)
}

// requireRow converts a zero-row mutation into ErrNotFound.
func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return common.ErrNotFound
	}
	return nil
}

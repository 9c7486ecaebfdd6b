package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell/internal/common"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// BookService implements ownership-checked book CRUD. Reads are public;
// mutations only match books authored by the acting user, so a non-owner's
// update or delete reports "Book not found." rather than revealing the book
// exists.
type BookService struct {
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
}

func NewBookService(bookRepo repository.BookRepository, userRepo repository.UserRepository) *BookService {
	return &BookService{bookRepo: bookRepo, userRepo: userRepo}
}

type CreateBookRequest struct {
	Title       string  `json:"title"`
	Cover       *string `json:"cover"`
	Description *string `json:"description"`
}

type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty"`
	Cover       *string `json:"cover,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (s *BookService) Create(ctx context.Context, authorID string, req CreateBookRequest) (*model.Book, error) {
	if req.Title == "" {
		return nil, common.NewError(common.ErrBadRequest, "Title is required.")
	}

	now := time.Now().UTC()
	book := &model.Book{
		ID:          uuid.NewString(),
		AuthorID:    authorID,
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Cover:       req.Cover,
		Description: req.Description,
		Status:      model.BookStatusOngoing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*model.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "Book not found.")
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}
	return book, nil
}

func (s *BookService) List(ctx context.Context) ([]model.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	if len(books) == 0 {
		return nil, common.NewError(common.ErrNotFound, "Book not found.")
	}
	return books, nil
}

func (s *BookService) ListByAuthor(ctx context.Context, authorID string) ([]model.Book, error) {
	books, err := s.bookRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	if len(books) == 0 {
		return nil, common.NewError(common.ErrNotFound, "No books found for this user.")
	}
	return books, nil
}

func (s *BookService) Update(ctx context.Context, authorID, id string, req UpdateBookRequest) (*model.Book, error) {
	book, err := s.bookRepo.FindByIDAndAuthor(ctx, id, authorID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "Book not found.")
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}

	if req.Title != nil {
		book.Title = *req.Title
		book.Slug = slug.Make(*req.Title)
	}
	if req.Cover != nil {
		book.Cover = req.Cover
	}
	if req.Description != nil {
		book.Description = req.Description
	}
	if req.Status != nil {
		book.Status = *req.Status
	}
	book.UpdatedAt = time.Now().UTC()

	if err := s.bookRepo.Update(ctx, book); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "Book not found.")
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return book, nil
}

// Delete removes a book owned by the acting user. Its chapters are left in
// place; there is no cascade.
func (s *BookService) Delete(ctx context.Context, authorID, id string) error {
	if _, err := s.userRepo.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrNotFound, "User not found.")
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.bookRepo.Delete(ctx, id, authorID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrNotFound, "Book not found.")
		}
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"inkwell/internal/common"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository"

	"github.com/google/uuid"
)

// ChapterService implements chapter CRUD. Creation only requires the
// referenced book to exist; update and delete require the acting user to be
// the author of the chapter's book.
type ChapterService struct {
	chapterRepo repository.ChapterRepository
	bookRepo    repository.BookRepository
}

func NewChapterService(chapterRepo repository.ChapterRepository, bookRepo repository.BookRepository) *ChapterService {
	return &ChapterService{chapterRepo: chapterRepo, bookRepo: bookRepo}
}

type CreateChapterRequest struct {
	Book    string  `json:"book"`
	Order   int     `json:"order"`
	Cover   *string `json:"cover"`
	Title   string  `json:"title"`
	Content *string `json:"content"`
	Status  string  `json:"status"`
}

type UpdateChapterRequest struct {
	Order   *int    `json:"order,omitempty"`
	Cover   *string `json:"cover,omitempty"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Status  *string `json:"status,omitempty"`
}

func (s *ChapterService) Create(ctx context.Context, req CreateChapterRequest) (*model.Chapter, error) {
	if req.Book == "" || req.Title == "" {
		return nil, common.NewError(common.ErrBadRequest, "Book and title are required.")
	}

	if _, err := s.bookRepo.FindByID(ctx, req.Book); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "Book not found.")
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}

	status := req.Status
	if status == "" {
		status = model.ChapterStatusDraft
	}

	now := time.Now().UTC()
	chapter := &model.Chapter{
		ID:        uuid.NewString(),
		BookID:    req.Book,
		Order:     req.Order,
		Cover:     req.Cover,
		Title:     req.Title,
		Content:   req.Content,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.chapterRepo.Create(ctx, chapter); err != nil {
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}
	return chapter, nil
}

// ListByBook returns the chapters of a book in reading order: a stable
// ascending sort on Order. Duplicate order values keep insertion order.
func (s *ChapterService) ListByBook(ctx context.Context, bookID string) ([]model.Chapter, error) {
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "Book not found.")
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}

	chapters, err := s.chapterRepo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].Order < chapters[j].Order
	})
	return chapters, nil
}

func (s *ChapterService) Update(ctx context.Context, authorID, id string, req UpdateChapterRequest) (*model.Chapter, error) {
	chapter, err := s.chapterRepo.FindOwned(ctx, id, authorID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "Chapter not found.")
		}
		return nil, fmt.Errorf("failed to find chapter: %w", err)
	}

	if req.Order != nil {
		chapter.Order = *req.Order
	}
	if req.Cover != nil {
		chapter.Cover = req.Cover
	}
	if req.Title != nil {
		chapter.Title = *req.Title
	}
	if req.Content != nil {
		chapter.Content = req.Content
	}
	if req.Status != nil {
		chapter.Status = *req.Status
	}
	chapter.UpdatedAt = time.Now().UTC()

	if err := s.chapterRepo.UpdateOwned(ctx, chapter, authorID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "Chapter not found.")
		}
		return nil, fmt.Errorf("failed to update chapter: %w", err)
	}
	return chapter, nil
}

func (s *ChapterService) Delete(ctx context.Context, authorID, id string) error {
	if err := s.chapterRepo.DeleteOwned(ctx, id, authorID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrNotFound, "Chapter not found.")
		}
		return fmt.Errorf("failed to delete chapter: %w", err)
	}
	return nil
}

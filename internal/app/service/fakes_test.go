package service

import (
	"context"
	"sync"

	"inkwell/internal/common"
	"inkwell/internal/domain/model"
)

// -------- in-memory repository fakes --------

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return common.ErrConflict
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return common.ErrNotFound
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) delete(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

func (f *fakeUserRepo) setStatus(id, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.Status = status
	}
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*model.Session{}}
}

func (f *fakeSessionRepo) Save(ctx context.Context, session *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *session
	f.sessions[session.Token] = &clone
	return nil
}

func (f *fakeSessionRepo) Find(ctx context.Context, token string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[token]; !ok {
		return common.ErrNotFound
	}
	delete(f.sessions, token)
	return nil
}

type fakeBookRepo struct {
	mu    sync.Mutex
	books map[string]*model.Book
	order []string
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[string]*model.Book{}}
}

func (f *fakeBookRepo) Create(ctx context.Context, book *model.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *book
	f.books[book.ID] = &clone
	f.order = append(f.order, book.ID)
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookRepo) FindByIDAndAuthor(ctx context.Context, id, authorID string) (*model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok || b.AuthorID != authorID {
		return nil, common.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var books []model.Book
	for _, id := range f.order {
		if b, ok := f.books[id]; ok {
			books = append(books, *b)
		}
	}
	return books, nil
}

func (f *fakeBookRepo) ListByAuthor(ctx context.Context, authorID string) ([]model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var books []model.Book
	for _, id := range f.order {
		if b, ok := f.books[id]; ok && b.AuthorID == authorID {
			books = append(books, *b)
		}
	}
	return books, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, book *model.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[book.ID]
	if !ok || b.AuthorID != book.AuthorID {
		return common.ErrNotFound
	}
	clone := *book
	f.books[book.ID] = &clone
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id, authorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok || b.AuthorID != authorID {
		return common.ErrNotFound
	}
	delete(f.books, id)
	return nil
}

// fakeChapterRepo resolves transitive ownership through its book repo, the
// same predicate the SQL join expresses.
type fakeChapterRepo struct {
	mu       sync.Mutex
	chapters map[string]*model.Chapter
	order    []string
	books    *fakeBookRepo
}

func newFakeChapterRepo(books *fakeBookRepo) *fakeChapterRepo {
	return &fakeChapterRepo{chapters: map[string]*model.Chapter{}, books: books}
}

func (f *fakeChapterRepo) Create(ctx context.Context, chapter *model.Chapter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *chapter
	f.chapters[chapter.ID] = &clone
	f.order = append(f.order, chapter.ID)
	return nil
}

func (f *fakeChapterRepo) ListByBook(ctx context.Context, bookID string) ([]model.Chapter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var chapters []model.Chapter
	for _, id := range f.order {
		if c, ok := f.chapters[id]; ok && c.BookID == bookID {
			chapters = append(chapters, *c)
		}
	}
	return chapters, nil
}

func (f *fakeChapterRepo) owned(ctx context.Context, id, authorID string) (*model.Chapter, bool) {
	c, ok := f.chapters[id]
	if !ok {
		return nil, false
	}
	book, err := f.books.FindByID(ctx, c.BookID)
	if err != nil || book.AuthorID != authorID {
		return nil, false
	}
	return c, true
}

func (f *fakeChapterRepo) FindOwned(ctx context.Context, id, authorID string) (*model.Chapter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.owned(ctx, id, authorID)
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeChapterRepo) UpdateOwned(ctx context.Context, chapter *model.Chapter, authorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.owned(ctx, chapter.ID, authorID); !ok {
		return common.ErrNotFound
	}
	clone := *chapter
	f.chapters[chapter.ID] = &clone
	return nil
}

func (f *fakeChapterRepo) DeleteOwned(ctx context.Context, id, authorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.owned(ctx, id, authorID); !ok {
		return common.ErrNotFound
	}
	delete(f.chapters, id)
	return nil
}

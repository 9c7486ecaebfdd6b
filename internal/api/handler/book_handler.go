package handler

import (
	"encoding/json"
	"net/http"

	"inkwell/internal/api/middleware"
	"inkwell/internal/app/service"
	"inkwell/internal/common"
	"inkwell/internal/domain/repository"

	"github.com/go-chi/chi/v5"
)

type BookHandler struct {
	bookService *service.BookService
	sessions    repository.SessionRepository
}

func NewBookHandler(bookService *service.BookService, sessions repository.SessionRepository) *BookHandler {
	return &BookHandler{bookService: bookService, sessions: sessions}
}

func (h *BookHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{bookID}", h.readOne)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator(h.sessions))
		protected.Post("/create", h.create)
		protected.Post("/author", h.listMine)
		protected.Put("/update/{bookID}", h.update)
		protected.Delete("/delete/{bookID}", h.delete)
	})
}

func (h *BookHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "User not logged in.")
		return
	}

	var req service.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	book, err := h.bookService.Create(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusCreated, "Book created!", book)
}

func (h *BookHandler) list(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, "Books retrieved successfully.", books)
}

func (h *BookHandler) readOne(w http.ResponseWriter, r *http.Request) {
	book, err := h.bookService.Get(r.Context(), chi.URLParam(r, "bookID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, "Book found.", book)
}

func (h *BookHandler) listMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "User not logged in.")
		return
	}

	books, err := h.bookService.ListByAuthor(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, "Books retrieved successfully.", books)
}

func (h *BookHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "User not logged in.")
		return
	}

	var req service.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	book, err := h.bookService.Update(r.Context(), userID, chi.URLParam(r, "bookID"), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, "Book updated successfully.", book)
}

func (h *BookHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "User not logged in.")
		return
	}

	if err := h.bookService.Delete(r.Context(), userID, chi.URLParam(r, "bookID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, "Book deleted successfully.", nil)
}

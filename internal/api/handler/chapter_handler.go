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

type ChapterHandler struct {
	chapterService *service.ChapterService
	sessions       repository.SessionRepository
}

func NewChapterHandler(chapterService *service.ChapterService, sessions repository.SessionRepository) *ChapterHandler {
	return &ChapterHandler{chapterService: chapterService, sessions: sessions}
}

func (h *ChapterHandler) RegisterRoutes(r chi.Router) {
	r.Get("/book={bookID}", h.listByBook)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator(h.sessions))
		protected.Post("/create", h.create)
		protected.Put("/update/{chapterID}", h.update)
		protected.Delete("/delete/{chapterID}", h.delete)
	})
}

func (h *ChapterHandler) create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "User not logged in.")
		return
	}

	var req service.CreateChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	chapter, err := h.chapterService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusCreated, "Chapter created!", chapter)
}

func (h *ChapterHandler) listByBook(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.chapterService.ListByBook(r.Context(), chi.URLParam(r, "bookID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, "Chapters retrieved successfully!", chapters)
}

func (h *ChapterHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "User not logged in.")
		return
	}

	var req service.UpdateChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	chapter, err := h.chapterService.Update(r.Context(), userID, chi.URLParam(r, "chapterID"), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, "Chapter updated successfully.", chapter)
}

func (h *ChapterHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "User not logged in.")
		return
	}

	if err := h.chapterService.Delete(r.Context(), userID, chi.URLParam(r, "chapterID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithData(w, http.StatusOK, "Chapter deleted successfully.", nil)
}

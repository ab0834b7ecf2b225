package handler

import (
	"encoding/json"
	"net/http"

	"helpdesk/internal/app/service"
	"helpdesk/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *service.CommentService
	logger         *zap.Logger
}

func NewCommentHandler(commentService *service.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{commentService: commentService, logger: logger}
}

// Like and dislike are GETs; the original client drove them from plain
// links and the surface is kept as-is.
func (h *CommentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/LikeCommentById/{id}", h.likeComment)
	r.Get("/DislikeCommentById/{id}", h.dislikeComment)
	r.Get("/GetCommentByTicketId/{id}", h.listCommentsByTicket)
	r.Get("/GetCommentByUserId/{id}", h.listCommentsByUser)
	r.Post("/AddComment", h.addComment)
	r.Delete("/DeleteComment/{id}", h.deleteComment)
}

func (h *CommentHandler) likeComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	comment, err := h.commentService.LikeComment(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) dislikeComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	comment, err := h.commentService.DislikeComment(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) listCommentsByTicket(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid ticket id")
		return
	}

	comments, err := h.commentService.ListCommentsByTicket(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) listCommentsByUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	comments, err := h.commentService.ListCommentsByUser(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) addComment(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), req)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), id); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Comment deleted successfully"})
}

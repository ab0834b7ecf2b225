package handler

import (
	"encoding/json"
	"net/http"

	"helpdesk/internal/app/service"
	"helpdesk/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BanHandler struct {
	banService *service.BanService
	logger     *zap.Logger
}

func NewBanHandler(banService *service.BanService, logger *zap.Logger) *BanHandler {
	return &BanHandler{banService: banService, logger: logger}
}

func (h *BanHandler) RegisterRoutes(r chi.Router) {
	r.Get("/GetAllBans", h.listBans)
	r.Get("/GetBan/{id}", h.getBan)
	r.Post("/AddBan", h.addBan)
	r.Delete("/DeleteBan/{id}", h.deleteBan)
}

func (h *BanHandler) listBans(w http.ResponseWriter, r *http.Request) {
	bans, err := h.banService.ListBans(r.Context())
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, bans)
}

func (h *BanHandler) getBan(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid ban id")
		return
	}

	ban, err := h.banService.GetBan(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, ban)
}

func (h *BanHandler) addBan(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	ban, err := h.banService.CreateBan(r.Context(), req)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, ban)
}

func (h *BanHandler) deleteBan(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid ban id")
		return
	}

	if err := h.banService.DeleteBan(r.Context(), id); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Ban deleted successfully"})
}

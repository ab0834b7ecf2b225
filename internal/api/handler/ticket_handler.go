package handler

import (
	"encoding/json"
	"net/http"

	"helpdesk/internal/app/service"
	"helpdesk/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	ticketService *service.TicketService
	logger        *zap.Logger
}

func NewTicketHandler(ticketService *service.TicketService, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{ticketService: ticketService, logger: logger}
}

func (h *TicketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/GetAllTickets", h.listTickets)
	r.Get("/GetTicketUserId/{id}", h.listTicketsByUser)
	r.Post("/AddTicket", h.addTicket)
}

func (h *TicketHandler) listTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.ticketService.ListTickets(r.Context())
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) listTicketsByUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	tickets, err := h.ticketService.ListTicketsByUser(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) addTicket(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	ticket, err := h.ticketService.CreateTicket(r.Context(), req)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, ticket)
}

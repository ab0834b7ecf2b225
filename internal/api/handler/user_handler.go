package handler

import (
	"encoding/json"
	"net/http"

	"helpdesk/internal/app/service"
	"helpdesk/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/GetAllUsers", h.listUsers)
	r.Get("/GetUser/{id}", h.getUser)
	r.Post("/AddUser", h.addUser)
	r.Post("/Login", h.login)
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) addUser(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.Signup(r.Context(), req)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.Login(r.Context(), req)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

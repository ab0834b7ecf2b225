package handler

import (
	"net/http"
	"strconv"

	"helpdesk/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// respondError maps a service error to its HTTP status. Client-caused
// failures carry their message; anything mapped to 500 is logged and
// replaced with a generic body.
func respondError(logger *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := common.HTTPStatusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		common.RespondWithError(w, status, "Internal Server Error")
		return
	}
	common.RespondWithError(w, status, err.Error())
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, common.ErrBadRequest
	}
	return id, nil
}

package logout

import (
	"net/http"
	"strconv"
	"userhub/internal/core/domain/account"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/services"
	logout "userhub/internal/core/services/log_out"
	"userhub/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
}

func New(service services.Service[logout.Input, logout.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Message string `json:"message"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	// The account ID is optional, the route is also mounted without it.
	accountID, _ := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)

	_, err := h.service.Run(
		r.Context(),
		logout.Input{AccountID: account.ID(accountID)},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{Message: "logout successful"}, http.StatusOK)
}

package profile

import (
	"errors"
	"net/http"
	"strconv"
	"userhub/internal/core/domain/account"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/services"
	getaccount "userhub/internal/core/services/get_account"
	"userhub/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[getaccount.Input, getaccount.Result]
}

func New(service services.Service[getaccount.Input, getaccount.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawAccountID := chi.URLParam(r, "accountID")
	accountID, err := strconv.ParseInt(rawAccountID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid account ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		getaccount.Input{AccountID: account.ID(accountID)},
	)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderError(rw, "account not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	user := response.Account{}
	user.FromDomainAccount(result.Account)
	response.Render(rw, user, http.StatusOK)
}

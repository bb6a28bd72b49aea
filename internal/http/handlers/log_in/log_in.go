package login

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"userhub/internal/core/domain/account"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/services"
	login "userhub/internal/core/services/log_in"
	"userhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[login.Input, login.Result]
}

func New(service services.Service[login.Input, login.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 256)),
	)
}

type Result struct {
	Message string           `json:"message"`
	User    response.Account `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		login.Input{Email: c.NewEmail(input.Email), Password: account.RawPassword(input.Password)},
	)
	if errors.Is(err, account.ErrInvalidCredentials) {
		// Unknown email and wrong password are deliberately indistinguishable.
		response.RenderError(rw, "invalid credentials", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	user := response.Account{}
	user.FromDomainAccount(result.Account)
	response.Render(rw, Result{Message: "login successful", User: user}, http.StatusOK)
}

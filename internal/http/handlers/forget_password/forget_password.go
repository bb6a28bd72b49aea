package forgetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"userhub/internal/core/domain/account"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/services"
	forgetpassword "userhub/internal/core/services/forget_password"
	"userhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[forgetpassword.Input, forgetpassword.Result]
}

func New(service services.Service[forgetpassword.Input, forgetpassword.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
}

// Result returns the raw token to the caller. There is no out-of-band
// delivery channel in this service.
type Result struct {
	Message string `json:"message"`
	Token   string `json:"token"`
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
		forgetpassword.Input{Email: c.NewEmail(input.Email)},
	)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderError(rw, "account not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Message: "reset token generated", Token: string(result.Token)},
		http.StatusOK,
	)
}

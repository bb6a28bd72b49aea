package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"userhub/internal/core/domain/account"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/services"
	resetpassword "userhub/internal/core/services/reset_password"
	"userhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(service services.Service[resetpassword.Input, resetpassword.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.NewPassword, validation.Required, validation.Length(6, 256)),
	)
}

type Result struct {
	Message string `json:"message"`
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

	_, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Token:       account.ResetToken(input.Token),
			NewPassword: account.RawPassword(input.NewPassword),
		},
	)
	if errors.Is(err, account.ErrInvalidResetToken) {
		response.RenderError(rw, "invalid token", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Message: "password reset successful"}, http.StatusOK)
}

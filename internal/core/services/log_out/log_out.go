package logout

import (
	"context"
	"userhub/internal/core/domain/account"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/services"
)

type Input struct {
	AccountID account.ID
}

type Result struct{}

// There is no server-side session state, so logging out acknowledges the
// call without mutating anything.
type service struct {
	log logging.Logger
}

func New(log logging.Logger) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &service{log: log}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	s.log.Info(ctx, "Account logged out.", logging.Entry("accountID", input.AccountID))
	return result, nil
}

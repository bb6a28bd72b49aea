package getaccount

import (
	"context"
	"errors"
	"userhub/internal/core/domain/account"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/services"
)

type Input struct {
	AccountID account.ID
}

type Result struct {
	Account account.Account
}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	return &service{log: log, accountRepository: accountRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByID(ctx, input.AccountID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account by ID.",
			logging.Entry("accountID", input.AccountID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Account: a}, nil
}

package login

import (
	"context"
	"errors"
	"userhub/internal/core/domain/account"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/services"
)

type Input struct {
	Email    c.Email
	Password account.RawPassword
}

type Result struct {
	Account account.Account
}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
	passwordHasher    account.PasswordHasher
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
	passwordHasher account.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		passwordHasher:    passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		// Minimize risk for timing attacks
		s.passwordHasher.HashPassword(input.Password)
		return result, account.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !s.passwordHasher.ValidatePassword(input.Password, a.PasswordHash) {
		return result, account.ErrInvalidCredentials
	}

	// No session is created, the caller gets the sanitized account only.
	s.log.Info(ctx, "Account successfully authenticated.", logging.Entry("accountID", a.ID))
	return Result{Account: a}, nil
}

package forgetpassword

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
	Email c.Email
}

// Result carries the raw reset token back to the caller. Returning the token
// in the HTTP response instead of delivering it out-of-band is an explicit,
// documented property of this service, not an oversight.
type Result struct {
	Token account.ResetToken
}

type service struct {
	log                 logging.Logger
	accountRepository   account.Repository
	resetTokenGenerator account.ResetTokenGenerator
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
	resetTokenGenerator account.ResetTokenGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if resetTokenGenerator == nil {
		panic(e.NewNilArgumentError("resetTokenGenerator"))
	}
	return &service{
		log:                 log,
		accountRepository:   accountRepository,
		resetTokenGenerator: resetTokenGenerator,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(
			ctx,
			"Account not found for password reset.",
			logging.Entry("email", input.Email),
		)
		return result, err
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

	// A repeated call overwrites the pending token, the old one stops working.
	token := s.resetTokenGenerator.GenerateResetToken()
	err = s.accountRepository.SetResetToken(ctx, a.ID, token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not set reset token for account.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Password reset token has been issued.", logging.Entry("accountID", a.ID))
	return Result{Token: token}, nil
}

package resetpassword

import (
	"context"
	"errors"
	"userhub/internal/core/domain/account"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/services"
)

type Input struct {
	Token       account.ResetToken
	NewPassword account.RawPassword
}

type Result struct{}

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
	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	// Redemption and clearing happen in one conditional update, so a token
	// can be consumed at most once.
	a, err := s.accountRepository.ResetPasswordByToken(ctx, input.Token, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrInvalidResetToken) {
		s.log.Info(ctx, "Invalid password reset token presented.")
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not reset account password.",
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("accountID", a.ID),
	)
	return result, nil
}

package services

import (
	"userhub/internal/app/deps"
	"userhub/internal/core/services"
	forgetpassword "userhub/internal/core/services/forget_password"
	getaccount "userhub/internal/core/services/get_account"
	login "userhub/internal/core/services/log_in"
	logout "userhub/internal/core/services/log_out"
	register "userhub/internal/core/services/register"
	resetpassword "userhub/internal/core/services/reset_password"
)

type Services struct {
	Register       services.Service[register.Input, register.Result]
	LogIn          services.Service[login.Input, login.Result]
	ForgetPassword services.Service[forgetpassword.Input, forgetpassword.Result]
	ResetPassword  services.Service[resetpassword.Input, resetpassword.Result]
	GetAccount     services.Service[getaccount.Input, getaccount.Result]
	LogOut         services.Service[logout.Input, logout.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.Register = register.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogIn = login.New(
		deps.Logger,
		deps.AccountRepository,
		deps.PasswordHasher,
	)
	s.ForgetPassword = forgetpassword.New(
		deps.Logger,
		deps.AccountRepository,
		deps.ResetTokenGenerator,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.AccountRepository,
		deps.PasswordHasher,
	)
	s.GetAccount = getaccount.New(
		deps.Logger,
		deps.AccountRepository,
	)
	s.LogOut = logout.New(
		deps.Logger,
	)

	return s
}

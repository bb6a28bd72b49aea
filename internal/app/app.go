package app

import (
	"fmt"
	"net/http"
	"userhub/internal/app/deps"
	"userhub/internal/app/services"
	forgetpassword "userhub/internal/http/handlers/forget_password"
	login "userhub/internal/http/handlers/log_in"
	logout "userhub/internal/http/handlers/log_out"
	"userhub/internal/http/handlers/profile"
	register "userhub/internal/http/handlers/register"
	resetpassword "userhub/internal/http/handlers/reset_password"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	router.Method(http.MethodPost, "/register", register.New(s.Register))
	router.Method(http.MethodPost, "/login", login.New(s.LogIn))
	router.Method(http.MethodPost, "/forget-password", forgetpassword.New(s.ForgetPassword))
	router.Method(http.MethodPut, "/reset-password", resetpassword.New(s.ResetPassword))
	router.Method(http.MethodGet, "/profile/{accountID:[0-9]+}", profile.New(s.GetAccount))
	router.Method(http.MethodDelete, "/logout/{accountID:[0-9]+}", logout.New(s.LogOut))
	router.Method(http.MethodDelete, "/logout", logout.New(s.LogOut))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}

package repositories

import (
	"context"

	"github.com/stis-apps/titiktemu/internal/client/api"
	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/session"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// AuthRepository handles login, registration and logout.
type AuthRepository interface {
	Login(ctx context.Context, username, password string) (resource.Resource[models.AuthResponse], error)
	Register(ctx context.Context, req models.RegisterRequest) (resource.Resource[models.AuthResponse], error)
	Logout(ctx context.Context) error
}

type authRepository struct {
	api   api.Service
	store session.Store
	log   logging.Logger
}

func NewAuthRepository(apiSvc api.Service, store session.Store, log logging.Logger) AuthRepository {
	return &authRepository{api: apiSvc, store: store, log: log}
}

var loginMessages = statusMessages{
	400: "Username and password must not be empty",
	401: "Incorrect username or password",
	404: "User not found",
	500: "Server error, please try again later",
}

var registerMessages = statusMessages{
	400: "Invalid registration data",
	409: "Username or email already taken",
	500: "Server error, please try again later",
}

// Login authenticates and, on success, persists the token and the user
// snapshot before reporting success so a process restart stays signed in.
func (r *authRepository) Login(ctx context.Context, username, password string) (resource.Resource[models.AuthResponse], error) {
	resp, err := r.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		r.log.Warn(ctx, "login failed", "username", username, "error", err)
		return failure[models.AuthResponse](err, loginMessages, "Login failed")
	}

	if err := r.store.SaveToken(ctx, resp.Token); err != nil {
		r.log.Error(ctx, "failed to persist token", "error", err)
		return resource.Error[models.AuthResponse]("Failed to save session"), nil
	}
	if err := r.store.SaveUserData(ctx, session.UserData{
		Username: session.String(resp.Username),
		Email:    session.String(resp.Email),
		FullName: session.String(resp.FullName),
	}); err != nil {
		r.log.Error(ctx, "failed to cache user snapshot", "error", err)
	}

	r.log.Info(ctx, "login succeeded", "username", resp.Username)
	return resource.Success(*resp), nil
}

// Register creates an account and persists the returned session just
// like Login does.
func (r *authRepository) Register(ctx context.Context, req models.RegisterRequest) (resource.Resource[models.AuthResponse], error) {
	resp, err := r.api.Register(ctx, req)
	if err != nil {
		r.log.Warn(ctx, "registration failed", "username", req.Username, "error", err)
		return failure[models.AuthResponse](err, registerMessages, "Registration failed")
	}

	if err := r.store.SaveToken(ctx, resp.Token); err != nil {
		r.log.Error(ctx, "failed to persist token", "error", err)
		return resource.Error[models.AuthResponse]("Failed to save session"), nil
	}
	if err := r.store.SaveUserData(ctx, session.UserData{
		Username:   session.String(resp.Username),
		Email:      session.String(resp.Email),
		FullName:   session.String(resp.FullName),
		Role:       session.String(req.Role),
		ExternalID: session.String(req.ExternalID),
		Phone:      session.String(req.Phone),
	}); err != nil {
		r.log.Error(ctx, "failed to cache user snapshot", "error", err)
	}

	r.log.Info(ctx, "registration succeeded", "username", resp.Username)
	return resource.Success(*resp), nil
}

// Logout destroys the local session. The backend holds no server-side
// session state, so no request is involved.
func (r *authRepository) Logout(ctx context.Context) error {
	return r.store.ClearAll(ctx)
}

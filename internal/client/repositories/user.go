package repositories

import (
	"context"

	"github.com/stis-apps/titiktemu/internal/client/api"
	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/session"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// UserRepository handles profile reads and mutations.
type UserRepository interface {
	GetProfile(ctx context.Context) (resource.Resource[models.User], error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (resource.Resource[models.User], error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (resource.Resource[models.MessageResponse], error)
	DeleteAccount(ctx context.Context) (resource.Resource[models.MessageResponse], error)
}

type userRepository struct {
	api   api.Service
	store session.Store
	log   logging.Logger
}

func NewUserRepository(apiSvc api.Service, store session.Store, log logging.Logger) UserRepository {
	return &userRepository{api: apiSvc, store: store, log: log}
}

var profileMessages = statusMessages{
	404: "Profile not found",
	500: "Server error, please try again later",
}

var changePasswordMessages = statusMessages{
	400: "Invalid password data",
	401: "Old password is incorrect",
	404: "User not found",
	500: "Server error, please try again later",
}

var deleteAccountMessages = statusMessages{
	400: "Invalid request",
	404: "Account not found",
	500: "Server error, please try again later",
}

func (r *userRepository) GetProfile(ctx context.Context) (resource.Resource[models.User], error) {
	user, err := r.api.GetProfile(ctx)
	if err != nil {
		return failure[models.User](err, profileMessages, "Failed to fetch profile")
	}
	return resource.Success(*user), nil
}

// UpdateProfile pushes the new profile and refreshes the cached snapshot
// with whatever the server echoed back. The token is untouched.
func (r *userRepository) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (resource.Resource[models.User], error) {
	user, err := r.api.UpdateProfile(ctx, req)
	if err != nil {
		return failure[models.User](err, profileMessages, "Failed to update profile")
	}

	if err := r.store.SaveUserData(ctx, session.UserData{
		Email:      session.String(user.Email),
		FullName:   session.String(user.FullName),
		Role:       session.String(user.Role),
		ExternalID: session.String(user.ExternalID),
		Phone:      session.String(user.Phone),
	}); err != nil {
		r.log.Error(ctx, "failed to refresh cached snapshot", "error", err)
	}

	return resource.Success(*user), nil
}

func (r *userRepository) ChangePassword(ctx context.Context, oldPassword, newPassword string) (resource.Resource[models.MessageResponse], error) {
	resp, err := r.api.ChangePassword(ctx, models.ChangePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		return failure[models.MessageResponse](err, changePasswordMessages, "Failed to change password")
	}
	return resource.Success(*resp), nil
}

// DeleteAccount removes the account server-side and then destroys the
// local session: the token is useless once the account is gone.
func (r *userRepository) DeleteAccount(ctx context.Context) (resource.Resource[models.MessageResponse], error) {
	resp, err := r.api.DeleteAccount(ctx)
	if err != nil {
		return failure[models.MessageResponse](err, deleteAccountMessages, "Failed to delete account")
	}

	if err := r.store.ClearAll(ctx); err != nil {
		r.log.Error(ctx, "failed to clear session after account deletion", "error", err)
	}

	r.log.Info(ctx, "account deleted")
	return resource.Success(*resp), nil
}

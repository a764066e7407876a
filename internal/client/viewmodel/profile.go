package viewmodel

import (
	"context"

	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/repositories"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// ProfileViewModel drives the profile screen and its account actions.
type ProfileViewModel struct {
	*Core
	users repositories.UserRepository
	auth  repositories.AuthRepository

	profileState  *Observable[resource.Resource[models.User]]
	updateState   *Observable[resource.Resource[models.User]]
	passwordState *Observable[resource.Resource[models.MessageResponse]]
	deleteState   *Observable[resource.Resource[models.MessageResponse]]
}

func NewProfileViewModel(users repositories.UserRepository, auth repositories.AuthRepository, log logging.Logger) *ProfileViewModel {
	return &ProfileViewModel{
		Core:          newCore(log),
		users:         users,
		auth:          auth,
		profileState:  NewObservable(resource.Idle[models.User]()),
		updateState:   NewObservable(resource.Idle[models.User]()),
		passwordState: NewObservable(resource.Idle[models.MessageResponse]()),
		deleteState:   NewObservable(resource.Idle[models.MessageResponse]()),
	}
}

func (vm *ProfileViewModel) ProfileState() *Observable[resource.Resource[models.User]] {
	return vm.profileState
}

func (vm *ProfileViewModel) UpdateState() *Observable[resource.Resource[models.User]] {
	return vm.updateState
}

func (vm *ProfileViewModel) PasswordState() *Observable[resource.Resource[models.MessageResponse]] {
	return vm.passwordState
}

func (vm *ProfileViewModel) DeleteState() *Observable[resource.Resource[models.MessageResponse]] {
	return vm.deleteState
}

func (vm *ProfileViewModel) Load() {
	run(vm.Core, "profile", vm.profileState, func(ctx context.Context) (resource.Resource[models.User], error) {
		return vm.users.GetProfile(ctx)
	})
}

func (vm *ProfileViewModel) Update(req models.UpdateProfileRequest) {
	run(vm.Core, "update", vm.updateState, func(ctx context.Context) (resource.Resource[models.User], error) {
		res, err := vm.users.UpdateProfile(ctx, req)
		if err == nil && res.IsSuccess() {
			vm.toast("Profile updated")
		}
		return res, err
	})
}

func (vm *ProfileViewModel) ChangePassword(oldPassword, newPassword string) {
	run(vm.Core, "password", vm.passwordState, func(ctx context.Context) (resource.Resource[models.MessageResponse], error) {
		res, err := vm.users.ChangePassword(ctx, oldPassword, newPassword)
		if err == nil && res.IsSuccess() {
			vm.toast("Password changed")
		}
		return res, err
	})
}

// DeleteAccount removes the account and, on success, pushes the UI back
// to login via the logout event. The repository already cleared the
// session at that point.
func (vm *ProfileViewModel) DeleteAccount() {
	run(vm.Core, "delete", vm.deleteState, func(ctx context.Context) (resource.Resource[models.MessageResponse], error) {
		res, err := vm.users.DeleteAccount(ctx)
		if err == nil && res.IsSuccess() {
			vm.toast("Account deleted")
			vm.notifyLogout()
		}
		return res, err
	})
}

// Logout destroys the local session and emits the logout event.
func (vm *ProfileViewModel) Logout(ctx context.Context) error {
	if err := vm.auth.Logout(ctx); err != nil {
		return err
	}
	vm.notifyLogout()
	return nil
}

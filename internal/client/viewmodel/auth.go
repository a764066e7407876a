package viewmodel

import (
	"context"

	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/repositories"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// AuthViewModel drives the login and registration screens.
type AuthViewModel struct {
	*Core
	auth repositories.AuthRepository

	loginState    *Observable[resource.Resource[models.AuthResponse]]
	registerState *Observable[resource.Resource[models.AuthResponse]]
}

func NewAuthViewModel(auth repositories.AuthRepository, log logging.Logger) *AuthViewModel {
	return &AuthViewModel{
		Core:          newCore(log),
		auth:          auth,
		loginState:    NewObservable(resource.Idle[models.AuthResponse]()),
		registerState: NewObservable(resource.Idle[models.AuthResponse]()),
	}
}

func (vm *AuthViewModel) LoginState() *Observable[resource.Resource[models.AuthResponse]] {
	return vm.loginState
}

func (vm *AuthViewModel) RegisterState() *Observable[resource.Resource[models.AuthResponse]] {
	return vm.registerState
}

func (vm *AuthViewModel) Login(username, password string) {
	run(vm.Core, "login", vm.loginState, func(ctx context.Context) (resource.Resource[models.AuthResponse], error) {
		return vm.auth.Login(ctx, username, password)
	})
}

func (vm *AuthViewModel) Register(req models.RegisterRequest) {
	run(vm.Core, "register", vm.registerState, func(ctx context.Context) (resource.Resource[models.AuthResponse], error) {
		return vm.auth.Register(ctx, req)
	})
}

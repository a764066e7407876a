package viewmodel

import (
	"github.com/stis-apps/titiktemu/internal/client/repositories"
	"github.com/stis-apps/titiktemu/internal/client/session"
	"github.com/stis-apps/titiktemu/internal/logging"
)

// Factory builds screen view-models over a shared set of repositories.
// Screens are short-lived; the factory gives each one a fresh view-model
// with its own lifecycle.
type Factory struct {
	auth       repositories.AuthRepository
	users      repositories.UserRepository
	reports    repositories.ReportRepository
	store      session.Store
	stagingDir string
	log        logging.Logger
}

func NewFactory(
	auth repositories.AuthRepository,
	users repositories.UserRepository,
	reports repositories.ReportRepository,
	store session.Store,
	stagingDir string,
	log logging.Logger,
) *Factory {
	return &Factory{
		auth:       auth,
		users:      users,
		reports:    reports,
		store:      store,
		stagingDir: stagingDir,
		log:        log,
	}
}

func (f *Factory) Splash() *SplashViewModel {
	return NewSplashViewModel(f.store, f.log)
}

func (f *Factory) Auth() *AuthViewModel {
	return NewAuthViewModel(f.auth, f.log)
}

func (f *Factory) Home() *HomeViewModel {
	return NewHomeViewModel(f.reports, f.log)
}

func (f *Factory) Detail() *DetailViewModel {
	return NewDetailViewModel(f.reports, f.log)
}

func (f *Factory) Create() *CreateViewModel {
	return NewCreateViewModel(f.reports, f.stagingDir, f.log)
}

func (f *Factory) Edit() *EditViewModel {
	return NewEditViewModel(f.reports, f.stagingDir, f.log)
}

func (f *Factory) Profile() *ProfileViewModel {
	return NewProfileViewModel(f.users, f.auth, f.log)
}

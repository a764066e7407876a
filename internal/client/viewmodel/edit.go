package viewmodel

import (
	"context"
	"os"

	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/repositories"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// EditViewModel drives the edit screen: it loads the current report and
// submits partial updates, including the resolve shortcut.
type EditViewModel struct {
	*Core
	reports    repositories.ReportRepository
	stagingDir string

	loadState   *Observable[resource.Resource[models.Report]]
	updateState *Observable[resource.Resource[models.Report]]
}

func NewEditViewModel(reports repositories.ReportRepository, stagingDir string, log logging.Logger) *EditViewModel {
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	return &EditViewModel{
		Core:        newCore(log),
		reports:     reports,
		stagingDir:  stagingDir,
		loadState:   NewObservable(resource.Idle[models.Report]()),
		updateState: NewObservable(resource.Idle[models.Report]()),
	}
}

func (vm *EditViewModel) LoadState() *Observable[resource.Resource[models.Report]] {
	return vm.loadState
}

func (vm *EditViewModel) UpdateState() *Observable[resource.Resource[models.Report]] {
	return vm.updateState
}

func (vm *EditViewModel) Load(id int64) {
	run(vm.Core, "load", vm.loadState, func(ctx context.Context) (resource.Resource[models.Report], error) {
		return vm.reports.Get(ctx, id)
	})
}

// Update submits a partial update. Unset fields stay as they are on the
// server. photoPath, when set, replaces the report photo.
func (vm *EditViewModel) Update(id int64, req models.UpdateReportRequest, photoPath string) {
	run(vm.Core, "update", vm.updateState, func(ctx context.Context) (resource.Resource[models.Report], error) {
		photo, res := stagePhoto[models.Report](vm.stagingDir, photoPath)
		if res != nil {
			return *res, nil
		}
		return vm.reports.Update(ctx, id, req, photo)
	})
}

// Resolve marks the report as resolved, leaving everything else alone.
func (vm *EditViewModel) Resolve(id int64) {
	run(vm.Core, "update", vm.updateState, func(ctx context.Context) (resource.Resource[models.Report], error) {
		res, err := vm.reports.Update(ctx, id, models.UpdateReportRequest{Status: models.StatusResolved}, nil)
		if err == nil && res.IsSuccess() {
			vm.toast("Report marked as resolved")
		}
		return res, err
	})
}

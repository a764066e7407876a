package viewmodel

import (
	"context"

	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/repositories"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// DetailViewModel drives a single report's detail screen.
type DetailViewModel struct {
	*Core
	reports repositories.ReportRepository

	reportState *Observable[resource.Resource[models.Report]]
	deleteState *Observable[resource.Resource[models.MessageResponse]]
}

func NewDetailViewModel(reports repositories.ReportRepository, log logging.Logger) *DetailViewModel {
	return &DetailViewModel{
		Core:        newCore(log),
		reports:     reports,
		reportState: NewObservable(resource.Idle[models.Report]()),
		deleteState: NewObservable(resource.Idle[models.MessageResponse]()),
	}
}

func (vm *DetailViewModel) ReportState() *Observable[resource.Resource[models.Report]] {
	return vm.reportState
}

func (vm *DetailViewModel) DeleteState() *Observable[resource.Resource[models.MessageResponse]] {
	return vm.deleteState
}

func (vm *DetailViewModel) Load(id int64) {
	run(vm.Core, "get", vm.reportState, func(ctx context.Context) (resource.Resource[models.Report], error) {
		return vm.reports.Get(ctx, id)
	})
}

func (vm *DetailViewModel) Delete(id int64) {
	run(vm.Core, "delete", vm.deleteState, func(ctx context.Context) (resource.Resource[models.MessageResponse], error) {
		res, err := vm.reports.Delete(ctx, id)
		if err == nil && res.IsSuccess() {
			vm.toast("Report deleted")
		}
		return res, err
	})
}

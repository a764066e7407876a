package viewmodel

import (
	"context"
	"os"

	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/repositories"
	"github.com/stis-apps/titiktemu/internal/client/upload"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// CreateViewModel drives the new-report screen. A photo is given as a
// local file path; the view-model stages a private copy so the original
// file can change or disappear while the request is in flight.
type CreateViewModel struct {
	*Core
	reports    repositories.ReportRepository
	stagingDir string

	createState *Observable[resource.Resource[models.Report]]
}

func NewCreateViewModel(reports repositories.ReportRepository, stagingDir string, log logging.Logger) *CreateViewModel {
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	return &CreateViewModel{
		Core:        newCore(log),
		reports:     reports,
		stagingDir:  stagingDir,
		createState: NewObservable(resource.Idle[models.Report]()),
	}
}

func (vm *CreateViewModel) CreateState() *Observable[resource.Resource[models.Report]] {
	return vm.createState
}

// Create submits the report, staging photoPath first when it is set.
func (vm *CreateViewModel) Create(req models.CreateReportRequest, photoPath string) {
	run(vm.Core, "create", vm.createState, func(ctx context.Context) (resource.Resource[models.Report], error) {
		photo, res := stagePhoto[models.Report](vm.stagingDir, photoPath)
		if res != nil {
			return *res, nil
		}
		return vm.reports.Create(ctx, req, photo)
	})
}

// stagePhoto copies path into dir for upload. An empty path yields a nil
// photo. A staging failure yields a terminal error resource instead.
func stagePhoto[T any](dir, path string) (*upload.Staged, *resource.Resource[T]) {
	if path == "" {
		return nil, nil
	}
	photo, err := upload.StageFile(dir, path)
	if err != nil {
		res := resource.Error[T]("Cannot read the photo file. Check the path and try again.")
		return nil, &res
	}
	return photo, nil
}

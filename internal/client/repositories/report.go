package repositories

import (
	"context"

	"github.com/stis-apps/titiktemu/internal/client/api"
	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/upload"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// ReportRepository handles the report list and its mutations.
//
// Create is the only method that is not side-effect-idempotent on retry:
// a blind retry can duplicate the report server-side, so callers must
// not auto-retry it.
type ReportRepository interface {
	List(ctx context.Context, filter models.ReportFilter) (resource.Resource[[]models.Report], error)
	Get(ctx context.Context, id int64) (resource.Resource[models.Report], error)
	Create(ctx context.Context, req models.CreateReportRequest, photo *upload.Staged) (resource.Resource[models.Report], error)
	Update(ctx context.Context, id int64, req models.UpdateReportRequest, photo *upload.Staged) (resource.Resource[models.Report], error)
	Delete(ctx context.Context, id int64) (resource.Resource[models.MessageResponse], error)
}

type reportRepository struct {
	api api.Service
	log logging.Logger
}

func NewReportRepository(apiSvc api.Service, log logging.Logger) ReportRepository {
	return &reportRepository{api: apiSvc, log: log}
}

var reportMessages = statusMessages{
	400: "Invalid report data",
	404: "Report not found",
	500: "Server error, please try again later",
}

func (r *reportRepository) List(ctx context.Context, filter models.ReportFilter) (resource.Resource[[]models.Report], error) {
	reports, err := r.api.ListReports(ctx, filter)
	if err != nil {
		return failure[[]models.Report](err, reportMessages, "Failed to fetch reports")
	}
	return resource.Success(reports), nil
}

func (r *reportRepository) Get(ctx context.Context, id int64) (resource.Resource[models.Report], error) {
	report, err := r.api.GetReport(ctx, id)
	if err != nil {
		return failure[models.Report](err, reportMessages, "Failed to fetch report")
	}
	return resource.Success(*report), nil
}

// Create submits a new report. With a photo present the payload goes out
// as multipart, otherwise as plain JSON. The staged copy is removed once
// the request finishes, whatever the outcome.
func (r *reportRepository) Create(ctx context.Context, req models.CreateReportRequest, photo *upload.Staged) (resource.Resource[models.Report], error) {
	var (
		report *models.Report
		err    error
	)
	if photo != nil {
		defer r.discard(ctx, photo)
		report, err = r.api.CreateReportWithPhoto(ctx, req, photo)
	} else {
		report, err = r.api.CreateReport(ctx, req)
	}
	if err != nil {
		return failure[models.Report](err, reportMessages, "Failed to create report")
	}
	r.log.Info(ctx, "report created", "id", report.ID, "kind", report.Kind)
	return resource.Success(*report), nil
}

// Update sends a partial update; the backend leaves omitted fields
// unchanged. Encoding selection and staged-copy cleanup mirror Create.
func (r *reportRepository) Update(ctx context.Context, id int64, req models.UpdateReportRequest, photo *upload.Staged) (resource.Resource[models.Report], error) {
	var (
		report *models.Report
		err    error
	)
	if photo != nil {
		defer r.discard(ctx, photo)
		report, err = r.api.UpdateReportWithPhoto(ctx, id, req, photo)
	} else {
		report, err = r.api.UpdateReport(ctx, id, req)
	}
	if err != nil {
		return failure[models.Report](err, reportMessages, "Failed to update report")
	}
	return resource.Success(*report), nil
}

func (r *reportRepository) Delete(ctx context.Context, id int64) (resource.Resource[models.MessageResponse], error) {
	resp, err := r.api.DeleteReport(ctx, id)
	if err != nil {
		return failure[models.MessageResponse](err, reportMessages, "Failed to delete report")
	}
	r.log.Info(ctx, "report deleted", "id", id)
	return resource.Success(*resp), nil
}

func (r *reportRepository) discard(ctx context.Context, photo *upload.Staged) {
	if err := photo.Remove(); err != nil {
		r.log.Warn(ctx, "failed to remove staged photo", "path", photo.Path(), "error", err)
	}
}

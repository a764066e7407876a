package api

import (
	"context"

	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/upload"
)

// Service is the full endpoint surface of the backend, implemented by
// *Client. Repositories depend on this interface so tests can substitute
// a fake.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.MessageResponse, error)
	DeleteAccount(ctx context.Context) (*models.MessageResponse, error)

	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	GetReport(ctx context.Context, id int64) (*models.Report, error)
	CreateReport(ctx context.Context, req models.CreateReportRequest) (*models.Report, error)
	CreateReportWithPhoto(ctx context.Context, req models.CreateReportRequest, photo *upload.Staged) (*models.Report, error)
	UpdateReport(ctx context.Context, id int64, req models.UpdateReportRequest) (*models.Report, error)
	UpdateReportWithPhoto(ctx context.Context, id int64, req models.UpdateReportRequest, photo *upload.Staged) (*models.Report, error)
	DeleteReport(ctx context.Context, id int64) (*models.MessageResponse, error)
}

var _ Service = (*Client)(nil)

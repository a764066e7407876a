package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/upload"
)

// ListReports fetches reports matching the filter. Zero-valued filter
// fields are left out of the query string.
func (c *Client) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	query := url.Values{}
	if filter.Kind != "" {
		query.Set("kind", string(filter.Kind))
	}
	if filter.Category != "" {
		query.Set("category", string(filter.Category))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Location != "" {
		query.Set("location", filter.Location)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var reports []models.Report
	if err := c.doJSON(ctx, http.MethodGet, "/reports", query, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport fetches a single report by id.
func (c *Client) GetReport(ctx context.Context, id int64) (*models.Report, error) {
	var report models.Report
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/reports/%d", id), nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// CreateReport submits a new report without a photo, JSON-encoded.
func (c *Client) CreateReport(ctx context.Context, req models.CreateReportRequest) (*models.Report, error) {
	var report models.Report
	if err := c.doJSON(ctx, http.MethodPost, "/reports", nil, req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// CreateReportWithPhoto submits a new report plus its photo as one
// multipart request.
func (c *Client) CreateReportWithPhoto(ctx context.Context, req models.CreateReportRequest, photo *upload.Staged) (*models.Report, error) {
	fields := map[string]string{
		"kind":         string(req.Kind),
		"title":        req.Title,
		"description":  req.Description,
		"category":     string(req.Category),
		"location":     req.Location,
		"incidentDate": req.IncidentDate,
	}

	var report models.Report
	if err := c.doMultipart(ctx, http.MethodPost, "/reports", fields, photo, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReport sends a partial report update, JSON-encoded. Unset fields
// are omitted and left unchanged by the backend.
func (c *Client) UpdateReport(ctx context.Context, id int64, req models.UpdateReportRequest) (*models.Report, error) {
	var report models.Report
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/reports/%d", id), nil, req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReportWithPhoto sends a partial report update plus a replacement
// photo as one multipart request.
func (c *Client) UpdateReportWithPhoto(ctx context.Context, id int64, req models.UpdateReportRequest, photo *upload.Staged) (*models.Report, error) {
	fields := map[string]string{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Category != "" {
		fields["category"] = string(req.Category)
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.IncidentDate != "" {
		fields["incidentDate"] = req.IncidentDate
	}
	if req.Status != "" {
		fields["status"] = string(req.Status)
	}

	var report models.Report
	if err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/reports/%d", id), fields, photo, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// DeleteReport removes a report by id.
func (c *Client) DeleteReport(ctx context.Context, id int64) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/reports/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

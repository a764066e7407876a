package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/upload"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}

func TestLogin_DecodesAuthResponse(t *testing.T) {
	var gotBody models.LoginRequest
	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
		require.Equal(t, "application/json", req.Header.Get("Content-Type"))
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "abc123", Type: "Bearer", Username: "alice",
			Email: "a@x.com", FullName: "Alice A", Message: "ok",
		})
	}).Methods(http.MethodPost)

	c := newTestClient(t, r, &fakeSessionStore{})

	resp, err := c.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "abc123", resp.Token)
	require.Equal(t, "alice", resp.Username)
	require.Equal(t, models.LoginRequest{Username: "alice", Password: "secret1"}, gotBody)
}

func TestListReports_EncodesFilterQuery(t *testing.T) {
	var gotQuery map[string][]string
	r := mux.NewRouter()
	r.HandleFunc("/api/reports", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query()
		_ = json.NewEncoder(w).Encode([]models.Report{{ID: 1, Kind: models.KindLost}})
	}).Methods(http.MethodGet)

	c := newTestClient(t, r, &fakeSessionStore{token: "tok"})

	reports, err := c.ListReports(context.Background(), models.ReportFilter{
		Kind:     models.KindLost,
		Category: models.CategoryElectronics,
		Search:   "wallet",
	})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, []string{"LOST"}, gotQuery["kind"])
	require.Equal(t, []string{"ELECTRONICS"}, gotQuery["category"])
	require.Equal(t, []string{"wallet"}, gotQuery["search"])
	require.NotContains(t, gotQuery, "status")
	require.NotContains(t, gotQuery, "location")
}

func TestCreateReport_SendsJSONWhenNoPhoto(t *testing.T) {
	var gotContentType string
	var gotBody models.CreateReportRequest
	r := mux.NewRouter()
	r.HandleFunc("/api/reports", func(w http.ResponseWriter, req *http.Request) {
		gotContentType = req.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(models.Report{ID: 10, Kind: gotBody.Kind, Category: gotBody.Category})
	}).Methods(http.MethodPost)

	c := newTestClient(t, r, &fakeSessionStore{token: "tok"})

	report, err := c.CreateReport(context.Background(), models.CreateReportRequest{
		Kind:         models.KindLost,
		Title:        "Lost phone",
		Description:  "Black phone",
		Category:     models.CategoryElectronics,
		Location:     "Library",
		IncidentDate: "2025-05-01",
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), report.ID)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, models.KindLost, gotBody.Kind)
	require.Equal(t, models.CategoryElectronics, gotBody.Category)
}

func TestCreateReportWithPhoto_SendsMultipart(t *testing.T) {
	type part struct {
		filename    string
		contentType string
		data        []byte
	}
	var fields map[string]string
	var photo *part

	r := mux.NewRouter()
	r.HandleFunc("/api/reports", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseMultipartForm(1<<20))
		fields = map[string]string{}
		for k, v := range req.MultipartForm.Value {
			fields[k] = v[0]
		}
		fhs := req.MultipartForm.File["photo"]
		require.Len(t, fhs, 1)
		f, err := fhs[0].Open()
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		photo = &part{
			filename:    fhs[0].Filename,
			contentType: fhs[0].Header.Get("Content-Type"),
			data:        data,
		}
		_ = json.NewEncoder(w).Encode(models.Report{ID: 11, PhotoURL: "/photos/11.png"})
	}).Methods(http.MethodPost)

	c := newTestClient(t, r, &fakeSessionStore{token: "tok"})

	staged, err := upload.Stage(t.TempDir(), bytes.NewReader(pngHeader))
	require.NoError(t, err)
	t.Cleanup(func() { _ = staged.Remove() })

	report, err := c.CreateReportWithPhoto(context.Background(), models.CreateReportRequest{
		Kind:         models.KindFound,
		Title:        "Found keys",
		Description:  "Set of keys",
		Category:     models.CategoryPersonalAccessories,
		Location:     "Cafeteria",
		IncidentDate: "2025-05-02",
	}, staged)
	require.NoError(t, err)
	require.Equal(t, int64(11), report.ID)

	require.Equal(t, "FOUND", fields["kind"])
	require.Equal(t, "Found keys", fields["title"])
	require.Equal(t, "PERSONAL_ACCESSORIES", fields["category"])
	require.Equal(t, "2025-05-02", fields["incidentDate"])

	require.NotNil(t, photo)
	require.Equal(t, staged.Name(), photo.filename)
	require.Equal(t, "image/png", photo.contentType)
	require.Equal(t, pngHeader, photo.data)
}

func TestUpdateReportWithPhoto_OmitsUnsetFields(t *testing.T) {
	var fields map[string][]string
	r := mux.NewRouter()
	r.HandleFunc("/api/reports/{id}", func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "42", mux.Vars(req)["id"])
		require.NoError(t, req.ParseMultipartForm(1<<20))
		fields = req.MultipartForm.Value
		_ = json.NewEncoder(w).Encode(models.Report{ID: 42, Status: models.StatusResolved})
	}).Methods(http.MethodPut)

	c := newTestClient(t, r, &fakeSessionStore{token: "tok"})

	staged, err := upload.Stage(t.TempDir(), strings.NewReader("img"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = staged.Remove() })

	report, err := c.UpdateReportWithPhoto(context.Background(), 42,
		models.UpdateReportRequest{Status: models.StatusResolved}, staged)
	require.NoError(t, err)
	require.Equal(t, models.StatusResolved, report.Status)

	require.Equal(t, []string{"RESOLVED"}, fields["status"])
	require.NotContains(t, fields, "title")
	require.NotContains(t, fields, "description")
}

func TestUpdateReport_JSONOmitsUnsetFields(t *testing.T) {
	var raw map[string]any
	r := mux.NewRouter()
	r.HandleFunc("/api/reports/{id}", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(models.Report{ID: 42})
	}).Methods(http.MethodPut)

	c := newTestClient(t, r, &fakeSessionStore{token: "tok"})

	_, err := c.UpdateReport(context.Background(), 42, models.UpdateReportRequest{Title: "New title"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"title": "New title"}, raw)
}

func TestSend_ErrorBodyParsing(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/reports", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate report","error":"Conflict","status":409}`))
	}).Methods(http.MethodPost)

	c := newTestClient(t, r, &fakeSessionStore{token: "tok"})

	_, err := c.CreateReport(context.Background(), models.CreateReportRequest{})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 409, se.Code)
	require.Equal(t, "duplicate report", se.Body.Message)
	require.Equal(t, "Conflict", se.Body.Error)
}

func TestSend_UnparseableErrorBody(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/reports", func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "<html>gateway broke</html>", http.StatusBadGateway)
	}).Methods(http.MethodGet)

	c := newTestClient(t, r, &fakeSessionStore{token: "tok"})

	_, err := c.ListReports(context.Background(), models.ReportFilter{})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusBadGateway, se.Code)
	require.Empty(t, se.Body.Message)
}

func TestMapError_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens here anymore

	c := New(srv.URL+"/api", &fakeSessionStore{}, testLogger(), 0)

	_, err := c.ListReports(context.Background(), models.ReportFilter{})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMapError_Timeout(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/reports", func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(2 * time.Second)
	}).Methods(http.MethodGet)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := New(srv.URL+"/api", &fakeSessionStore{}, testLogger(), 50*time.Millisecond)

	_, err := c.ListReports(context.Background(), models.ReportFilter{})
	require.ErrorIs(t, err, ErrTimeout)
}

package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stis-apps/titiktemu/internal/client/api"
	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/session"
	"github.com/stis-apps/titiktemu/internal/client/upload"
	"github.com/stis-apps/titiktemu/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeAPI implements api.Service. Each method returns the configured
// response or error and records the last arguments it was called with.
type fakeAPI struct {
	RegisterResp *models.AuthResponse
	RegisterErr  error
	LastRegister models.RegisterRequest

	LoginResp *models.AuthResponse
	LoginErr  error
	LastLogin models.LoginRequest

	ProfileResp *models.User
	ProfileErr  error

	UpdateProfileResp *models.User
	UpdateProfileErr  error
	LastUpdateProfile models.UpdateProfileRequest

	ChangePasswordResp *models.MessageResponse
	ChangePasswordErr  error
	LastChangePassword models.ChangePasswordRequest

	DeleteAccountResp *models.MessageResponse
	DeleteAccountErr  error

	ListResp   []models.Report
	ListErr    error
	LastFilter models.ReportFilter

	GetResp *models.Report
	GetErr  error
	LastGet int64

	CreateResp *models.Report
	CreateErr  error
	LastCreate models.CreateReportRequest

	CreatePhotoResp  *models.Report
	CreatePhotoErr   error
	LastCreatePhoto  models.CreateReportRequest
	CreatePhotoCalls int

	UpdateResp *models.Report
	UpdateErr  error
	LastUpdate models.UpdateReportRequest

	UpdatePhotoResp  *models.Report
	UpdatePhotoErr   error
	LastUpdatePhoto  models.UpdateReportRequest
	UpdatePhotoCalls int

	DeleteResp *models.MessageResponse
	DeleteErr  error
	LastDelete int64
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.LastRegister = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.LastLogin = req
	return f.LoginResp, f.LoginErr
}

func (f *fakeAPI) GetProfile(context.Context) (*models.User, error) {
	return f.ProfileResp, f.ProfileErr
}

func (f *fakeAPI) UpdateProfile(_ context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	f.LastUpdateProfile = req
	return f.UpdateProfileResp, f.UpdateProfileErr
}

func (f *fakeAPI) ChangePassword(_ context.Context, req models.ChangePasswordRequest) (*models.MessageResponse, error) {
	f.LastChangePassword = req
	return f.ChangePasswordResp, f.ChangePasswordErr
}

func (f *fakeAPI) DeleteAccount(context.Context) (*models.MessageResponse, error) {
	return f.DeleteAccountResp, f.DeleteAccountErr
}

func (f *fakeAPI) ListReports(_ context.Context, filter models.ReportFilter) ([]models.Report, error) {
	f.LastFilter = filter
	return f.ListResp, f.ListErr
}

func (f *fakeAPI) GetReport(_ context.Context, id int64) (*models.Report, error) {
	f.LastGet = id
	return f.GetResp, f.GetErr
}

func (f *fakeAPI) CreateReport(_ context.Context, req models.CreateReportRequest) (*models.Report, error) {
	f.LastCreate = req
	return f.CreateResp, f.CreateErr
}

func (f *fakeAPI) CreateReportWithPhoto(_ context.Context, req models.CreateReportRequest, _ *upload.Staged) (*models.Report, error) {
	f.CreatePhotoCalls++
	f.LastCreatePhoto = req
	return f.CreatePhotoResp, f.CreatePhotoErr
}

func (f *fakeAPI) UpdateReport(_ context.Context, id int64, req models.UpdateReportRequest) (*models.Report, error) {
	f.LastUpdate = req
	return f.UpdateResp, f.UpdateErr
}

func (f *fakeAPI) UpdateReportWithPhoto(_ context.Context, id int64, req models.UpdateReportRequest, _ *upload.Staged) (*models.Report, error) {
	f.UpdatePhotoCalls++
	f.LastUpdatePhoto = req
	return f.UpdatePhotoResp, f.UpdatePhotoErr
}

func (f *fakeAPI) DeleteReport(_ context.Context, id int64) (*models.MessageResponse, error) {
	f.LastDelete = id
	return f.DeleteResp, f.DeleteErr
}

var _ api.Service = (*fakeAPI)(nil)

// fakeStore is an in-memory session.Store.
type fakeStore struct {
	mu           sync.Mutex
	token        string
	data         session.Snapshot
	cleared      bool
	saveTokenErr error
}

func (s *fakeStore) GetToken(context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeStore) SaveToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveTokenErr != nil {
		return s.saveTokenErr
	}
	s.token = token
	return nil
}

func (s *fakeStore) SaveUserData(_ context.Context, data session.UserData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&s.data.Username, data.Username)
	apply(&s.data.Email, data.Email)
	apply(&s.data.FullName, data.FullName)
	apply(&s.data.Role, data.Role)
	apply(&s.data.ExternalID, data.ExternalID)
	apply(&s.data.Phone, data.Phone)
	return nil
}

func (s *fakeStore) UserData(context.Context) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, nil
}

func (s *fakeStore) ClearAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.data = session.Snapshot{}
	s.cleared = true
	return nil
}

func (s *fakeStore) TokenUpdates() (<-chan string, func())    { return make(chan string), func() {} }
func (s *fakeStore) UsernameUpdates() (<-chan string, func()) { return make(chan string), func() {} }

var _ session.Store = (*fakeStore)(nil)

func TestLogin_PersistsSession(t *testing.T) {
	fa := &fakeAPI{LoginResp: &models.AuthResponse{
		Token: "abc123", Type: "Bearer",
		Username: "alice", Email: "alice@example.com", FullName: "Alice Doe",
	}}
	st := &fakeStore{}
	repo := NewAuthRepository(fa, st, testLogger())

	res, err := repo.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	resp, ok := res.Data()
	require.True(t, ok)
	require.Equal(t, "abc123", resp.Token)

	require.Equal(t, models.LoginRequest{Username: "alice", Password: "secret1"}, fa.LastLogin)
	require.Equal(t, "abc123", st.GetToken(context.Background()))
	snap, err := st.UserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, "alice", snap.Username)
	require.Equal(t, "Alice Doe", snap.FullName)
}

func TestLogin_BadCredentials(t *testing.T) {
	fa := &fakeAPI{LoginErr: &api.StatusError{Code: 401}}
	st := &fakeStore{}
	repo := NewAuthRepository(fa, st, testLogger())

	res, err := repo.Login(context.Background(), "alice", "wrong")
	require.NoError(t, err)
	require.True(t, res.IsError())
	require.Equal(t, "Incorrect username or password", res.Message())
	require.Equal(t, "", st.GetToken(context.Background()))
	require.False(t, st.cleared)
}

func TestLogin_NoConnection(t *testing.T) {
	fa := &fakeAPI{LoginErr: fmt.Errorf("request failed: %w", api.ErrUnavailable)}
	repo := NewAuthRepository(fa, &fakeStore{}, testLogger())

	res, err := repo.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.True(t, res.IsError())
	require.Equal(t, MsgNoConnection, res.Message())
}

func TestLogin_SaveTokenFailure(t *testing.T) {
	fa := &fakeAPI{LoginResp: &models.AuthResponse{Token: "abc123", Username: "alice"}}
	st := &fakeStore{saveTokenErr: fmt.Errorf("disk full")}
	repo := NewAuthRepository(fa, st, testLogger())

	res, err := repo.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.True(t, res.IsError())
	require.Equal(t, "Failed to save session", res.Message())
}

func TestRegister_CachesRequestOnlyFields(t *testing.T) {
	fa := &fakeAPI{RegisterResp: &models.AuthResponse{
		Token: "tok1", Username: "bob", Email: "bob@example.com", FullName: "Bob Lee",
	}}
	st := &fakeStore{}
	repo := NewAuthRepository(fa, st, testLogger())

	res, err := repo.Register(context.Background(), models.RegisterRequest{
		Username: "bob", Password: "secret1", Email: "bob@example.com",
		FullName: "Bob Lee", Role: "STUDENT", ExternalID: "222212345", Phone: "081234",
	})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	snap, err := st.UserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, "STUDENT", snap.Role)
	require.Equal(t, "222212345", snap.ExternalID)
	require.Equal(t, "081234", snap.Phone)
	require.Equal(t, "tok1", st.GetToken(context.Background()))
}

func TestRegister_Conflict(t *testing.T) {
	fa := &fakeAPI{RegisterErr: &api.StatusError{Code: 409}}
	repo := NewAuthRepository(fa, &fakeStore{}, testLogger())

	res, err := repo.Register(context.Background(), models.RegisterRequest{Username: "bob"})
	require.NoError(t, err)
	require.True(t, res.IsError())
	require.Equal(t, "Username or email already taken", res.Message())
}

func TestLogout_ClearsSession(t *testing.T) {
	st := &fakeStore{token: "abc123"}
	repo := NewAuthRepository(&fakeAPI{}, st, testLogger())

	require.NoError(t, repo.Logout(context.Background()))
	require.True(t, st.cleared)
	require.Equal(t, "", st.GetToken(context.Background()))
}

func TestGetProfile_UnauthorizedPassesThrough(t *testing.T) {
	fa := &fakeAPI{ProfileErr: api.ErrUnauthorized}
	repo := NewUserRepository(fa, &fakeStore{}, testLogger())

	res, err := repo.GetProfile(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.True(t, res.IsIdle())
}

func TestUpdateProfile_RefreshesSnapshot(t *testing.T) {
	fa := &fakeAPI{UpdateProfileResp: &models.User{
		Username: "alice", Email: "new@example.com", FullName: "Alice Doe",
		Role: "STUDENT", ExternalID: "222212345", Phone: "0899",
	}}
	st := &fakeStore{token: "abc123", data: session.Snapshot{Username: "alice", Email: "old@example.com"}}
	repo := NewUserRepository(fa, st, testLogger())

	res, err := repo.UpdateProfile(context.Background(), models.UpdateProfileRequest{Email: "new@example.com"})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	snap, err := st.UserData(context.Background())
	require.NoError(t, err)
	require.Equal(t, "new@example.com", snap.Email)
	require.Equal(t, "0899", snap.Phone)
	// the token survives a profile refresh
	require.Equal(t, "abc123", st.GetToken(context.Background()))
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	fa := &fakeAPI{ChangePasswordErr: &api.StatusError{Code: 401}}
	repo := NewUserRepository(fa, &fakeStore{}, testLogger())

	res, err := repo.ChangePassword(context.Background(), "bad", "newpass1")
	require.NoError(t, err)
	require.True(t, res.IsError())
	require.Equal(t, "Old password is incorrect", res.Message())
}

func TestDeleteAccount_ClearsSession(t *testing.T) {
	fa := &fakeAPI{DeleteAccountResp: &models.MessageResponse{Message: "deleted"}}
	st := &fakeStore{token: "abc123"}
	repo := NewUserRepository(fa, st, testLogger())

	res, err := repo.DeleteAccount(context.Background())
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	require.True(t, st.cleared)
}

func TestListReports_PassesFilter(t *testing.T) {
	fa := &fakeAPI{ListResp: []models.Report{{ID: 1, Title: "Lost wallet"}}}
	repo := NewReportRepository(fa, testLogger())

	filter := models.ReportFilter{Kind: models.KindLost, Category: models.CategoryElectronics}
	res, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	require.Equal(t, filter, fa.LastFilter)

	reports, ok := res.Data()
	require.True(t, ok)
	require.Len(t, reports, 1)
}

func TestGetReport_NotFound(t *testing.T) {
	fa := &fakeAPI{GetErr: &api.StatusError{Code: 404}}
	repo := NewReportRepository(fa, testLogger())

	res, err := repo.Get(context.Background(), 42)
	require.NoError(t, err)
	require.True(t, res.IsError())
	require.Equal(t, "Report not found", res.Message())
	require.Equal(t, int64(42), fa.LastGet)
}

func TestCreateReport_JSONWithoutPhoto(t *testing.T) {
	fa := &fakeAPI{CreateResp: &models.Report{ID: 7, Title: "Lost wallet"}}
	repo := NewReportRepository(fa, testLogger())

	req := models.CreateReportRequest{Kind: models.KindLost, Title: "Lost wallet"}
	res, err := repo.Create(context.Background(), req, nil)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	require.Equal(t, req, fa.LastCreate)
	require.Zero(t, fa.CreatePhotoCalls)
}

func stagePhoto(t *testing.T) *upload.Staged {
	t.Helper()
	photo, err := upload.Stage(t.TempDir(), bytes.NewReader([]byte("\x89PNG\r\n\x1a\n0000")))
	require.NoError(t, err)
	return photo
}

func TestCreateReport_PhotoRemovedOnSuccess(t *testing.T) {
	fa := &fakeAPI{CreatePhotoResp: &models.Report{ID: 8}}
	repo := NewReportRepository(fa, testLogger())
	photo := stagePhoto(t)

	res, err := repo.Create(context.Background(), models.CreateReportRequest{Title: "Found keys"}, photo)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	require.Equal(t, 1, fa.CreatePhotoCalls)

	_, statErr := os.Stat(photo.Path())
	require.True(t, os.IsNotExist(statErr))
}

func TestCreateReport_PhotoRemovedOnFailure(t *testing.T) {
	fa := &fakeAPI{CreatePhotoErr: &api.StatusError{Code: 500}}
	repo := NewReportRepository(fa, testLogger())
	photo := stagePhoto(t)

	res, err := repo.Create(context.Background(), models.CreateReportRequest{Title: "Found keys"}, photo)
	require.NoError(t, err)
	require.True(t, res.IsError())
	require.Equal(t, "Server error, please try again later", res.Message())

	_, statErr := os.Stat(photo.Path())
	require.True(t, os.IsNotExist(statErr))
}

func TestUpdateReport_SelectsEncoding(t *testing.T) {
	fa := &fakeAPI{
		UpdateResp:      &models.Report{ID: 9},
		UpdatePhotoResp: &models.Report{ID: 9},
	}
	repo := NewReportRepository(fa, testLogger())

	_, err := repo.Update(context.Background(), 9, models.UpdateReportRequest{Title: "New title"}, nil)
	require.NoError(t, err)
	require.Equal(t, "New title", fa.LastUpdate.Title)
	require.Zero(t, fa.UpdatePhotoCalls)

	photo := stagePhoto(t)
	_, err = repo.Update(context.Background(), 9, models.UpdateReportRequest{Status: models.StatusResolved}, photo)
	require.NoError(t, err)
	require.Equal(t, 1, fa.UpdatePhotoCalls)
	_, statErr := os.Stat(photo.Path())
	require.True(t, os.IsNotExist(statErr))
}

func TestDeleteReport_Timeout(t *testing.T) {
	fa := &fakeAPI{DeleteErr: fmt.Errorf("request failed: %w", api.ErrTimeout)}
	repo := NewReportRepository(fa, testLogger())

	res, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, res.IsError())
	require.Equal(t, MsgTimeout, res.Message())
}

func TestValidationMessageFromBody(t *testing.T) {
	fa := &fakeAPI{CreateErr: &api.StatusError{
		Code: 400,
		Body: models.ErrorResponse{Message: "Title must not be blank"},
	}}
	repo := NewReportRepository(fa, testLogger())

	res, err := repo.Create(context.Background(), models.CreateReportRequest{}, nil)
	require.NoError(t, err)
	require.True(t, res.IsError())
	require.Equal(t, "Title must not be blank", res.Message())
}

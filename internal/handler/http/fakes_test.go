package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/internal/service"
	"github.com/MKhiriev/volcano-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes: service interfaces
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerFn    func(ctx context.Context, credentials models.Credentials) error
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	createTokenFn func(ctx context.Context, email string) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, credentials models.Credentials) error {
	if f.registerFn != nil {
		return f.registerFn(ctx, credentials)
	}
	return nil
}

func (f *fakeAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, credentials)
	}
	return models.Token{}, nil
}

func (f *fakeAuthService) CreateToken(ctx context.Context, email string) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, email)
	}
	return models.Token{}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

type fakeProfileService struct {
	getProfileFn    func(ctx context.Context, email string) (models.Profile, bool, error)
	updateProfileFn func(ctx context.Context, email string, req models.ProfileUpdateRequest) (models.Profile, error)
}

func (f *fakeProfileService) GetProfile(ctx context.Context, email string) (models.Profile, bool, error) {
	if f.getProfileFn != nil {
		return f.getProfileFn(ctx, email)
	}
	return models.Profile{}, false, nil
}

func (f *fakeProfileService) UpdateProfile(ctx context.Context, email string, req models.ProfileUpdateRequest) (models.Profile, error) {
	if f.updateProfileFn != nil {
		return f.updateProfileFn(ctx, email, req)
	}
	return models.Profile{}, nil
}

type fakeVolcanoService struct {
	countriesFn     func(ctx context.Context) ([]models.Country, error)
	listVolcanoesFn func(ctx context.Context, filter models.VolcanoFilter) ([]models.VolcanoSummary, error)
	getVolcanoFn    func(ctx context.Context, id int64) (models.VolcanoDetails, bool, error)
}

func (f *fakeVolcanoService) Countries(ctx context.Context) ([]models.Country, error) {
	if f.countriesFn != nil {
		return f.countriesFn(ctx)
	}
	return []models.Country{}, nil
}

func (f *fakeVolcanoService) ListVolcanoes(ctx context.Context, filter models.VolcanoFilter) ([]models.VolcanoSummary, error) {
	if f.listVolcanoesFn != nil {
		return f.listVolcanoesFn(ctx, filter)
	}
	return []models.VolcanoSummary{}, nil
}

func (f *fakeVolcanoService) GetVolcano(ctx context.Context, id int64) (models.VolcanoDetails, bool, error) {
	if f.getVolcanoFn != nil {
		return f.getVolcanoFn(ctx, id)
	}
	return models.VolcanoDetails{}, false, nil
}

type fakeOperatorService struct {
	operator models.Operator
}

func (f *fakeOperatorService) Me(context.Context) models.Operator {
	return f.operator
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices returns Services backed by fakes with no behaviour configured.
func testServices() *service.Services {
	return &service.Services{
		AuthService:     &fakeAuthService{},
		ProfileService:  &fakeProfileService{},
		VolcanoService:  &fakeVolcanoService{},
		OperatorService: &fakeOperatorService{operator: models.Operator{Name: "Elvio Wang", StudentNumber: "n10771727"}},
	}
}

func newTestRouter(services *service.Services) http.Handler {
	return NewHandler(services, logger.Nop()).Init()
}

// do sends a request through handler; body may be empty.
func do(t *testing.T, handler http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.NotZero(t, rr.Code)
	return rr
}

func envelope(t *testing.T, message string) string {
	t.Helper()
	b, err := json.Marshal(models.ErrorResponse{Error: true, Message: message})
	require.NoError(t, err)
	return string(b)
}

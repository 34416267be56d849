package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"progresstracker/internal/adapter/http/dto"
	"progresstracker/internal/adapter/http/handlers"
	"progresstracker/internal/adapter/http/middleware"
	"progresstracker/internal/core/domain"
	"progresstracker/pkg/apierrors"
	"progresstracker/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type preferenceServiceMock struct {
	mock.Mock
}

func (m *preferenceServiceMock) Get(ctx context.Context, ownerID string) (domain.Preferences, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

func (m *preferenceServiceMock) Save(ctx context.Context, ownerID string, prefs domain.Preferences) error {
	args := m.Called(ctx, ownerID, prefs)
	return args.Error(0)
}

func newPreferenceRouter(handler *handlers.PreferenceHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), ownerMiddleware(testOwnerID))
	group.GET("/preferences", handler.Get)
	group.PUT("/preferences", handler.Put)
	return router
}

func TestPreferenceHandler_Get_Defaults(t *testing.T) {
	serviceMock := new(preferenceServiceMock)
	serviceMock.On("Get", mock.Anything, testOwnerID).Return(domain.DefaultPreferences(), nil).Once()
	handler := handlers.NewPreferenceHandler(serviceMock)

	router := newPreferenceRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.PreferencesPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.False(t, got.ThemeDark)
	require.Equal(t, "dashboard", got.DefaultTab)
	require.True(t, got.EmailDaily)
	require.True(t, got.EmailWeekly)
	serviceMock.AssertExpectations(t)
}

func TestPreferenceHandler_Put_Success(t *testing.T) {
	serviceMock := new(preferenceServiceMock)
	serviceMock.On("Save", mock.Anything, testOwnerID, domain.Preferences{
		ThemeDark:   true,
		DefaultTab:  "calendar",
		EmailDaily:  false,
		EmailWeekly: true,
	}).Return(nil).Once()
	handler := handlers.NewPreferenceHandler(serviceMock)

	router := newPreferenceRouter(handler)

	body := `{"theme_dark":true,"default_tab":"calendar","email_daily":false,"email_weekly":true}`
	req := httptest.NewRequest(http.MethodPut, "/api/preferences", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.PreferencesPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.ThemeDark)
	require.Equal(t, "calendar", got.DefaultTab)
	serviceMock.AssertExpectations(t)
}

func TestPreferenceHandler_Put_EmptyTabFallsBack(t *testing.T) {
	serviceMock := new(preferenceServiceMock)
	serviceMock.On("Save", mock.Anything, testOwnerID, domain.Preferences{
		ThemeDark:   false,
		DefaultTab:  "dashboard",
		EmailDaily:  true,
		EmailWeekly: false,
	}).Return(nil).Once()
	handler := handlers.NewPreferenceHandler(serviceMock)

	router := newPreferenceRouter(handler)

	body := `{"email_daily":true}`
	req := httptest.NewRequest(http.MethodPut, "/api/preferences", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.PreferencesPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "dashboard", got.DefaultTab)
	serviceMock.AssertExpectations(t)
}

func TestPreferenceHandler_Put_InvalidTab(t *testing.T) {
	serviceMock := new(preferenceServiceMock)
	handler := handlers.NewPreferenceHandler(serviceMock)

	router := newPreferenceRouter(handler)

	body := `{"default_tab":"nonsense"}`
	req := httptest.NewRequest(http.MethodPut, "/api/preferences", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid preferences payload", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestPreferenceHandler_Put_Error(t *testing.T) {
	serviceMock := new(preferenceServiceMock)
	serviceMock.On("Save", mock.Anything, testOwnerID, mock.Anything).
		Return(errors.New("db is down")).Once()
	handler := handlers.NewPreferenceHandler(serviceMock)

	router := newPreferenceRouter(handler)

	body := `{"default_tab":"tasks"}`
	req := httptest.NewRequest(http.MethodPut, "/api/preferences", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to store preferences", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

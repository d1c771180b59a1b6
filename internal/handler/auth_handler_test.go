package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notely/internal/auth"
	apperrors "notely/internal/errors"
	"notely/internal/handler"
	"notely/internal/model"
	"notely/internal/router"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = router.NewCustomValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return httpErr.Code
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"email":"a@x.com","password":"secret1","name":"Ann"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "a@x.com", "secret1", "Ann").Return(&model.User{
					ID:    uuid.New(),
					Email: "a@x.com",
					Name:  "Ann",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid email",
			body:           `{"email":"not-an-email","password":"secret1","name":"Ann"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           `{"email":"a@x.com","password":"12345","name":"Ann"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"email":"a@x.com","password":"secret1"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: `{"email":"a@x.com","password":"secret1","name":"Ann"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "a@x.com", "secret1", "Ann").Return(nil, apperrors.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)
			h := handler.NewAuthHandler(mockSvc)

			c, rec := newTestContext(t, http.MethodPost, "/api/user/register", tt.body)
			err := h.Register(c)

			if tt.expectedStatus == http.StatusCreated {
				require.NoError(t, err)
				assert.Equal(t, http.StatusCreated, rec.Code)

				var resp handler.RegisterResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "success", resp.Status)
				assert.Equal(t, "a@x.com", resp.Data.Email)
				assert.NotEmpty(t, resp.Data.UserID)
				// The hash must never be in the response.
				assert.NotContains(t, rec.Body.String(), "password")
			} else {
				assert.Equal(t, tt.expectedStatus, httpStatus(t, err))
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "ok",
			body: `{"email":"a@x.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "a@x.com", "secret1").Return("signed-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad credentials",
			body: `{"email":"a@x.com","password":"wrong"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "a@x.com", "wrong").Return("", apperrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed email",
			body:           `{"email":"nope","password":"secret1"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)
			h := handler.NewAuthHandler(mockSvc)

			c, rec := newTestContext(t, http.MethodPost, "/api/user/login", tt.body)
			err := h.Login(c)

			if tt.expectedStatus == http.StatusOK {
				require.NoError(t, err)

				var resp handler.LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "success", resp.Status)
				assert.Equal(t, "signed-token", resp.Token)
			} else {
				assert.Equal(t, tt.expectedStatus, httpStatus(t, err))
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	claims := &auth.Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	mockSvc := new(MockAuthService)
	mockSvc.On("Logout", mock.Anything, "jti-1", mock.MatchedBy(func(at time.Time) bool {
		return at.Equal(claims.ExpiresAt.Time)
	})).Return(nil)
	h := handler.NewAuthHandler(mockSvc)

	c, rec := newTestContext(t, http.MethodPost, "/api/user/logout", "")
	c.Set(handler.ContextClaimsKey, claims)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_LogoutWithoutIdentity(t *testing.T) {
	h := handler.NewAuthHandler(new(MockAuthService))

	c, _ := newTestContext(t, http.MethodPost, "/api/user/logout", "")
	err := h.Logout(c)

	assert.Equal(t, http.StatusUnauthorized, httpStatus(t, err))
}

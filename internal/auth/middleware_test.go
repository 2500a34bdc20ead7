package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"petapi/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// gateEcho builds an echo instance with one protected route that echoes
// the resolved user's ID.
func gateEcho(svc *JWTService, repo *MockUserRepository) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "user not resolved")
		}
		return c.JSON(http.StatusOK, echo.Map{"id": user.ID})
	}, JWTMiddleware(svc), LoadUser(repo))
	return e
}

func TestAuthGate(t *testing.T) {
	user := &model.User{ID: 7, Email: "g@x.com", Username: "g", IsActive: true}
	svc := NewJWTService("gate-secret", 15*time.Minute)

	validToken, err := svc.IssueAccessToken(user)
	assert.NoError(t, err)

	expiredSvc := NewJWTService("gate-secret", time.Nanosecond)
	expiredToken, err := expiredSvc.IssueAccessToken(user)
	assert.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	foreignToken, err := NewJWTService("other-secret", 15*time.Minute).IssueAccessToken(user)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		authorization  string
		setupMock      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name:          "valid token resolves user",
			authorization: "Bearer " + validToken,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(user, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authorization:  "",
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			authorization:  "Bearer not-a-token",
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authorization:  "Bearer " + expiredToken,
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with another secret",
			authorization:  "Bearer " + foreignToken,
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "valid token but user row gone",
			authorization: "Bearer " + validToken,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			e := gateEcho(svc, mockRepo)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"id":7`)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

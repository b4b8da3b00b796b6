package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anime_calendar/internal/feature/auth/domain/entity"
	"anime_calendar/internal/feature/auth/usecase"
	jwtmw "anime_calendar/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc       func(ctx context.Context, email, password, username string, role entity.Role) (*entity.User, error)
	LoginFunc          func(ctx context.Context, email, password string) (string, error)
	ProfileFunc        func(ctx context.Context, id string) (*entity.User, error)
	UpdatePasswordFunc func(ctx context.Context, id, oldPassword, newPassword string) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, email, password, username string, role entity.Role) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, username, role)
	}
	return &entity.User{ID: "user-1", Email: email, Username: username}, nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", usecase.ErrInvalidCredentials
}

func (m *mockAuthUsecase) Profile(ctx context.Context, id string) (*entity.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, id)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockAuthUsecase) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) (*entity.User, error) {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, oldPassword, newPassword)
	}
	return nil, usecase.ErrInvalidCredentials
}

// setUserID injects the context value the JWT middleware would set.
func setUserID(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, id)
		c.Next()
	}
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		registerFunc   func(ctx context.Context, email, password, username string, role entity.Role) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: gin.H{"email": "test@example.com", "password": "password123", "username": "tester"},
			registerFunc: func(ctx context.Context, email, password, username string, role entity.Role) (*entity.User, error) {
				return &entity.User{ID: "user-1", Email: email, Username: username, Role: entity.RoleUser}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid email",
			requestBody:    gin.H{"email": "not-an-email", "password": "password123", "username": "tester"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			requestBody:    gin.H{"email": "test@example.com", "password": "short", "username": "tester"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing username",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown role",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123", "username": "tester", "role": "ROOT"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate user",
			requestBody: gin.H{"email": "taken@example.com", "password": "password123", "username": "taken"},
			registerFunc: func(ctx context.Context, email, password, username string, role entity.Role) (*entity.User, error) {
				return nil, usecase.ErrUserAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{RegisterFunc: tt.registerFunc})

			router := gin.New()
			router.POST("/auth/register", handler.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				assert.NotContains(t, w.Body.String(), "password", "password must never be serialized")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		loginFunc      func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			loginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong credentials",
			requestBody:    gin.H{"email": "test@example.com", "password": "wrong"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed body",
			requestBody:    gin.H{"email": "test@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.loginFunc})

			router := gin.New()
			router.POST("/auth/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "signed-token", resp["token"])
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the profile of the token subject", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{
			ProfileFunc: func(ctx context.Context, id string) (*entity.User, error) {
				assert.Equal(t, "user-1", id)
				return &entity.User{ID: id, Email: "me@example.com", Username: "me"}, nil
			},
		})

		router := gin.New()
		router.GET("/auth/me", setUserID("user-1"), handler.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "me@example.com")
	})

	t.Run("stale token subject yields 401", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.GET("/auth/me", setUserID("deleted-user"), handler.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		updateFunc     func(ctx context.Context, id, oldPassword, newPassword string) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: gin.H{"oldPassword": "password123", "newPassword": "password321"},
			updateFunc: func(ctx context.Context, id, oldPassword, newPassword string) (*entity.User, error) {
				return &entity.User{ID: id}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong old password",
			requestBody:    gin.H{"oldPassword": "wrongwrong", "newPassword": "password321"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "short new password",
			requestBody:    gin.H{"oldPassword": "password123", "newPassword": "short"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{UpdatePasswordFunc: tt.updateFunc})

			router := gin.New()
			router.PATCH("/auth/password", setUserID("user-1"), handler.UpdatePassword)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPatch, "/auth/password", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_InternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(&mockAuthUsecase{
		RegisterFunc: func(ctx context.Context, email, password, username string, role entity.Role) (*entity.User, error) {
			return nil, errors.New("connection refused")
		},
	})

	router := gin.New()
	router.POST("/auth/register", handler.Register)

	body, _ := json.Marshal(gin.H{"email": "test@example.com", "password": "password123", "username": "tester"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused", "store detail must not leak")
}

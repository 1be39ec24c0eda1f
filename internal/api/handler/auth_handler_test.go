package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

type stubAuthService struct {
	signupFn  func(ctx context.Context, input ports.SignupInput) (*domain.User, error)
	loginFn   func(ctx context.Context, email, password, role string) (string, *domain.Session, error)
	logoutFn  func(ctx context.Context, sessionID string) error
	sessionFn func(ctx context.Context, sessionID string) (*domain.Session, error)
}

func (s *stubAuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password, role string) (string, *domain.Session, error) {
	return s.loginFn(ctx, email, password, role)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessionFn(ctx, sessionID)
}

func (s *stubAuthService) ListUsers(context.Context) ([]domain.User, error) { return nil, nil }

func (s *stubAuthService) FindUserByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) UpdateUser(context.Context, string, ports.UpdateUserInput) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) DeleteUser(context.Context, string) error { return nil }

func (s *stubAuthService) UpdateProfile(context.Context, string, string, ports.ProfileInput) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
			if input.Name != "Alice" || input.Role != domain.RoleUser {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", Name: input.Name, Email: input.Email, Role: input.Role}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secret1","confirm_password":"secret1","role":"user"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "u1" || resp["role"] != "user" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Signup_PasswordMismatch(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secret1","confirm_password":"other","role":"user"}`)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_UserExists(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Bob","email":"bob@example.com","password":"secret1","confirm_password":"secret1","role":"user"}`)

	// domain errors pass through to the central error handler untouched
	if err := h.Signup(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password, role string) (string, *domain.Session, error) {
			if email != "alice@example.com" || role != domain.RoleAdmin {
				t.Fatalf("unexpected args: %s %s", email, role)
			}
			return "token123", &domain.Session{
				ID:   "sess-1",
				User: domain.SessionUser{ID: "u1", Name: "Alice", Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret","role":"admin"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	// admins land on the admin view
	if resp["redirect"] != "/admin" {
		t.Fatalf("expected redirect /admin, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Login_UserRedirect(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password, role string) (string, *domain.Session, error) {
			return "token123", &domain.Session{
				ID:   "sess-1",
				User: domain.SessionUser{ID: "u1", Name: "Bob", Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"bob@example.com","password":"secret","role":"user"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["redirect"] != "/dashboard" {
		t.Fatalf("expected redirect /dashboard, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Login_RoleMismatch(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password, role string) (string, *domain.Session, error) {
			return "", nil, domain.ErrRoleMismatch
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"bob@example.com","password":"secret","role":"admin"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password, role string) (string, *domain.Session, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", "{")

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	cleared := ""
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionID string) error {
			cleared = sessionID
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set("session_id", "sess-1")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if cleared != "sess-1" {
		t.Fatalf("expected session sess-1 cleared, got %q", cleared)
	}
}

func TestAuthHandler_Logout_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/logout", "")

	err := h.Logout(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

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

	"github.com/contactbook/contact-api/internal/api/middleware"
	"github.com/contactbook/contact-api/internal/core/domain"
	"github.com/contactbook/contact-api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterUserInput) (*ports.UserProfile, error)
	loginFn    func(ctx context.Context, input ports.LoginUserInput) (*ports.UserProfile, error)
	updateFn   func(ctx context.Context, user *domain.User, input ports.UpdateUserInput) (*ports.UserProfile, error)
	logoutFn   func(ctx context.Context, user *domain.User) error
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterUserInput) (*ports.UserProfile, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, input ports.LoginUserInput) (*ports.UserProfile, error) {
	return s.loginFn(ctx, input)
}

func (s *stubUserService) Current(user *domain.User) *ports.UserProfile {
	return &ports.UserProfile{ID: user.ID, Username: user.Username, Name: user.Name}
}

func (s *stubUserService) Update(ctx context.Context, user *domain.User, input ports.UpdateUserInput) (*ports.UserProfile, error) {
	return s.updateFn(ctx, user, input)
}

func (s *stubUserService) Logout(ctx context.Context, user *domain.User) error {
	return s.logoutFn(ctx, user)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data envelope, got %s", rec.Body.String())
	}
	return data
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, input ports.RegisterUserInput) (*ports.UserProfile, error) {
			if input.Username != "bob" || input.Password != "pw123" || input.Name != "Bob" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.UserProfile{ID: "1", Username: "bob", Name: "Bob"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users", `{"username":"bob","password":"pw123","name":"Bob"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	if data["username"] != "bob" || data["name"] != "Bob" {
		t.Fatalf("unexpected payload: %+v", data)
	}
	if _, present := data["token"]; present {
		t.Fatalf("register must not return a token: %+v", data)
	}
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*ports.UserProfile, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users", `{"username":"","password":"","name":""}`)
	err := h.Register(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*ports.UserProfile, error) {
			return nil, domain.ErrUsernameTaken
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users", `{"username":"bob","password":"pw","name":"Bob"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(_ context.Context, input ports.LoginUserInput) (*ports.UserProfile, error) {
			if input.Username != "bob" || input.Password != "pw123" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.UserProfile{ID: "1", Username: "bob", Name: "Bob", Token: "tok-1"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/login", `{"username":"bob","password":"pw123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	if data["token"] != "tok-1" {
		t.Fatalf("expected token in login response: %+v", data)
	}
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(context.Context, ports.LoginUserInput) (*ports.UserProfile, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users/login", `{"username":"bob","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserHandler_Current_Success(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/users/current", "")
	c.Set(middleware.UserKey, &domain.User{ID: "1", Username: "bob", Name: "Bob"})

	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	data := decodeData(t, rec)
	if data["username"] != "bob" || data["name"] != "Bob" {
		t.Fatalf("unexpected payload: %+v", data)
	}
	if _, present := data["token"]; present {
		t.Fatalf("current must not expose the token: %+v", data)
	}
}

func TestUserHandler_Current_Unauthenticated(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/users/current", "")
	err := h.Current(c)
	if code := httpErrorCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestUserHandler_Update_NameOnly(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(_ context.Context, user *domain.User, input ports.UpdateUserInput) (*ports.UserProfile, error) {
			if input.Name == nil || *input.Name != "Bobby" {
				t.Fatalf("expected name update, got %+v", input)
			}
			if input.Password != nil {
				t.Fatalf("password must be absent, got %q", *input.Password)
			}
			return &ports.UserProfile{ID: user.ID, Username: user.Username, Name: *input.Name}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/api/users/current", `{"name":"Bobby"}`)
	c.Set(middleware.UserKey, &domain.User{ID: "1", Username: "bob", Name: "Bob"})

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	data := decodeData(t, rec)
	if data["name"] != "Bobby" {
		t.Fatalf("unexpected payload: %+v", data)
	}
}

func TestUserHandler_Update_ValidationFailure(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(context.Context, *domain.User, ports.UpdateUserInput) (*ports.UserProfile, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/api/users/current", `{"name":""}`)
	c.Set(middleware.UserKey, &domain.User{ID: "1", Username: "bob"})

	err := h.Update(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestUserHandler_Logout_Success(t *testing.T) {
	loggedOut := false
	stub := &stubUserService{
		logoutFn: func(_ context.Context, user *domain.User) error {
			loggedOut = true
			if user.ID != "1" {
				t.Fatalf("unexpected user: %+v", user)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/users/current", "")
	c.Set(middleware.UserKey, &domain.User{ID: "1", Username: "bob"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !loggedOut {
		t.Fatalf("logout not delegated to service")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["data"] != true {
		t.Fatalf("expected data:true, got %s", rec.Body.String())
	}
}

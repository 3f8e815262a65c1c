package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/dto"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/handler"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/service"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/mocks"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

type authTestEnv struct {
	app         *fiber.App
	repo        *mocks.MockUserRepository
	resetTokens *mocks.MockResetTokenRepository
	sessions    *mocks.MockSessionManager
	mail        *mocks.MockSender
}

func newAuthTestEnv(ctrl *gomock.Controller) authTestEnv {
	env := authTestEnv{
		repo:        mocks.NewMockUserRepository(ctrl),
		resetTokens: mocks.NewMockResetTokenRepository(ctrl),
		sessions:    mocks.NewMockSessionManager(ctrl),
		mail:        mocks.NewMockSender(ctrl),
	}

	userService := service.NewUserService(env.repo, env.resetTokens, env.sessions, env.mail,
		"https://dogs.example.com", zerolog.Nop())
	authHandler := handler.NewAuthHandler(userService)

	env.app = fiber.New()
	env.app.Post("/signup", authHandler.Signup)
	env.app.Post("/login", authHandler.Login)
	env.app.Post("/logout", authHandler.Logout)
	env.app.Post("/reset-password/request", authHandler.RequestPasswordReset)
	env.app.Post("/reset-password/reset", authHandler.ResetPassword)

	return env
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))

	return body
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	return string(raw)
}

func jsonBody(t *testing.T, payload interface{}) *bytes.Reader {
	t.Helper()

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	return bytes.NewReader(body)
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == constant.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newAuthTestEnv(ctrl)

	t.Run("success sets session cookie", func(t *testing.T) {
		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(nil, nil)
		env.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		env.sessions.EXPECT().Issue(gomock.Any(), gomock.Any()).
			Return("session-token", time.Now().Add(time.Hour), nil)

		resp := postJSON(t, env.app, "/signup", dto.SignupInput{
			Email:     "test@example.com",
			Password:  "password123",
			FirstName: "Test",
		})

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "session-token", body["token"])

		cookie := sessionCookie(resp)
		assert.NotNil(t, cookie)
		assert.Equal(t, "session-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, env.app, "/signup", dto.SignupInput{Email: "test@example.com"})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, false, decodeBody(t, resp)["success"])
	})

	t.Run("short password", func(t *testing.T) {
		resp := postJSON(t, env.app, "/signup", dto.SignupInput{
			Email:     "test@example.com",
			Password:  "short",
			FirstName: "Test",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		env.repo.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").
			Return(&domain.User{ID: "existing-id", Email: "taken@example.com"}, nil)

		resp := postJSON(t, env.app, "/signup", dto.SignupInput{
			Email:     "taken@example.com",
			Password:  "password123",
			FirstName: "Test",
		})

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Email already registered", body["error"])
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newAuthTestEnv(ctrl)

	hash, err := service.HashPassword("password123")
	assert.NoError(t, err)

	user := &domain.User{
		ID:           "user-id",
		Email:        "test@example.com",
		PasswordHash: hash,
		FirstName:    "Test",
	}

	t.Run("success", func(t *testing.T) {
		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)
		env.sessions.EXPECT().Issue(gomock.Any(), "user-id").
			Return("session-token", time.Now().Add(time.Hour), nil)

		resp := postJSON(t, env.app, "/login", dto.LoginInput{
			Email:    "test@example.com",
			Password: "password123",
		})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		assert.NotNil(t, sessionCookie(resp))
	})

	t.Run("wrong password", func(t *testing.T) {
		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)

		resp := postJSON(t, env.app, "/login", dto.LoginInput{
			Email:    "test@example.com",
			Password: "wrong-password",
		})

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", decodeBody(t, resp)["error"])
	})

	t.Run("unknown email gets the same message", func(t *testing.T) {
		env.repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		resp := postJSON(t, env.app, "/login", dto.LoginInput{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", decodeBody(t, resp)["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, env.app, "/login", dto.LoginInput{Email: "test@example.com"})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("repository error", func(t *testing.T) {
		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").
			Return(nil, errors.New("connection reset"))

		resp := postJSON(t, env.app, "/login", dto.LoginInput{
			Email:    "test@example.com",
			Password: "password123",
		})

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Internal server error", decodeBody(t, resp)["error"])
	})
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newAuthTestEnv(ctrl)

	t.Run("success clears cookie", func(t *testing.T) {
		env.sessions.EXPECT().Revoke(gomock.Any(), "session-token").Return(nil)

		req := httptest.NewRequest("POST", "/logout", nil)
		req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: "session-token"})

		resp, err := env.app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		cookie := sessionCookie(resp)
		assert.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
	})

	t.Run("still succeeds when revocation fails", func(t *testing.T) {
		env.sessions.EXPECT().Revoke(gomock.Any(), "session-token").Return(errors.New("delete failed"))

		req := httptest.NewRequest("POST", "/logout", nil)
		req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: "session-token"})

		resp, err := env.app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decodeBody(t, resp)["success"])
	})

	t.Run("succeeds without a token", func(t *testing.T) {
		resp, err := env.app.Test(httptest.NewRequest("POST", "/logout", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRequestPasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newAuthTestEnv(ctrl)

	user := &domain.User{ID: "user-id", Email: "test@example.com", FirstName: "Test"}

	t.Run("known email", func(t *testing.T) {
		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)
		env.resetTokens.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		env.mail.EXPECT().SendHTML(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		resp := postJSON(t, env.app, "/reset-password/request", dto.ResetRequestInput{Email: "test@example.com"})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "If that email exists, a reset link has been sent", decodeBody(t, resp)["message"])
	})

	t.Run("unknown email returns the identical response", func(t *testing.T) {
		env.repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		resp := postJSON(t, env.app, "/reset-password/request", dto.ResetRequestInput{Email: "nobody@example.com"})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "If that email exists, a reset link has been sent", decodeBody(t, resp)["message"])
	})
}

func TestResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newAuthTestEnv(ctrl)

	t.Run("success", func(t *testing.T) {
		reset := &domain.ResetToken{Token: "reset-token", UserID: "user-id", ExpiresAt: time.Now().Add(time.Hour)}

		env.resetTokens.EXPECT().GetValid(gomock.Any(), "reset-token").Return(reset, nil)
		env.resetTokens.EXPECT().Consume(gomock.Any(), "reset-token").Return(true, nil)
		env.repo.EXPECT().UpdatePasswordHash(gomock.Any(), "user-id", gomock.Any()).Return(nil)
		env.sessions.EXPECT().RevokeAll(gomock.Any(), "user-id").Return(nil)

		resp := postJSON(t, env.app, "/reset-password/reset", dto.ResetPasswordInput{
			Token:       "reset-token",
			NewPassword: "new-password-123",
		})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		env.resetTokens.EXPECT().GetValid(gomock.Any(), "bad-token").Return(nil, nil)

		resp := postJSON(t, env.app, "/reset-password/reset", dto.ResetPasswordInput{
			Token:       "bad-token",
			NewPassword: "new-password-123",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid or expired reset token", decodeBody(t, resp)["error"])
	})

	t.Run("short password", func(t *testing.T) {
		resp := postJSON(t, env.app, "/reset-password/reset", dto.ResetPasswordInput{
			Token:       "reset-token",
			NewPassword: "short",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

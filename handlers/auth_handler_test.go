package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/usama228/AMS-Backend/config"
	"github.com/usama228/AMS-Backend/models"
	"github.com/usama228/AMS-Backend/pkg/password"
	"github.com/usama228/AMS-Backend/pkg/token"
)

func newAuthApp(userRepo *fakeUserRepo) (*fiber.App, *token.Maker) {
	maker := token.NewMaker(&config.AppConfig{JWT_SECRET: "0123456789abcdef0123456789abcdef"})
	h := NewAuthHandler(userRepo, maker)

	app := fiber.New()
	app.Post("/api/users/login", h.Login)
	app.Post("/api/users/logout", h.Logout)
	app.Post("/api/users/register", h.Register)
	return app, maker
}

func activeUser(t *testing.T, email, plain string) *models.User {
	t.Helper()
	hashed, err := password.HashPassword(plain)
	require.NoError(t, err)
	return &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Test User",
		Email:    email,
		Password: hashed,
		UserType: models.UserTypeEmployee,
		Status:   models.StatusActive,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := activeUser(t, "a@b.com", "secret-pass")
	app, maker := newAuthApp(&fakeUserRepo{users: []*models.User{user}})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/login",
		fiber.Map{"email": "a@b.com", "password": "secret-pass"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)

	tokenString, ok := data["token"].(string)
	require.True(t, ok)
	claims, err := maker.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.UserTypeEmployee, claims.UserType)

	returned, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, returned, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	user := activeUser(t, "a@b.com", "secret-pass")
	app, _ := newAuthApp(&fakeUserRepo{users: []*models.User{user}})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/login",
		fiber.Map{"email": "a@b.com", "password": "wrong"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", decodeEnvelope(t, resp)["message"])
}

func TestLoginUnknownEmail(t *testing.T) {
	app, _ := newAuthApp(&fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/login",
		fiber.Map{"email": "nobody@b.com", "password": "whatever"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginInactiveUser(t *testing.T) {
	user := activeUser(t, "a@b.com", "secret-pass")
	user.Status = models.StatusInactive
	app, _ := newAuthApp(&fakeUserRepo{users: []*models.User{user}})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/login",
		fiber.Map{"email": "a@b.com", "password": "secret-pass"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "User is inactive, contact admin", decodeEnvelope(t, resp)["message"])
}

func TestLoginTerminatedUser(t *testing.T) {
	user := activeUser(t, "a@b.com", "secret-pass")
	user.IsTerminated = true
	app, _ := newAuthApp(&fakeUserRepo{users: []*models.User{user}})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/login",
		fiber.Map{"email": "a@b.com", "password": "secret-pass"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRegisterDefaultsToEmployee(t *testing.T) {
	repo := &fakeUserRepo{}
	app, _ := newAuthApp(repo)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/register",
		fiber.Map{"name": "New User", "email": "new@b.com", "password": "long-enough"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, repo.users, 1)
	assert.Equal(t, models.UserTypeEmployee, repo.users[0].UserType)
	assert.Equal(t, models.StatusActive, repo.users[0].Status)
	assert.NotEqual(t, "long-enough", repo.users[0].Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{users: []*models.User{activeUser(t, "new@b.com", "x-password")}}
	app, _ := newAuthApp(repo)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/register",
		fiber.Map{"name": "New User", "email": "new@b.com", "password": "long-enough"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Len(t, repo.users, 1)
}

func TestLogout(t *testing.T) {
	app, _ := newAuthApp(&fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logout successful", decodeEnvelope(t, resp)["message"])
}

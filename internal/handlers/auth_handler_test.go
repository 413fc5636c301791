package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymstack/gym-manager/internal/config"
	"github.com/gymstack/gym-manager/internal/handlers"
	"github.com/gymstack/gym-manager/internal/models"
)

func authRouter(e *env, userID uint) *gin.Engine {
	cfg := &config.Config{JWTSecret: "test-secret"}
	h := handlers.NewAuthHandler(e.db, cfg, e.aud)
	r := e.router(userID, models.RoleAdmin)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/change-password", h.ChangePassword)
	return r
}

func TestLogin_OK(t *testing.T) {
	e := newEnv(t)
	r := authRouter(e, 1)
	createUser(t, e, "root", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"username": "root",
		"password": "password",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "root", user["username"])
	assert.Equal(t, models.RoleAdmin, user["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	e := newEnv(t)
	r := authRouter(e, 1)
	createUser(t, e, "root", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"username": "root",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeBody(t, w)["error"])
}

func TestLogin_UnknownUser(t *testing.T) {
	e := newEnv(t)
	r := authRouter(e, 1)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"username": "ghost",
		"password": "password",
	})

	// Same answer as a bad password, so usernames cannot be probed.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeBody(t, w)["error"])
}

func TestChangePassword(t *testing.T) {
	e := newEnv(t)
	r := authRouter(e, 1)
	createUser(t, e, "root", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/auth/change-password", gin.H{
		"current_password": "wrong",
		"new_password":     "newsecret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/change-password", gin.H{
		"current_password": "password",
		"new_password":     "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/change-password", gin.H{
		"current_password": "password",
		"new_password":     "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, e.db.First(&user, 1).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newsecret")))
}

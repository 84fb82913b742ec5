package controllers_test

import (
	"net/http"
	"testing"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", body{
		"username": "new_user",
		"email":    "new@example.com",
		"password": "strong-password",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	payload := decodeJSON(t, w)
	assert.NotEmpty(t, payload["token"])

	var user models.User
	require.NoError(t, config.DB.Where("username = ?", "new_user").First(&user).Error)
	assert.NotEqual(t, "strong-password", user.PasswordHash)

	// 注册后可以直接登录
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", body{
		"username": "new_user",
		"password": "strong-password",
	})
	require.Equal(t, http.StatusOK, w.Code)
	payload = decodeJSON(t, w)
	assert.NotEmpty(t, payload["token"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := setupRouter(t)

	first := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", body{
		"username": "new_user",
		"email":    "first@example.com",
		"password": "strong-password",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", body{
		"username": "new_user",
		"email":    "second@example.com",
		"password": "strong-password",
	})
	assert.Equal(t, http.StatusBadRequest, second.Code)
}

func TestLoginWithWrongPassword(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", body{
		"username": "new_user",
		"email":    "new@example.com",
		"password": "strong-password",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", body{
		"username": "new_user",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUsersListSearch(t *testing.T) {
	r := setupRouter(t)
	first := createUser(t, "first_test_user", "first@example.com")
	createUser(t, "second_test_user", "second@example.com")
	createUser(t, "another_person", "another@example.com")

	// 未认证
	w := doJSON(t, r, http.MethodGet, "/api/v1/users/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/?search=test_user", authToken(t, first), nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decodePage(t, w)
	assert.EqualValues(t, 2, page.Count)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/"+first.ID, authToken(t, first), nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload := decodeJSON(t, w)
	assert.Equal(t, "first_test_user", payload["username"])
	// 用户响应不暴露邮箱和密码
	assert.NotContains(t, payload, "email")
	assert.NotContains(t, payload, "password")
}

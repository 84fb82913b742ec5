package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"TaskHubGo/routes"
	"TaskHubGo/services"
	"TaskHubGo/storage"
	"TaskHubGo/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter 基于内存数据库构建完整路由
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
	utils.InitJWT("test-secret")

	// 每个测试使用独立的内存数据库
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", utils.GenerateID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateDB(db))
	config.DB = db

	r := gin.New()
	routes.RegisterRoutes(r, services.NopNotifier{}, storage.NewFileStorage(t.TempDir()))
	return r
}

func createUser(t *testing.T, username, email string) models.User {
	t.Helper()
	user := models.User{
		ID:       utils.GenerateID(),
		Username: username,
		Email:    email,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{
		ID:   utils.GenerateID(),
		Name: name,
	}
	require.NoError(t, config.DB.Create(&category).Error)
	return category
}

func createTask(t *testing.T, title string, category models.Category, creator, assignee models.User, priority int) models.Task {
	t.Helper()
	task := models.Task{
		ID:           utils.GenerateID(),
		Title:        title,
		Description:  title + "的描述",
		DueDate:      time.Now().Add(24 * time.Hour),
		Priority:     priority,
		CategoryID:   category.ID,
		CreatorID:    creator.ID,
		AssignedToID: assignee.ID,
	}
	require.NoError(t, config.DB.Create(&task).Error)
	return task
}

func authToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID)
	require.NoError(t, err)
	return "Bearer " + token
}

// doJSON 发送JSON请求，token为空表示匿名访问
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// body 测试请求体的简写
type body = map[string]interface{}

// pageEnvelope 分页响应的解码结构
type pageEnvelope struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []json.RawMessage `json:"results"`
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) pageEnvelope {
	t.Helper()
	var page pageEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	return page
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

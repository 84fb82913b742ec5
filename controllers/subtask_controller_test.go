package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"TaskHubGo/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSubtask(t *testing.T, title string, parent models.Task, creator models.User) models.Subtask {
	t.Helper()
	subtask := models.Subtask{
		ID:        utils.GenerateID(),
		Title:     title,
		TaskID:    parent.ID,
		CreatorID: creator.ID,
	}
	require.NoError(t, config.DB.Create(&subtask).Error)
	return subtask
}

func TestSubtaskListByGuest(t *testing.T) {
	r := setupRouter(t)
	user := createUser(t, "first_test_user", "first@example.com")
	category := createCategory(t, "第一个分类")
	task := createTask(t, "API", category, user, user, models.PriorityLow)

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks/"+task.ID+"/subtasks/", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubtaskCreateByTaskCreator(t *testing.T) {
	r := setupRouter(t)
	creator := createUser(t, "first_test_user", "first@example.com")
	assignee := createUser(t, "second_test_user", "second@example.com")
	category := createCategory(t, "第一个分类")
	task := createTask(t, "API", category, creator, assignee, models.PriorityLow)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/"+task.ID+"/subtasks/", authToken(t, creator), body{
		"title":       "编写文档",
		"description": "整理接口说明。",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	payload := decodeJSON(t, w)
	assert.Equal(t, "编写文档", payload["title"])

	var subtask models.Subtask
	require.NoError(t, config.DB.First(&subtask, "id = ?", payload["id"]).Error)
	assert.Equal(t, task.ID, subtask.TaskID)
	assert.Equal(t, creator.ID, subtask.CreatorID)
}

func TestSubtaskCreateByAssignee(t *testing.T) {
	r := setupRouter(t)
	creator := createUser(t, "first_test_user", "first@example.com")
	assignee := createUser(t, "second_test_user", "second@example.com")
	category := createCategory(t, "第一个分类")
	task := createTask(t, "API", category, creator, assignee, models.PriorityLow)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/"+task.ID+"/subtasks/", authToken(t, assignee), body{
		"title": "执行人添加的子任务",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubtaskCreateByOutsider(t *testing.T) {
	r := setupRouter(t)
	creator := createUser(t, "first_test_user", "first@example.com")
	assignee := createUser(t, "second_test_user", "second@example.com")
	outsider := createUser(t, "third_test_user", "third@example.com")
	category := createCategory(t, "第一个分类")
	task := createTask(t, "API", category, creator, assignee, models.PriorityLow)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/"+task.ID+"/subtasks/", authToken(t, outsider), body{
		"title": "越权的子任务",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	payload := decodeJSON(t, w)
	assert.Contains(t, payload, "error")

	var count int64
	require.NoError(t, config.DB.Model(&models.Subtask{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSubtaskCreateOnMissingTask(t *testing.T) {
	r := setupRouter(t)
	user := createUser(t, "first_test_user", "first@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/missing/subtasks/", authToken(t, user), body{
		"title": "子任务",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubtaskList(t *testing.T) {
	r := setupRouter(t)
	creator := createUser(t, "first_test_user", "first@example.com")
	category := createCategory(t, "第一个分类")
	task := createTask(t, "API", category, creator, creator, models.PriorityLow)
	other := createTask(t, "其它任务", category, creator, creator, models.PriorityLow)

	createSubtask(t, "子任务一", task, creator)
	createSubtask(t, "子任务二", task, creator)
	createSubtask(t, "别的子任务", other, creator)

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks/"+task.ID+"/subtasks/", authToken(t, creator), nil)

	require.Equal(t, http.StatusOK, w.Code)
	page := decodePage(t, w)
	assert.EqualValues(t, 2, page.Count)
}

func TestSubtaskUpdateByParentTaskCreator(t *testing.T) {
	r := setupRouter(t)
	creator := createUser(t, "first_test_user", "first@example.com")
	assignee := createUser(t, "second_test_user", "second@example.com")
	category := createCategory(t, "第一个分类")
	task := createTask(t, "API", category, creator, assignee, models.PriorityLow)
	subtask := createSubtask(t, "执行人创建的子任务", task, assignee)

	// 父任务创建者可以修改别人创建的子任务
	w := doJSON(t, r, http.MethodPatch, "/api/v1/tasks/"+task.ID+"/subtasks/"+subtask.ID, authToken(t, creator), body{
		"is_completed": true,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Subtask
	require.NoError(t, config.DB.First(&updated, "id = ?", subtask.ID).Error)
	assert.True(t, updated.IsCompleted)
}

func TestSubtaskUpdateByOutsiderForbidden(t *testing.T) {
	r := setupRouter(t)
	creator := createUser(t, "first_test_user", "first@example.com")
	outsider := createUser(t, "third_test_user", "third@example.com")
	category := createCategory(t, "第一个分类")
	task := createTask(t, "API", category, creator, creator, models.PriorityLow)
	subtask := createSubtask(t, "子任务", task, creator)

	// 子任务在父任务范围内可见，但无权操作时返回403
	w := doJSON(t, r, http.MethodPatch, "/api/v1/tasks/"+task.ID+"/subtasks/"+subtask.ID, authToken(t, outsider), body{
		"is_completed": true,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var unchanged models.Subtask
	require.NoError(t, config.DB.First(&unchanged, "id = ?", subtask.ID).Error)
	assert.False(t, unchanged.IsCompleted)
}

func TestSubtaskListIncludedInTaskResponse(t *testing.T) {
	r := setupRouter(t)
	creator := createUser(t, "first_test_user", "first@example.com")
	category := createCategory(t, "第一个分类")
	task := createTask(t, "API", category, creator, creator, models.PriorityLow)
	subtask := createSubtask(t, "子任务", task, creator)

	w := doJSON(t, r, http.MethodGet, "/api/v1/creation-tasks/"+task.ID, authToken(t, creator), nil)

	require.Equal(t, http.StatusOK, w.Code)
	payload := decodeJSON(t, w)
	subtasks, ok := payload["subtasks"].([]interface{})
	require.True(t, ok)
	require.Len(t, subtasks, 1)

	var item map[string]interface{}
	raw, err := json.Marshal(subtasks[0])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &item))
	assert.Equal(t, subtask.ID, item["id"])
}

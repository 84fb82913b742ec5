package controllers

import (
	"net/http"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"TaskHubGo/permissions"
	"TaskHubGo/utils"
	"github.com/gin-gonic/gin"
)

// SubtaskController 子任务控制器，挂在父任务路径下
type SubtaskController struct{}

// parentTask 按路径参数加载父任务
func (sc *SubtaskController) parentTask(c *gin.Context) (models.Task, bool) {
	var task models.Task
	if err := config.DB.First(&task, "id = ?", c.Param("task_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "任务未找到"})
		return task, false
	}
	return task, true
}

// List 父任务下的子任务列表
func (sc *SubtaskController) List(c *gin.Context) {
	parent, ok := sc.parentTask(c)
	if !ok {
		return
	}

	query := config.DB.Model(&models.Subtask{}).Where("task_id = ?", parent.ID)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		config.Logger.Errorw("获取子任务列表失败", "error", err, "taskID", parent.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取子任务列表失败"})
		return
	}

	page, pageSize := utils.PageParams(c)
	var subtasks []models.Subtask
	if err := query.Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&subtasks).Error; err != nil {
		config.Logger.Errorw("获取子任务列表失败", "error", err, "taskID", parent.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取子任务列表失败"})
		return
	}

	results := make([]models.SubtaskResponse, 0, len(subtasks))
	for _, subtask := range subtasks {
		results = append(results, models.NewSubtaskResponse(subtask))
	}
	c.JSON(http.StatusOK, utils.NewPage(c, page, pageSize, count, results))
}

// Create 创建子任务，只允许父任务的创建者或执行人操作
func (sc *SubtaskController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	parent, ok := sc.parentTask(c)
	if !ok {
		return
	}

	var req models.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !permissions.CanCreateSubtask(uid, parent) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "子任务只能由任务的创建者或任务的执行人添加。",
		})
		return
	}

	subtask := models.Subtask{
		ID:          utils.GenerateID(),
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		TaskID:      parent.ID,
		CreatorID:   uid,
	}
	if err := config.DB.Create(&subtask).Error; err != nil {
		config.Logger.Errorw("创建子任务失败", "error", err, "taskID", parent.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建子任务失败"})
		return
	}

	c.JSON(http.StatusCreated, models.NewSubtaskResponse(subtask))
}

// Retrieve 查看单个子任务
func (sc *SubtaskController) Retrieve(c *gin.Context) {
	uid := c.GetString("uid")

	parent, ok := sc.parentTask(c)
	if !ok {
		return
	}

	var subtask models.Subtask
	if err := config.DB.Where("task_id = ?", parent.ID).
		First(&subtask, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "子任务未找到"})
		return
	}

	if !permissions.IsSubtaskEditor(uid, subtask, parent) {
		c.JSON(http.StatusForbidden, gin.H{"error": "没有操作该子任务的权限"})
		return
	}
	c.JSON(http.StatusOK, models.NewSubtaskResponse(subtask))
}

// Update 更新子任务，只允许子任务创建者或父任务创建者操作
func (sc *SubtaskController) Update(c *gin.Context) {
	uid := c.GetString("uid")

	parent, ok := sc.parentTask(c)
	if !ok {
		return
	}

	var subtask models.Subtask
	if err := config.DB.Where("task_id = ?", parent.ID).
		First(&subtask, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "子任务未找到"})
		return
	}

	if !permissions.IsSubtaskEditor(uid, subtask, parent) {
		c.JSON(http.StatusForbidden, gin.H{"error": "没有操作该子任务的权限"})
		return
	}

	var req models.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		subtask.Title = *req.Title
	}
	if req.Description != nil {
		subtask.Description = *req.Description
	}
	if req.IsCompleted != nil {
		subtask.IsCompleted = *req.IsCompleted
	}

	if err := config.DB.Save(&subtask).Error; err != nil {
		config.Logger.Errorw("更新子任务失败", "error", err, "subtaskID", subtask.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新子任务失败"})
		return
	}

	c.JSON(http.StatusOK, models.NewSubtaskResponse(subtask))
}

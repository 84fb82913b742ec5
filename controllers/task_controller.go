package controllers

import (
	"net/http"
	"time"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"TaskHubGo/services"
	"TaskHubGo/storage"
	"TaskHubGo/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TaskController 创建者视角的任务控制器
type TaskController struct {
	notifier services.Notifier
	storage  *storage.FileStorage
}

func NewTaskController(notifier services.Notifier, storage *storage.FileStorage) *TaskController {
	return &TaskController{notifier: notifier, storage: storage}
}

// scoped 只暴露当前用户创建的任务，范围之外的对象一律按不存在处理
func (tc *TaskController) scoped(uid string) *gorm.DB {
	return config.DB.Model(&models.Task{}).Where("tasks.creator_id = ?", uid)
}

// List 当前用户创建的任务列表
func (tc *TaskController) List(c *gin.Context) {
	uid := c.GetString("uid")
	query := filterTasksByCategory(c, tc.scoped(uid))

	var count int64
	if err := query.Count(&count).Error; err != nil {
		config.Logger.Errorw("获取任务列表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取任务列表失败"})
		return
	}

	page, pageSize := utils.PageParams(c)
	var tasks []models.Task
	if err := preloadTaskRelations(orderTasks(c, query)).
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&tasks).Error; err != nil {
		config.Logger.Errorw("获取任务列表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取任务列表失败"})
		return
	}

	results := make([]models.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, models.NewTaskResponse(task, tc.storage.ResolveURL(c, task.FilePath)))
	}
	c.JSON(http.StatusOK, utils.NewPage(c, page, pageSize, count, results))
}

// Retrieve 查看单个任务
func (tc *TaskController) Retrieve(c *gin.Context) {
	uid := c.GetString("uid")

	var task models.Task
	if err := preloadTaskRelations(tc.scoped(uid)).
		First(&task, "tasks.id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "任务未找到"})
		return
	}
	c.JSON(http.StatusOK, models.NewTaskResponse(task, tc.storage.ResolveURL(c, task.FilePath)))
}

// Create 创建任务，创建者为当前用户，成功后异步通知执行人
func (tc *TaskController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := req.Validate(time.Now()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"category": "指定的分类不存在。"})
		return
	}
	var assignee models.User
	if err := config.DB.First(&assignee, "id = ?", req.AssignedToID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"assigned_to": "指定的执行人不存在。"})
		return
	}

	task := models.Task{
		ID:           utils.GenerateID(),
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Priority:     req.Priority,
		IsCompleted:  req.IsCompleted,
		CategoryID:   category.ID,
		CreatorID:    uid,
		AssignedToID: assignee.ID,
	}

	if file, err := c.FormFile("file"); err == nil {
		relPath, err := tc.storage.SaveTaskFile(file)
		if err != nil {
			config.Logger.Errorw("附件保存失败", "error", err, "uid", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "附件保存失败"})
			return
		}
		task.FilePath = relPath
	}

	if err := config.DB.Create(&task).Error; err != nil {
		config.Logger.Errorw("创建任务失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建任务失败"})
		return
	}

	// 通知入队失败不影响本次请求
	tc.notifier.NotifyTaskCreated(task.ID)

	tc.respondWithTask(c, http.StatusCreated, task.ID, uid)
}

// Update 创建者更新任务，支持部分更新
func (tc *TaskController) Update(c *gin.Context) {
	uid := c.GetString("uid")

	var task models.Task
	if err := tc.scoped(uid).First(&task, "tasks.id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "任务未找到"})
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := req.Validate(time.Now()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := config.DB.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"category": "指定的分类不存在。"})
			return
		}
		task.CategoryID = category.ID
	}
	if req.AssignedToID != nil {
		var assignee models.User
		if err := config.DB.First(&assignee, "id = ?", *req.AssignedToID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"assigned_to": "指定的执行人不存在。"})
			return
		}
		task.AssignedToID = assignee.ID
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}

	if file, err := c.FormFile("file"); err == nil {
		relPath, err := tc.storage.SaveTaskFile(file)
		if err != nil {
			config.Logger.Errorw("附件保存失败", "error", err, "uid", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "附件保存失败"})
			return
		}
		task.FilePath = relPath
	}

	if err := config.DB.Save(&task).Error; err != nil {
		config.Logger.Errorw("更新任务失败", "error", err, "taskID", task.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新任务失败"})
		return
	}

	tc.respondWithTask(c, http.StatusOK, task.ID, uid)
}

// respondWithTask 重新加载关联对象后按读取格式返回任务
func (tc *TaskController) respondWithTask(c *gin.Context, status int, taskID, uid string) {
	var task models.Task
	if err := preloadTaskRelations(tc.scoped(uid)).First(&task, "tasks.id = ?", taskID).Error; err != nil {
		config.Logger.Errorw("获取任务失败", "error", err, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取任务失败"})
		return
	}
	c.JSON(status, models.NewTaskResponse(task, tc.storage.ResolveURL(c, task.FilePath)))
}

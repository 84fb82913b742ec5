package controllers

import (
	"net/http"
	"time"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"TaskHubGo/storage"
	"TaskHubGo/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AssignedTaskController 执行人视角的任务控制器。
// 只能查看和有限地更新指派给自己的任务，不能创建。
type AssignedTaskController struct {
	storage *storage.FileStorage
}

func NewAssignedTaskController(storage *storage.FileStorage) *AssignedTaskController {
	return &AssignedTaskController{storage: storage}
}

func (ac *AssignedTaskController) scoped(uid string) *gorm.DB {
	return config.DB.Model(&models.Task{}).Where("tasks.assigned_to_id = ?", uid)
}

// List 指派给当前用户的任务列表
func (ac *AssignedTaskController) List(c *gin.Context) {
	uid := c.GetString("uid")
	query := filterTasksByCategory(c, ac.scoped(uid))

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
		results = append(results, models.NewTaskResponse(task, ac.storage.ResolveURL(c, task.FilePath)))
	}
	c.JSON(http.StatusOK, utils.NewPage(c, page, pageSize, count, results))
}

// Retrieve 查看指派给自己的单个任务
func (ac *AssignedTaskController) Retrieve(c *gin.Context) {
	uid := c.GetString("uid")

	var task models.Task
	if err := preloadTaskRelations(ac.scoped(uid)).
		First(&task, "tasks.id = ?", c.Param("task_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "任务未找到"})
		return
	}
	c.JSON(http.StatusOK, models.NewTaskResponse(task, ac.storage.ResolveURL(c, task.FilePath)))
}

// Update 执行人更新任务。
// 只接受截止时间、附件和完成状态，提交的其它字段忽略而不报错。
func (ac *AssignedTaskController) Update(c *gin.Context) {
	uid := c.GetString("uid")

	var task models.Task
	if err := ac.scoped(uid).First(&task, "tasks.id = ?", c.Param("task_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "任务未找到"})
		return
	}

	var req models.UpdateAssignedTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := req.Validate(time.Now()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}

	if file, err := c.FormFile("file"); err == nil {
		relPath, err := ac.storage.SaveTaskFile(file)
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

	var updated models.Task
	if err := preloadTaskRelations(ac.scoped(uid)).First(&updated, "tasks.id = ?", task.ID).Error; err != nil {
		config.Logger.Errorw("获取任务失败", "error", err, "taskID", task.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取任务失败"})
		return
	}
	c.JSON(http.StatusOK, models.NewTaskResponse(updated, ac.storage.ResolveURL(c, updated.FilePath)))
}

// Statistics 基于指派给当前用户的全部任务计算统计指标
func (ac *AssignedTaskController) Statistics(c *gin.Context) {
	uid := c.GetString("uid")

	var tasks []models.Task
	if err := ac.scoped(uid).Find(&tasks).Error; err != nil {
		config.Logger.Errorw("获取任务统计失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取任务统计失败"})
		return
	}
	c.JSON(http.StatusOK, models.NewStatisticsResponse(tasks))
}

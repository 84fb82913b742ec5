package controllers

import (
	"TaskHubGo/config"
	"TaskHubGo/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// filterTasksByCategory 按分类名称精确过滤任务
func filterTasksByCategory(c *gin.Context, query *gorm.DB) *gorm.DB {
	if category := c.Query("category"); category != "" {
		sub := config.DB.Model(&models.Category{}).Select("id").Where("name = ?", category)
		query = query.Where("tasks.category_id IN (?)", sub)
	}
	return query
}

// orderTasks 处理ordering参数，`-`前缀表示降序，创建时间为兜底排序
func orderTasks(c *gin.Context, query *gorm.DB) *gorm.DB {
	switch c.Query("ordering") {
	case "priority":
		query = query.Order("tasks.priority ASC")
	case "-priority":
		query = query.Order("tasks.priority DESC")
	}
	return query.Order("tasks.created_at DESC")
}

// preloadTaskRelations 预加载任务响应需要的关联对象
func preloadTaskRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Category").
		Preload("Creator").
		Preload("AssignedTo").
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		})
}

package controllers

import (
	"net/http"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"TaskHubGo/utils"
	"github.com/gin-gonic/gin"
)

// UserController 用户控制器，只读
type UserController struct{}

// List 用户列表，支持按用户名搜索
func (uc *UserController) List(c *gin.Context) {
	query := config.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		query = query.Where("username LIKE ?", "%"+search+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		config.Logger.Errorw("获取用户列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户列表失败"})
		return
	}

	page, pageSize := utils.PageParams(c)
	var users []models.User
	if err := query.Order("username ASC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&users).Error; err != nil {
		config.Logger.Errorw("获取用户列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户列表失败"})
		return
	}

	results := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		results = append(results, models.NewUserResponse(user))
	}
	c.JSON(http.StatusOK, utils.NewPage(c, page, pageSize, count, results))
}

// Retrieve 查看单个用户
func (uc *UserController) Retrieve(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "用户未找到"})
		return
	}
	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

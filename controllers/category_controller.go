package controllers

import (
	"net/http"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"TaskHubGo/utils"
	"github.com/gin-gonic/gin"
)

// CategoryController 分类控制器
type CategoryController struct{}

// List 分类列表，无需认证，支持按名称搜索
func (cc *CategoryController) List(c *gin.Context) {
	query := config.DB.Model(&models.Category{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		config.Logger.Errorw("获取分类列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取分类列表失败"})
		return
	}

	page, pageSize := utils.PageParams(c)
	var categories []models.Category
	if err := query.Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&categories).Error; err != nil {
		config.Logger.Errorw("获取分类列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取分类列表失败"})
		return
	}

	results := make([]models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		results = append(results, models.NewCategoryResponse(category))
	}
	c.JSON(http.StatusOK, utils.NewPage(c, page, pageSize, count, results))
}

// Create 创建分类，需要认证
func (cc *CategoryController) Create(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		ID:   utils.GenerateID(),
		Name: req.Name,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		config.Logger.Errorw("创建分类失败", "error", err, "name", req.Name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建分类失败"})
		return
	}

	c.JSON(http.StatusCreated, models.NewCategoryResponse(category))
}

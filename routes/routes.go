package routes

import (
	"TaskHubGo/controllers"
	"TaskHubGo/middleware"
	"TaskHubGo/services"
	"TaskHubGo/storage"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, notifier services.Notifier, store *storage.FileStorage) {
	authController := controllers.AuthController{}
	categoryController := controllers.CategoryController{}
	userController := controllers.UserController{}
	taskController := controllers.NewTaskController(notifier, store)
	assignedTaskController := controllers.NewAssignedTaskController(store)
	subtaskController := controllers.SubtaskController{}

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.GET("/category/", categoryController.List)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		private.POST("/category/", categoryController.Create)

		private.GET("/users/", userController.List)
		private.GET("/users/:id", userController.Retrieve)

		// 执行人视角
		private.GET("/tasks/", assignedTaskController.List)
		private.GET("/tasks/statistics", assignedTaskController.Statistics)
		private.GET("/tasks/:task_id", assignedTaskController.Retrieve)
		private.PUT("/tasks/:task_id", assignedTaskController.Update)
		private.PATCH("/tasks/:task_id", assignedTaskController.Update)

		// 创建者视角
		private.GET("/creation-tasks/", taskController.List)
		private.POST("/creation-tasks/", taskController.Create)
		private.GET("/creation-tasks/:id", taskController.Retrieve)
		private.PUT("/creation-tasks/:id", taskController.Update)
		private.PATCH("/creation-tasks/:id", taskController.Update)

		// 子任务
		private.GET("/tasks/:task_id/subtasks/", subtaskController.List)
		private.POST("/tasks/:task_id/subtasks/", subtaskController.Create)
		private.GET("/tasks/:task_id/subtasks/:id", subtaskController.Retrieve)
		private.PUT("/tasks/:task_id/subtasks/:id", subtaskController.Update)
		private.PATCH("/tasks/:task_id/subtasks/:id", subtaskController.Update)
	}

	// 媒体文件
	r.Static(storage.URLPrefix, store.Root)

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

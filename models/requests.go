package models

import (
	"time"
)

// 请求处理可能晚于客户端填表，截止时间校验留一分钟余量
const dueDateGrace = time.Minute

// RegisterRequest 注册请求结构体
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateCategoryRequest 创建分类请求结构体
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=128"`
}

// CreateTaskRequest 创建任务请求结构体
type CreateTaskRequest struct {
	Title        string    `json:"title" form:"title" binding:"required,max=128"`
	Description  string    `json:"description" form:"description"`
	DueDate      time.Time `json:"due_date" form:"due_date" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	CategoryID   string    `json:"category" form:"category" binding:"required"`
	AssignedToID string    `json:"assigned_to" form:"assigned_to" binding:"required"`
	Priority     int       `json:"priority" form:"priority"`
	IsCompleted  bool      `json:"is_completed" form:"is_completed"`
}

// Validate 校验字段取值，返回字段到错误信息的映射
func (r *CreateTaskRequest) Validate(now time.Time) map[string]string {
	errs := make(map[string]string)
	if r.DueDate.Before(now.Add(-dueDateGrace)) {
		errs["due_date"] = "任务的截止时间不能早于当前时间。"
	}
	if !ValidPriority(r.Priority) {
		errs["priority"] = "无效的优先级。"
	}
	return errs
}

// UpdateTaskRequest 创建者更新任务请求结构体，未提交的字段保持原值
type UpdateTaskRequest struct {
	Title        *string    `json:"title" form:"title"`
	Description  *string    `json:"description" form:"description"`
	DueDate      *time.Time `json:"due_date" form:"due_date" time_format:"2006-01-02T15:04:05Z07:00"`
	CategoryID   *string    `json:"category" form:"category"`
	AssignedToID *string    `json:"assigned_to" form:"assigned_to"`
	Priority     *int       `json:"priority" form:"priority"`
	IsCompleted  *bool      `json:"is_completed" form:"is_completed"`
}

func (r *UpdateTaskRequest) Validate(now time.Time) map[string]string {
	errs := make(map[string]string)
	if r.DueDate != nil && r.DueDate.Before(now.Add(-dueDateGrace)) {
		errs["due_date"] = "任务的截止时间不能早于当前时间。"
	}
	if r.Priority != nil && !ValidPriority(*r.Priority) {
		errs["priority"] = "无效的优先级。"
	}
	return errs
}

// UpdateAssignedTaskRequest 执行人更新任务请求结构体。
// 只绑定截止时间、附件和完成状态，提交的其它字段一律忽略。
type UpdateAssignedTaskRequest struct {
	DueDate     *time.Time `json:"due_date" form:"due_date" time_format:"2006-01-02T15:04:05Z07:00"`
	IsCompleted *bool      `json:"is_completed" form:"is_completed"`
}

func (r *UpdateAssignedTaskRequest) Validate(now time.Time) map[string]string {
	errs := make(map[string]string)
	if r.DueDate != nil && r.DueDate.Before(now.Add(-dueDateGrace)) {
		errs["due_date"] = "任务的截止时间不能早于当前时间。"
	}
	return errs
}

// CreateSubtaskRequest 创建子任务请求结构体，父任务由路径参数指定
type CreateSubtaskRequest struct {
	Title       string `json:"title" binding:"required,max=128"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

// UpdateSubtaskRequest 更新子任务请求结构体
type UpdateSubtaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
}

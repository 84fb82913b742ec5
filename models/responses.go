package models

import "time"

// UserResponse 用户响应结构体
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CategoryResponse 分类响应结构体
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SubtaskResponse 子任务响应结构体
type SubtaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

// TaskResponse 任务响应结构体，关联对象展开为嵌套结构
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
	DueDate     time.Time         `json:"due_date"`
	Category    CategoryResponse  `json:"category"`
	File        *string           `json:"file"`
	Creator     UserResponse      `json:"creator"`
	AssignedTo  UserResponse      `json:"assigned_to"`
	Priority    string            `json:"priority"`
	Subtasks    []SubtaskResponse `json:"subtasks"`
	IsCompleted bool              `json:"is_completed"`
}

// StatisticsResponse 执行人任务统计响应结构体
type StatisticsResponse struct {
	TasksCount            int      `json:"tasks_count"`
	AverageTime           *float64 `json:"average_time"`
	CompletedTasksCount   int      `json:"completed_tasks_count"`
	UncompletedTasksCount int      `json:"uncompleted_tasks_count"`
	OverdueTasksCount     int      `json:"overdue_tasks_count"`
}

// PageResponse 分页响应结构体
type PageResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewUserResponse 构造用户响应
func NewUserResponse(user User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

// NewCategoryResponse 构造分类响应
func NewCategoryResponse(category Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

// NewSubtaskResponse 构造子任务响应
func NewSubtaskResponse(subtask Subtask) SubtaskResponse {
	return SubtaskResponse{
		ID:          subtask.ID,
		Title:       subtask.Title,
		Description: subtask.Description,
		IsCompleted: subtask.IsCompleted,
	}
}

// NewTaskResponse 构造任务响应，fileURL为附件的绝对地址，无附件时为nil
func NewTaskResponse(task Task, fileURL *string) TaskResponse {
	subtasks := make([]SubtaskResponse, 0, len(task.Subtasks))
	for _, subtask := range task.Subtasks {
		subtasks = append(subtasks, NewSubtaskResponse(subtask))
	}

	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
		Category:    NewCategoryResponse(task.Category),
		File:        fileURL,
		Creator:     NewUserResponse(task.Creator),
		AssignedTo:  NewUserResponse(task.AssignedTo),
		Priority:    task.PriorityLabel(),
		Subtasks:    subtasks,
		IsCompleted: task.IsCompleted,
	}
}

// NewStatisticsResponse 基于执行人名下的任务集合计算统计指标
func NewStatisticsResponse(tasks []Task) StatisticsResponse {
	stats := StatisticsResponse{TasksCount: len(tasks)}

	var totalSeconds float64
	for _, task := range tasks {
		if task.IsCompleted {
			stats.CompletedTasksCount++
			if task.FinishDate != nil {
				totalSeconds += task.FinishDate.Sub(task.CreatedAt).Seconds()
			}
		} else {
			stats.UncompletedTasksCount++
		}
		if task.FinishDate != nil && task.FinishDate.After(task.DueDate) {
			stats.OverdueTasksCount++
		}
	}

	if stats.CompletedTasksCount > 0 {
		average := totalSeconds / float64(stats.CompletedTasksCount)
		stats.AverageTime = &average
	}
	return stats
}

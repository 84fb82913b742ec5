package models

import (
	"time"

	"gorm.io/gorm"
)

// 任务优先级
const (
	PriorityLow    = 0
	PriorityMedium = 1
	PriorityHigh   = 2
)

var priorityLabels = map[int]string{
	PriorityLow:    "低",
	PriorityMedium: "中",
	PriorityHigh:   "高",
}

// Task 任务模型
type Task struct {
	ID           string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title        string     `gorm:"type:varchar(128)" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	IsCompleted  bool       `gorm:"default:false" json:"isCompleted"`
	CreatedAt    time.Time  `json:"createdAt"`
	DueDate      time.Time  `json:"dueDate"`
	FinishDate   *time.Time `json:"finishDate"`
	Priority     int        `gorm:"default:0" json:"priority"`
	FilePath     string     `gorm:"type:varchar(255)" json:"filePath"`
	CategoryID   string     `gorm:"type:varchar(50);index" json:"category_id"`
	CreatorID    string     `gorm:"type:varchar(50);index" json:"creator_id"`
	AssignedToID string     `gorm:"type:varchar(50);index" json:"assigned_to_id"`

	Category   Category  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Creator    User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
	AssignedTo User      `gorm:"foreignKey:AssignedToID;constraint:OnDelete:CASCADE" json:"-"`
	Subtasks   []Subtask `gorm:"foreignKey:TaskID" json:"-"`
}

// PriorityLabel 返回优先级的可读名称
func (t *Task) PriorityLabel() string {
	if label, ok := priorityLabels[t.Priority]; ok {
		return label
	}
	return priorityLabels[PriorityLow]
}

// ValidPriority 检查优先级取值是否合法
func ValidPriority(p int) bool {
	_, ok := priorityLabels[p]
	return ok
}

// BeforeSave 首次完成任务时记录完成时间，此后不再变更
func (t *Task) BeforeSave(tx *gorm.DB) error {
	if t.IsCompleted && t.FinishDate == nil {
		now := time.Now()
		t.FinishDate = &now
	}
	return nil
}

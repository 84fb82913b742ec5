package models

// Subtask 子任务模型
type Subtask struct {
	ID          string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(128)" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	IsCompleted bool   `gorm:"default:false" json:"isCompleted"`
	TaskID      string `gorm:"type:varchar(50);index" json:"task_id"`
	CreatorID   string `gorm:"type:varchar(50);index" json:"creator_id"`

	Task    Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	Creator User `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
}

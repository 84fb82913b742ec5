package models

// Category 任务分类模型
type Category struct {
	ID   string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name string `gorm:"type:varchar(128)" json:"name"`
}

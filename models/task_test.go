package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Category{}, &Task{}, &Subtask{}))
	return db
}

func seedTask(t *testing.T, db *gorm.DB) Task {
	t.Helper()
	user := User{ID: uuid.New().String(), Username: "test_user", Email: "test@example.com"}
	require.NoError(t, db.Create(&user).Error)
	category := Category{ID: uuid.New().String(), Name: "分类"}
	require.NoError(t, db.Create(&category).Error)

	task := Task{
		ID:           uuid.New().String(),
		Title:        "任务",
		DueDate:      time.Now().Add(24 * time.Hour),
		CategoryID:   category.ID,
		CreatorID:    user.ID,
		AssignedToID: user.ID,
	}
	require.NoError(t, db.Create(&task).Error)
	return task
}

func TestFinishDateStampedOnFirstCompletion(t *testing.T) {
	db := newTestDB(t)
	task := seedTask(t, db)
	require.Nil(t, task.FinishDate)

	task.IsCompleted = true
	require.NoError(t, db.Save(&task).Error)
	require.NotNil(t, task.FinishDate)
	stamped := *task.FinishDate

	// 再次保存不重算
	time.Sleep(10 * time.Millisecond)
	task.Title = "改名"
	require.NoError(t, db.Save(&task).Error)

	var reloaded Task
	require.NoError(t, db.First(&reloaded, "id = ?", task.ID).Error)
	require.NotNil(t, reloaded.FinishDate)
	assert.True(t, stamped.Equal(*reloaded.FinishDate))
}

func TestFinishDateStampedWhenCreatedCompleted(t *testing.T) {
	db := newTestDB(t)
	user := User{ID: uuid.New().String(), Username: "test_user", Email: "test@example.com"}
	require.NoError(t, db.Create(&user).Error)
	category := Category{ID: uuid.New().String(), Name: "分类"}
	require.NoError(t, db.Create(&category).Error)

	task := Task{
		ID:           uuid.New().String(),
		Title:        "创建即完成",
		DueDate:      time.Now().Add(24 * time.Hour),
		IsCompleted:  true,
		CategoryID:   category.ID,
		CreatorID:    user.ID,
		AssignedToID: user.ID,
	}
	require.NoError(t, db.Create(&task).Error)
	assert.NotNil(t, task.FinishDate)
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "低", (&Task{Priority: PriorityLow}).PriorityLabel())
	assert.Equal(t, "中", (&Task{Priority: PriorityMedium}).PriorityLabel())
	assert.Equal(t, "高", (&Task{Priority: PriorityHigh}).PriorityLabel())
	// 非法取值回退到低优先级
	assert.Equal(t, "低", (&Task{Priority: 9}).PriorityLabel())

	assert.True(t, ValidPriority(PriorityHigh))
	assert.False(t, ValidPriority(3))
}

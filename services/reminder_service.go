package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"github.com/robfig/cron/v3"
)

// ReminderService 定时扫描逾期未完成的任务并入队提醒通知
type ReminderService struct {
	cron     *cron.Cron
	notifier Notifier
}

func NewReminderService(notifier Notifier, loc *time.Location) *ReminderService {
	return &ReminderService{
		cron:     cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		notifier: notifier,
	}
}

// ScheduleDaily 注册每天定时执行的扫描任务，时间格式HH:MM
func (s *ReminderService) ScheduleDaily(timeStr string) error {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return err
	}
	_, err = s.cron.AddFunc(spec, s.sweep)
	return err
}

func (s *ReminderService) Start() {
	s.cron.Start()
}

func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// sweep 扫描逾期未完成的任务
func (s *ReminderService) sweep() {
	var tasks []models.Task
	if err := config.DB.
		Where("is_completed = ? AND due_date < ?", false, time.Now()).
		Find(&tasks).Error; err != nil {
		config.Logger.Errorw("扫描逾期任务失败", "error", err)
		return
	}

	for _, task := range tasks {
		s.notifier.NotifyTaskOverdue(task.ID)
	}
	config.Logger.Infow("逾期任务扫描完成", "count", len(tasks))
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("无效的时间 %q，应为HH:MM格式", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("无效的小时: %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("无效的分钟: %q", timeStr)
	}
	// cron格式: 秒 分 时 日 月 周
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}

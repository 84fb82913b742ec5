package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"TaskHubGo/config"
	"TaskHubGo/models"
	"github.com/go-redis/redis/v8"
)

// NotificationWorker 消费通知队列并发送邮件的后台工作协程
type NotificationWorker struct {
	client *redis.Client
	mailer Mailer
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNotificationWorker(client *redis.Client, mailer Mailer) *NotificationWorker {
	return &NotificationWorker{client: client, mailer: mailer}
}

// Start 启动消费循环
func (w *NotificationWorker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	go w.loop(ctx)
}

// Stop 通知消费循环退出
func (w *NotificationWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

// Wait 等待消费循环结束
func (w *NotificationWorker) Wait() {
	w.wg.Wait()
}

func (w *NotificationWorker) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		res, err := w.client.BRPop(ctx, 5*time.Second, notificationQueueKey).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			config.Logger.Errorw("读取通知队列失败", "error", err)
			time.Sleep(time.Second)
			continue
		}

		var job NotificationJob
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			config.Logger.Errorw("通知消息解析失败", "error", err, "payload", res[1])
			continue
		}
		w.handle(job)
	}
}

func (w *NotificationWorker) handle(job NotificationJob) {
	var task models.Task
	if err := config.DB.
		Preload("Category").
		Preload("Creator").
		Preload("AssignedTo").
		First(&task, "id = ?", job.TaskID).Error; err != nil {
		// 任务可能在消费前已被级联删除
		config.Logger.Infow("通知对应的任务不存在", "taskID", job.TaskID, "kind", job.Kind)
		return
	}

	subject := "您有一个新的任务！"
	if job.Kind == NotificationOverdue {
		subject = "您有一个任务已经逾期！"
	}

	if err := w.mailer.Send(task.AssignedTo.Email, subject, notificationBody(task)); err != nil {
		config.Logger.Errorw("通知邮件发送失败",
			"error", err,
			"taskID", task.ID,
			"to", task.AssignedTo.Email,
			"kind", job.Kind,
		)
		return
	}

	config.Logger.Infow("通知邮件已发送",
		"taskID", task.ID,
		"to", task.AssignedTo.Email,
		"kind", job.Kind,
	)
}

func notificationBody(task models.Task) string {
	return fmt.Sprintf(
		"标题: %s\n分类: %s\n描述: %s\n创建时间: %s\n截止时间: %s\n优先级: %s\n创建者: %s\n",
		task.Title,
		task.Category.Name,
		task.Description,
		task.CreatedAt.Format(time.RFC3339),
		task.DueDate.Format(time.RFC3339),
		task.PriorityLabel(),
		task.Creator.Username,
	)
}

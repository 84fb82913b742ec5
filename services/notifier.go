package services

import (
	"context"
	"encoding/json"

	"TaskHubGo/config"
	"github.com/go-redis/redis/v8"
)

// 通知类型
const (
	NotificationAssigned = "assigned"
	NotificationOverdue  = "overdue"
)

// notificationQueueKey 通知队列的Redis键
const notificationQueueKey = "notifications:tasks"

// NotificationJob 通知队列中的消息结构体
type NotificationJob struct {
	TaskID string `json:"task_id"`
	Kind   string `json:"kind"`
}

// Notifier 通知入队接口。入队即发即弃，失败不向调用方暴露。
type Notifier interface {
	NotifyTaskCreated(taskID string)
	NotifyTaskOverdue(taskID string)
}

// RedisNotifier 把通知消息推入Redis队列，由后台工作协程消费
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func (n *RedisNotifier) NotifyTaskCreated(taskID string) {
	n.enqueue(taskID, NotificationAssigned)
}

func (n *RedisNotifier) NotifyTaskOverdue(taskID string) {
	n.enqueue(taskID, NotificationOverdue)
}

func (n *RedisNotifier) enqueue(taskID, kind string) {
	// 不阻塞触发请求
	go func() {
		payload, err := json.Marshal(NotificationJob{TaskID: taskID, Kind: kind})
		if err != nil {
			config.Logger.Errorw("通知消息序列化失败", "error", err, "taskID", taskID)
			return
		}
		if err := n.client.LPush(context.Background(), notificationQueueKey, payload).Err(); err != nil {
			config.Logger.Errorw("通知入队失败", "error", err, "taskID", taskID, "kind", kind)
		}
	}()
}

// NopNotifier 空实现，测试或关闭通知时使用
type NopNotifier struct{}

func (NopNotifier) NotifyTaskCreated(taskID string) {}

func (NopNotifier) NotifyTaskOverdue(taskID string) {}

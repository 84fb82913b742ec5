package permissions

import "TaskHubGo/models"

// IsTaskCreator 只有创建者可以修改任务
func IsTaskCreator(uid string, task models.Task) bool {
	return task.CreatorID == uid
}

// IsAssigned 只有执行人可以修改被指派的任务
func IsAssigned(uid string, task models.Task) bool {
	return task.AssignedToID == uid
}

// IsSubtaskEditor 子任务的创建者或父任务的创建者可以修改子任务
func IsSubtaskEditor(uid string, subtask models.Subtask, parentTask models.Task) bool {
	return subtask.CreatorID == uid || parentTask.CreatorID == uid
}

// CanCreateSubtask 父任务的创建者或执行人可以添加子任务
func CanCreateSubtask(uid string, parentTask models.Task) bool {
	return parentTask.CreatorID == uid || parentTask.AssignedToID == uid
}

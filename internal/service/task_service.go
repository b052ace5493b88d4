package service

import (
	"context"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
)

type MembershipStore interface {
	IsMember(ctx context.Context, userID string, orgID int64) (bool, error)
	IsAdmin(ctx context.Context, userID string, orgID int64) (bool, error)
}

type TaskStore interface {
	FindAllByOrg(ctx context.Context, orgID int64) ([]*domain.Task, error)
	FindOne(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, data domain.NewTask) (*domain.Task, error)
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// TaskService gates every task operation on the caller's membership in the
// task's organization: reads need membership, mutations need the admin role.
type TaskService struct {
	memberships MembershipStore
	tasks       TaskStore
}

func NewTaskService(memberships MembershipStore, tasks TaskStore) *TaskService {
	return &TaskService{memberships: memberships, tasks: tasks}
}

func (s *TaskService) ReadByOrg(ctx context.Context, orgID int64, userID string) ([]*domain.Task, error) {
	member, err := s.memberships.IsMember(ctx, userID, orgID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domain.PermissionDenied("user is not a member of this organization")
	}

	return s.tasks.FindAllByOrg(ctx, orgID)
}

// ReadOne checks existence before membership, so a valid task id is
// distinguishable from a forbidden one even to non-members.
func (s *TaskService) ReadOne(ctx context.Context, id int64, userID string) (*domain.Task, error) {
	task, err := s.tasks.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.NotFound("task not found")
	}

	member, err := s.memberships.IsMember(ctx, userID, task.OrgID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domain.PermissionDenied("user is not a member of this organization")
	}

	return task, nil
}

func (s *TaskService) Create(ctx context.Context, data domain.NewTask, userID string) (*domain.Task, error) {
	admin, err := s.memberships.IsAdmin(ctx, userID, data.OrgID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, domain.PermissionDenied("forbidden")
	}

	if data.Status == "" {
		data.Status = domain.StatusTodo
	}

	task, err := s.tasks.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.Internal("failed to create task")
	}

	logger.Debug("task created", "task_id", task.ID, "org_id", task.OrgID)
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id int64, patch domain.TaskPatch, userID string) (*domain.Task, error) {
	task, err := s.tasks.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.NotFound("task not found")
	}

	admin, err := s.memberships.IsAdmin(ctx, userID, task.OrgID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, domain.PermissionDenied("forbidden")
	}

	updated, err := s.tasks.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.Internal("failed to update task")
	}

	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64, userID string) error {
	task, err := s.tasks.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.NotFound("task not found")
	}

	admin, err := s.memberships.IsAdmin(ctx, userID, task.OrgID)
	if err != nil {
		return err
	}
	if !admin {
		return domain.PermissionDenied("forbidden")
	}

	affected, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected != 1 {
		return domain.Internal("failed to delete task")
	}

	logger.Debug("task deleted", "task_id", id, "org_id", task.OrgID)
	return nil
}

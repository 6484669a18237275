package services

import (
	"context"
	"database/sql"
	"errors"

	"taskboard/internal/common"
	"taskboard/internal/dbx"
	"taskboard/internal/server/models"
	"taskboard/internal/server/repositories/repomanager"
)

// TaskUpdate carries the optional fields of a partial update; nil fields are
// left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
}

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// List returns every task owned by ownerID.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]*models.Task, error) {

	repo := s.repomanager.Tasks(s.db)
	tasks, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return tasks, nil
}

// Create stores a new task for ownerID. An empty status defaults to "To Do".
func (s *TaskService) Create(ctx context.Context, ownerID int64, title, description string, status models.TaskStatus) (*models.Task, error) {

	if status == "" {
		status = models.StatusToDo
	}

	task := &models.Task{
		Title:       title,
		Description: description,
		Status:      status,
		OwnerID:     ownerID,
	}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.Create(ctx, task)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Update merges the supplied fields into the owned task and persists it.
// The read and the write run in one transaction.
func (s *TaskService) Update(ctx context.Context, taskID, ownerID int64, upd TaskUpdate) (*models.Task, error) {

	var task *models.Task

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		var err error
		task, err = repo.GetOwned(ctx, taskID, ownerID)
		if err != nil {
			return err
		}

		if upd.Title != nil {
			task.Title = *upd.Title
		}
		if upd.Description != nil {
			task.Description = *upd.Description
		}
		if upd.Status != nil {
			task.Status = *upd.Status
		}

		task, err = repo.Update(ctx, task)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Delete removes an owned task.
func (s *TaskService) Delete(ctx context.Context, taskID, ownerID int64) error {

	repo := s.repomanager.Tasks(s.db)
	err := repo.Delete(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	return nil
}

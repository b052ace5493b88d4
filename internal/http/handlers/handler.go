package handlers

import (
	"taskboard/internal/service"
)

type Handler struct {
	Auth  *service.AuthService
	Tasks *service.TaskService
}

func NewHandler(auth *service.AuthService, tasks *service.TaskService) *Handler {
	return &Handler{
		Auth:  auth,
		Tasks: tasks,
	}
}

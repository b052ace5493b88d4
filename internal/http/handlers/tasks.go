package handlers

import (
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func identity(c *gin.Context) (*domain.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeError(c, domain.Unauthenticated("no token provided"))
	}
	return id, ok
}

func taskIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, domain.InvalidArgument("invalid task id: must be a positive integer"))
		return 0, false
	}
	return id, true
}

type tasksByOrgRequest struct {
	OrgID int64 `json:"orgId" binding:"required,gt=0"`
}

func (h *Handler) TasksByOrg(c *gin.Context) {
	var req tasksByOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(err))
		return
	}

	caller, ok := identity(c)
	if !ok {
		return
	}

	tasks, err := h.Tasks.ReadByOrg(c.Request.Context(), req.OrgID, caller.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{"data": tasks})
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	caller, ok := identity(c)
	if !ok {
		return
	}

	task, err := h.Tasks.ReadOne(c.Request.Context(), id, caller.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": task})
}

type createTaskRequest struct {
	Title    string    `json:"title" binding:"required"`
	Details  string    `json:"details" binding:"omitempty,max=1000"`
	Status   string    `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	Priority string    `json:"priority" binding:"required,oneof=low medium high"`
	DueDate  time.Time `json:"dueDate" binding:"required"`
	OrgID    int64     `json:"orgId" binding:"required,gt=0"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(err))
		return
	}

	caller, ok := identity(c)
	if !ok {
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), domain.NewTask{
		Title:    req.Title,
		Details:  req.Details,
		Status:   domain.TaskStatus(req.Status),
		Priority: domain.TaskPriority(req.Priority),
		DueDate:  req.DueDate,
		OrgID:    req.OrgID,
	}, caller.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": task})
}

type updateTaskRequest struct {
	Title    *string    `json:"title" binding:"omitempty,min=1"`
	Details  *string    `json:"details" binding:"omitempty,max=1000"`
	Status   *string    `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	Priority *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate  *time.Time `json:"dueDate"`
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(err))
		return
	}

	caller, ok := identity(c)
	if !ok {
		return
	}

	patch := domain.TaskPatch{
		Title:   req.Title,
		Details: req.Details,
		DueDate: req.DueDate,
	}
	if req.Status != nil {
		s := domain.TaskStatus(*req.Status)
		patch.Status = &s
	}
	if req.Priority != nil {
		p := domain.TaskPriority(*req.Priority)
		patch.Priority = &p
	}

	task, err := h.Tasks.Update(c.Request.Context(), id, patch, caller.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": task})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	caller, ok := identity(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id, caller.UserID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

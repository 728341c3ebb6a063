package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/mkaraca/task-tracker-api/internal/errors"
	"github.com/mkaraca/task-tracker-api/internal/services"
)

type UserHandler struct {
	service *services.TaskService
}

func NewUserHandler(service *services.TaskService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// ListUsers returns the team roster used for assignment.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, users)
}

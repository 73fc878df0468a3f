package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/services"
)

type UserHandler struct {
	log     *logger.Logger
	userSvc services.UserService
}

func NewUserHandler(log *logger.Logger, userSvc services.UserService) *UserHandler {
	return &UserHandler{
		log:     log.With("handler", "UserHandler"),
		userSvc: userSvc,
	}
}

// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input services.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	user, err := h.userSvc.CreateUser(c.Request.Context(), input)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_user_failed", err)
		return
	}
	RespondOK(c, user)
}

// GET /api/users/:user_id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	user, err := h.userSvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, statusFor(err), "get_user_failed", err)
		return
	}
	RespondOK(c, user)
}

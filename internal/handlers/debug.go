package handlers

import (
	"net/http"
	"time"

	"userdir/internal/dto"
	"userdir/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DebugHandler struct {
	userSvc *service.UserService
	log     *zap.Logger
}

func NewDebugHandler(userSvc *service.UserService, log *zap.Logger) *DebugHandler {
	return &DebugHandler{userSvc: userSvc, log: log}
}

// Users godoc
// @Summary      List all users (debug)
// @Tags         debug
// @Produce      json
// @Success      200  {object}  dto.ListUsersResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /debug/users [get]
func (h *DebugHandler) Users(c *gin.Context) {
	list, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{
		Count: len(list),
		Users: dto.UsersToResponses(list),
	})
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: dto.FormatTime(time.Now()),
	})
}

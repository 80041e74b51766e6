package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
	"github.com/solenbank/solen_backend/internal/dto"
)

type UserHandler struct {
	userService portssvc.UserSvcFacade
}

func NewUserHandler(user portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: user}
}

// GetMe returns the calling identity's user record.
func (h *UserHandler) GetMe(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByTelegramID(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// GetByAccount resolves an account id to the owning user (admin only).
func (h *UserHandler) GetByAccount(c *gin.Context) {
	user, err := h.userService.GetUserByAccount(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// List returns every registered user (admin only).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.NewUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

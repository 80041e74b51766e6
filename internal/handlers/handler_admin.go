package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
	"github.com/solenbank/solen_backend/internal/dto"
)

type AdminHandler struct {
	accessService portssvc.AccessControlSvcFacade
}

func NewAdminHandler(access portssvc.AccessControlSvcFacade) *AdminHandler {
	return &AdminHandler{accessService: access}
}

// Add grants admin privilege to an identity (owner only; gated at the group).
func (h *AdminHandler) Add(c *gin.Context) {
	var req dto.AddAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.accessService.AddAdmin(c.Request.Context(), req.TelegramID, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.AdminResponse{TelegramID: req.TelegramID, Name: req.Name})
}

// Remove revokes an admin grant (owner only).
func (h *AdminHandler) Remove(c *gin.Context) {
	identity, err := strconv.ParseInt(c.Param("identity"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identity must be an integer"})
		return
	}

	if err := h.accessService.RemoveAdmin(c.Request.Context(), identity); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List returns all admin grants ordered by name (owner only).
func (h *AdminHandler) List(c *gin.Context) {
	grants, err := h.accessService.ListAdmins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.AdminResponse, 0, len(grants))
	for _, g := range grants {
		resp = append(resp, dto.NewAdminResponse(g))
	}
	c.JSON(http.StatusOK, resp)
}

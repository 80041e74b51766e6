package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
	"github.com/solenbank/solen_backend/internal/dto"
)

type RegistrationHandler struct {
	registrationService portssvc.RegistrationSvcFacade
}

func NewRegistrationHandler(registration portssvc.RegistrationSvcFacade) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registration}
}

// Register redeems a single-use code for the calling identity and mints their
// personal account.
func (h *RegistrationHandler) Register(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	accountID, err := h.registrationService.RegisterUser(c.Request.Context(), identity, req.Username, req.FullName, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{AccountID: accountID})
}

// AddCode stores a new registration code (admin only; gated at the route group).
func (h *RegistrationHandler) AddCode(c *gin.Context) {
	var req dto.AddCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.registrationService.AddRegistrationCode(c.Request.Context(), req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": req.Code})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
	"github.com/solenbank/solen_backend/internal/dto"
)

type AccountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func NewAccountHandler(account portssvc.AccountSvcFacade) *AccountHandler {
	return &AccountHandler{accountService: account}
}

// ListMine returns every account owned by the calling identity.
func (h *AccountHandler) ListMine(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListUserAccounts(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, dto.NewAccountResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBusiness opens a business account for the given owner (admin only).
func (h *AccountHandler) CreateBusiness(c *gin.Context) {
	var req dto.CreateBusinessAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	accountID, err := h.accountService.CreateBusinessAccount(c.Request.Context(), req.OwnerID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"accountID": accountID})
}

// Delete removes any non-protected account (admin only).
func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("accountID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBusiness removes an account only if it is a business account (admin only).
func (h *AccountHandler) DeleteBusiness(c *gin.Context) {
	if err := h.accountService.DeleteBusinessAccount(c.Request.Context(), c.Param("accountID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TransferOwnership rebinds the owner of an account (admin only). The new
// owner is not required to be a registered user.
func (h *AccountHandler) TransferOwnership(c *gin.Context) {
	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.accountService.TransferOwnership(c.Request.Context(), c.Param("accountID"), req.NewOwnerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

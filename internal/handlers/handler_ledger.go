package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
	"github.com/solenbank/solen_backend/internal/dto"
)

type LedgerHandler struct {
	ledgerService  portssvc.LedgerSvcFacade
	accountService portssvc.AccountSvcFacade
	accessService  portssvc.AccessControlSvcFacade
}

func NewLedgerHandler(ledger portssvc.LedgerSvcFacade, account portssvc.AccountSvcFacade, access portssvc.AccessControlSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledger, accountService: account, accessService: access}
}

// Transfer moves funds between two accounts. Plain callers may only debit
// accounts they own; admins and the owner may debit any account (covering
// bank payouts and seizures).
func (h *LedgerHandler) Transfer(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	privileged, err := h.accessService.IsAdminOrOwner(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	if !privileged {
		canUse, err := h.accountService.CanUseAccount(c.Request.Context(), identity, req.FromAccountID, nil)
		if err != nil {
			respondError(c, err)
			return
		}
		if !canUse {
			c.JSON(http.StatusForbidden, gin.H{"error": "you cannot use the source account"})
			return
		}
	}

	record, err := h.ledgerService.TransferFunds(c.Request.Context(), req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		// The failed attempt is still audited; its record rides along so the
		// caller can reference the txID.
		extra := gin.H{}
		if record != nil {
			extra["transaction"] = dto.NewTransferResponse(*record)
		}
		respondErrorWith(c, err, extra)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferResponse(*record))
}

// AdjustBalance applies a signed delta to one account (admin mint/burn).
func (h *LedgerHandler) AdjustBalance(c *gin.Context) {
	accountID := c.Param("accountID")

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.ledgerService.AdjustAccountBalance(c.Request.Context(), accountID, req.Delta); err != nil {
		respondError(c, err)
		return
	}

	balance, err := h.ledgerService.GetAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}

// GetBalance returns an account balance to its owner or to an admin.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	accountID := c.Param("accountID")

	privileged, err := h.accessService.IsAdminOrOwner(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	if !privileged {
		canUse, err := h.accountService.CanUseAccount(c.Request.Context(), identity, accountID, nil)
		if err != nil {
			respondError(c, err)
			return
		}
		if !canUse {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your account"})
			return
		}
	}

	balance, err := h.ledgerService.GetAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}

package handler

import (
	"storefront-ledger/internal/adapter/http/dto"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes ledger balances.
type WalletHandler struct {
	ledger ports.LedgerService
}

func NewWalletHandler(ledger ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// GetBalance handles GET /api/v1/wallet/balance[?scope=shop&shopId=S].
func (h *WalletHandler) GetBalance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	shopID, err := queryShopID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.ledger.Balance(c.Request.Context(), actor.UserID, shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Scope:   string(view.Scope.Kind),
		ShopID:  view.Scope.ShopID(),
		Balance: view.Balance,
	})
}

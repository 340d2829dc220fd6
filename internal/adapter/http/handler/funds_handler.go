package handler

import (
	"storefront-ledger/internal/adapter/http/dto"
	"storefront-ledger/internal/adapter/http/middleware"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// FundsHandler serves the caller's deposit and withdrawal requests.
type FundsHandler struct {
	deposits    ports.DepositService
	withdrawals ports.WithdrawalService
}

func NewFundsHandler(deposits ports.DepositService, withdrawals ports.WithdrawalService) *FundsHandler {
	return &FundsHandler{deposits: deposits, withdrawals: withdrawals}
}

// SubmitDeposit handles POST /api/v1/deposits.
func (h *FundsHandler) SubmitDeposit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.DepositRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	dep, err := h.deposits.Submit(c.Request.Context(), ports.SubmitDepositInput{
		UserID:   actor.UserID,
		ShopID:   req.ShopID,
		Currency: req.Currency,
		Network:  req.Network,
		Amount:   req.Amount,
		ProofURL: req.ProofURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, dep.ID.String())
	response.Created(c, dep)
}

// ListDeposits handles GET /api/v1/deposits[?scope=shop&shopId=S].
func (h *FundsHandler) ListDeposits(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	shopID, err := queryShopID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.deposits.ListMine(c.Request.Context(), actor.UserID, shopID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// SubmitWithdrawal handles POST /api/v1/withdrawals.
func (h *FundsHandler) SubmitWithdrawal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.WithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	wd, err := h.withdrawals.Submit(c.Request.Context(), ports.SubmitWithdrawalInput{
		UserID:   actor.UserID,
		ShopID:   req.ShopID,
		Currency: req.Currency,
		Network:  req.Network,
		Address:  req.Address,
		Amount:   req.Amount,
		ProofURL: req.ProofURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, wd.ID.String())
	response.Created(c, wd)
}

// ListWithdrawals handles GET /api/v1/withdrawals[?scope=shop&shopId=S].
func (h *FundsHandler) ListWithdrawals(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	shopID, err := queryShopID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.withdrawals.ListMine(c.Request.Context(), actor.UserID, shopID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

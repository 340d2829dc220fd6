package handler

import (
	"strings"

	"storefront-ledger/internal/adapter/http/dto"
	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/apperror"
	"storefront-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the staff review queue.
type AdminHandler struct {
	deposits    ports.DepositService
	withdrawals ports.WithdrawalService
}

func NewAdminHandler(deposits ports.DepositService, withdrawals ports.WithdrawalService) *AdminHandler {
	return &AdminHandler{deposits: deposits, withdrawals: withdrawals}
}

// listParams reads ?status=&page=&page_size= for the staff listings.
func listParams(c *gin.Context) (ports.RequestListParams, error) {
	page, pageSize := pagination(c)
	params := ports.RequestListParams{Page: page, PageSize: pageSize}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := domain.RequestStatus(strings.ToUpper(raw))
		if status != domain.RequestStatusPending && !status.IsReviewOutcome() {
			return params, apperror.Validation("status must be PENDING, APPROVED or REJECTED")
		}
		params.Status = &status
	}
	return params, nil
}

// ListDeposits handles GET /api/v1/admin/deposits.
func (h *AdminHandler) ListDeposits(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	params, err := listParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, total, err := h.deposits.List(c.Request.Context(), actor, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewListResponse(items, total, params.Page, params.PageSize))
}

// ReviewDeposit handles PATCH /api/v1/admin/deposits/:id.
func (h *AdminHandler) ReviewDeposit(c *gin.Context) {
	in, ok := reviewInput(c)
	if !ok {
		return
	}
	dep, err := h.deposits.Review(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dep)
}

// ListWithdrawals handles GET /api/v1/admin/withdrawals.
func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	params, err := listParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, total, err := h.withdrawals.List(c.Request.Context(), actor, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewListResponse(items, total, params.Page, params.PageSize))
}

// ReviewWithdrawal handles PATCH /api/v1/admin/withdrawals/:id.
func (h *AdminHandler) ReviewWithdrawal(c *gin.Context) {
	in, ok := reviewInput(c)
	if !ok {
		return
	}
	wd, err := h.withdrawals.Review(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wd)
}

func reviewInput(c *gin.Context) (ports.ReviewInput, bool) {
	actor, ok := requireActor(c)
	if !ok {
		return ports.ReviewInput{}, false
	}
	id, ok := pathID(c)
	if !ok {
		return ports.ReviewInput{}, false
	}
	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return ports.ReviewInput{}, false
	}
	return ports.ReviewInput{
		Reviewer:  actor,
		RequestID: id,
		Status:    domain.RequestStatus(req.Status),
	}, true
}

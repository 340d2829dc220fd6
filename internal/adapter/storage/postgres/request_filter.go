package postgres

import (
	"fmt"
	"strings"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"
)

// requestFilter builds the WHERE clause shared by deposit and withdrawal listings.
// A user scope only matches rows without a shop so the personal and shop views never mix.
func requestFilter(params ports.RequestListParams) (string, []any, int) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Scope != nil {
		if params.Scope.Kind == domain.ScopeShop {
			conditions = append(conditions, fmt.Sprintf("shop_id = $%d", argIdx))
		} else {
			conditions = append(conditions, fmt.Sprintf("user_id = $%d AND shop_id IS NULL", argIdx))
		}
		args = append(args, params.Scope.ID)
		argIdx++
	}
	if params.OwnerID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *params.OwnerID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, string(*params.Status))
		argIdx++
	}

	if len(conditions) == 0 {
		return "", args, argIdx
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, argIdx
}

// pageClause appends LIMIT/OFFSET when a page size is set.
func pageClause(params ports.RequestListParams, argIdx int, args []any) (string, []any) {
	if params.PageSize <= 0 {
		return "", args
	}
	page := params.Page
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1), append(args, params.PageSize, (page-1)*params.PageSize)
}

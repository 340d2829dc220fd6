package handler

import (
	"strconv"
	"strings"

	"storefront-ledger/internal/adapter/http/middleware"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/apperror"
	"storefront-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// requireActor writes AUTH_001 and returns false when no verified caller is on the context.
func requireActor(c *gin.Context) (ports.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return ports.Actor{}, false
	}
	return actor, true
}

// bindJSON binds and sanitizes a request body, writing VAL_001 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// queryShopID reads ?scope=shop&shopId=S. The user scope yields nil.
func queryShopID(c *gin.Context) (*uuid.UUID, error) {
	scope := strings.ToLower(c.Query("scope"))
	raw := c.Query("shopId")
	switch scope {
	case "", "user", "shop":
	default:
		return nil, apperror.Validation("scope must be user or shop")
	}
	if scope == "user" || (scope == "" && raw == "") {
		return nil, nil
	}
	if raw == "" {
		return nil, apperror.Validation("shopId is required for shop scope")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.Validation("invalid shopId")
	}
	return &id, nil
}

// pagination reads page and page_size, clamping both to sane bounds.
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

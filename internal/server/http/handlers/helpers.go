package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentRole extracts the authenticated role from context.
func CurrentRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.RoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.Role)
	return role
}

// IDParam parses a positive numeric path parameter.
func IDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// SubjectID resolves the account a report or listing targets: the caller by
// default. An explicit query parameter may only name another account when the
// caller is an admin.
func SubjectID(c *gin.Context, queryKey string) (int64, bool) {
	raw := c.Query(queryKey)
	if raw == "" {
		return CurrentUserID(c), true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	if id != CurrentUserID(c) && CurrentRole(c) != model.RoleAdmin {
		c.Status(http.StatusForbidden)
		return 0, false
	}
	return id, true
}

// RespondError maps domain failures to HTTP statuses. Precondition
// violations carry a JSON body so the caller sees what was violated.
func RespondError(c *gin.Context, err error) {
	var stockErr domainErrors.InsufficientStockError
	if errors.As(err, &stockErr) {
		shortages := make([]gin.H, 0, len(stockErr.Shortages))
		for _, s := range stockErr.Shortages {
			shortages = append(shortages, gin.H{
				"product_id": s.ProductID,
				"name":       s.ProductName,
				"required":   s.Required,
				"available":  s.Available,
			})
		}
		c.JSON(http.StatusConflict, gin.H{"error": "insufficient stock", "shortages": shortages})
		return
	}

	var transitionErr domainErrors.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrOrderCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrExceedsBalance):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrInvalidProduct),
		errors.Is(err, domainErrors.ErrInvalidPayMethod),
		errors.Is(err, domainErrors.ErrInvalidPartner),
		errors.Is(err, domainErrors.ErrInvalidRole):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}

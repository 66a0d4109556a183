package dto

import (
	"net/http"
	"strings"
)

// General error codes used by the HTTP layer itself
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Business rule violations are 422: the request was well-formed, the
// operation is just not allowed against the current state.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,

	"FORBIDDEN":       http.StatusForbidden,
	"NO_SHOP_CONTEXT": http.StatusForbidden,
	"USER_DISABLED":   http.StatusForbidden,
	"SHOP_SUSPENDED":  http.StatusForbidden,

	"NOT_FOUND": http.StatusNotFound,

	"ALREADY_EXISTS":    http.StatusConflict,
	"INVOICE_COLLISION": http.StatusConflict,
	"TAG_COLLISION":     http.StatusConflict,

	"INVALID_STATE":          http.StatusUnprocessableEntity,
	"STOCK_UNAVAILABLE":      http.StatusUnprocessableEntity,
	"OVER_RECEIPT":           http.StatusUnprocessableEntity,
	"OVER_PAYMENT":           http.StatusUnprocessableEntity,
	"DISCOUNT_EXCEEDS_TOTAL": http.StatusUnprocessableEntity,
	"CANNOT_CLOSE":           http.StatusUnprocessableEntity,
	"DUPLICATE_LINE":         http.StatusUnprocessableEntity,
	"EMPTY_ORDER":            http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status for a domain error code. Input
// validation codes share the INVALID_ prefix and map to 400; anything
// unknown is a 500 so new codes fail loudly instead of silently succeeding.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

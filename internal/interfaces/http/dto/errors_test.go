package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"INVOICE_COLLISION", http.StatusConflict},
		{"TAG_COLLISION", http.StatusConflict},
		{"NO_SHOP_CONTEXT", http.StatusForbidden},
		{"SHOP_SUSPENDED", http.StatusForbidden},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"STOCK_UNAVAILABLE", http.StatusUnprocessableEntity},
		{"OVER_RECEIPT", http.StatusUnprocessableEntity},
		{"OVER_PAYMENT", http.StatusUnprocessableEntity},
		{"DISCOUNT_EXCEEDS_TOTAL", http.StatusUnprocessableEntity},
		{"CANNOT_CLOSE", http.StatusUnprocessableEntity},
		{"INVALID_STATE", http.StatusUnprocessableEntity},
		{"INVALID_WEIGHT", http.StatusBadRequest},
		{"INVALID_NAME", http.StatusBadRequest},
		{"SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

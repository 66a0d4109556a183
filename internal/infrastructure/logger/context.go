package logger

import "context"

type contextKey int

const (
	requestIDKey contextKey = iota
	shopIDKey
	userIDKey
)

// WithRequestID stamps the request ID onto the context so deeper layers
// (gorm tracing in particular) can tie their log lines to the request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithShopID stamps the resolved tenant onto the context
func WithShopID(ctx context.Context, shopID string) context.Context {
	return context.WithValue(ctx, shopIDKey, shopID)
}

// WithUserID stamps the acting user onto the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// RequestIDFrom returns the request ID stamped on the context, or ""
func RequestIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// ShopIDFrom returns the tenant stamped on the context, or ""
func ShopIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(shopIDKey).(string)
	return v
}

// UserIDFrom returns the acting user stamped on the context, or ""
func UserIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(userIDKey).(string)
	return v
}

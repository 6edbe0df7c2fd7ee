package mcp

import (
	"context"
	"time"

	"github.com/abcstark/team-wellbeing/internal/metrics"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// OperationObserver records tool call outcomes.
type OperationObserver interface {
	Observe(ctx context.Context, transport, operation string, success bool, duration time.Duration)
}

// metricsMiddleware observes every tools/call by tool name.
func metricsMiddleware(observer OperationObserver) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			call, ok := req.(*sdkmcp.CallToolRequest)
			if !ok || call.Params == nil {
				return next(ctx, method, req)
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			success := err == nil
			if res, ok := result.(*sdkmcp.CallToolResult); ok && res != nil && res.IsError {
				success = false
			}
			observer.Observe(ctx, metrics.TransportMCP, call.Params.Name, success, time.Since(start))
			return result, err
		}
	}
}

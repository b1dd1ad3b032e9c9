package remote

import (
	"context"
	"path"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/nainya/catalogsync/internal/logger"
	"github.com/nainya/catalogsync/internal/metrics"
)

// UnaryClientInterceptor records metrics and logs for every outgoing
// Data Catalog call. Either argument may be nil.
func UnaryClientInterceptor(m *metrics.Metrics, log *logger.Logger) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		start := time.Now()
		if m != nil {
			m.CatalogCallsInFlight.Inc()
			defer m.CatalogCallsInFlight.Dec()
		}

		err := invoker(ctx, method, req, reply, cc, opts...)

		duration := time.Since(start)
		if m != nil {
			m.RecordCatalogCall(path.Base(method), status.Code(err).String(), duration)
		}
		if log != nil {
			log.LogCatalogCall(method, duration, err)
		}

		return err
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/nainya/catalogsync/internal/config"
	"github.com/nainya/catalogsync/internal/logger"
	"github.com/nainya/catalogsync/internal/metrics"
	"github.com/nainya/catalogsync/internal/remote"
	"github.com/nainya/catalogsync/internal/server"
	"github.com/nainya/catalogsync/pkg/catalog"
)

const (
	shutdownTimeout = 5 * time.Second
	msgNoRecords    = "No records found matching search criteria."
)

// clientOptions supplies extra SDK options for each session
var clientOptions = func() []option.ClientOption { return nil }

// session holds everything a command needs to talk to Data Catalog
type session struct {
	log     *logger.Logger
	metrics *metrics.Metrics
	client  *remote.Client
	facade  *catalog.Facade
	obs     *server.ObservabilityServer
}

func bind(key string, flag *pflag.Flag) {
	if err := vp.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", flag.Name, err))
	}
}

func initLogger() *logger.Logger {
	logger.InitGlobalLogger(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	return logger.GetGlobalLogger()
}

// openSession validates the configuration and builds the facade. Callers
// must Close the returned session.
func openSession(ctx context.Context) (*session, error) {
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingProject) {
			return nil, fmt.Errorf("%w: set --project or %s_PROJECT_ID", err, config.EnvPrefix)
		}
		return nil, err
	}

	log := initLogger()
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	client, err := remote.New(ctx, remote.Options{
		Endpoint: cfg.Endpoint,
		Metrics:  m,
		Logger:   log,
	}, clientOptions()...)
	if err != nil {
		return nil, err
	}

	s := &session{
		log:     log,
		metrics: m,
		client:  client,
		facade: catalog.NewFacade(cfg.ProjectID, client,
			catalog.WithObserver(m.Observer(catalog.NewLogObserver(*log.GetZerolog()))),
		),
	}

	if cfg.MetricsPort > 0 {
		s.obs = server.NewObservabilityServer(cfg.MetricsPort, reg, log)
		go func() {
			if err := s.obs.Start(); err != nil {
				log.Error("Observability server stopped").Err(err).Send()
			}
		}()
	}
	return s, nil
}

func (s *session) Close() {
	if s.obs != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.obs.Shutdown(ctx); err != nil {
			s.log.Warn("Failed to stop observability server").Err(err).Send()
		}
	}
	if err := s.client.Close(); err != nil {
		s.log.Warn("Failed to close Data Catalog client").Err(err).Send()
	}
}

// ExitCode maps err to the process exit status. gRPC failures exit with
// their status code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code := status.Code(err); code != codes.Unknown && code != codes.OK {
		return int(code)
	}
	return 1
}

func printMessage(w io.Writer, m proto.Message) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", m.ProtoReflect().Descriptor().Name(), err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// cmd/server/serve.go
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	g "github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/grpc/adminpb"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/httpapi"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/rabbitmq"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/application"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
	"github.com/mahabubulhasibshawon/marketplace-admin/pkg/auth"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gRPC admin API and the health endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewPostgresRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	cache := redis.NewCache(redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.CacheTTL,
	})
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		return err
	}

	var events ports.EventPublisher = rabbitmq.NoopPublisher{}
	health := httpapi.New(logger).Check("postgres", repo).Check("redis", cache)
	if cfg.RabbitMQ.URL != "" {
		publisher, err := rabbitmq.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			return err
		}
		defer publisher.Close()
		events = publisher
		health.Check("rabbitmq", publisher)
	} else {
		logger.Warn("RABBITMQ_URL not set, events will not be published")
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL, cache)
	authService := application.NewAuthService(repo, tokens, logger)
	srv := g.NewServer(g.Services{
		Auth:       authService,
		Users:      application.NewUserService(repo, cache, events, logger),
		Onboarding: application.NewOnboardingService(repo, repo, cache, events, logger),
		Orders:     application.NewOrderService(repo, cache, events, logger),
		Dashboard:  application.NewDashboardService(repo, cache, logger),
		Settings:   application.NewSettingsService(repo, cache, events, logger),
		Audit:      application.NewAuditService(repo, cache, logger),
	}, logger)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		g.LoggingInterceptor(logger),
		g.AuthInterceptor(authService),
	))
	adminpb.RegisterAdminServiceServer(grpcServer, srv)

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           health.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("gRPC server listening", zap.String("addr", cfg.Server.GRPCAddr))
		return grpcServer.Serve(lis)
	})
	eg.Go(func() error {
		logger.Info("health server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcServer.Stop()
		}
		return httpServer.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "gotravel/api/v1/chat"
	"gotravel/internal/chat/handler"
	"gotravel/internal/config"
	"gotravel/internal/logging"
	"gotravel/internal/wire"
)

func main() {
	cfg := config.LoadConfig()

	log, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	defer closeLog()
	logrus.RegisterExitHandler(func() { _ = closeLog() })
	log.Info("Starting Chat Service...")

	app, cleanup, err := wire.InitializeChatService(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize chat service")
	}
	defer cleanup()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(handler.UnaryLogger(log), app.Auth.UnaryInterceptor()),
		grpc.ChainStreamInterceptor(handler.StreamLogger(log), app.Auth.StreamInterceptor()),
	)
	pb.RegisterChatServiceServer(grpcServer, app.Handler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(pb.ChatService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	if cfg.IsDevelopment() {
		reflection.Register(grpcServer)
	}

	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.Server.Host, cfg.Server.GRPCPort))
	if err != nil {
		log.WithError(err).WithField("port", cfg.Server.GRPCPort).Fatal("Failed to listen")
	}

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      app.HTTP.Router(app.Auth),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Server.GRPCPort).Info("Chat gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.WithError(err).Fatal("gRPC server stopped")
		}
	}()

	go func() {
		log.WithField("port", cfg.Server.HTTPPort).Info("Chat HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down Chat Service...")
	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("HTTP shutdown incomplete")
	}
	grpcServer.GracefulStop()
	log.Info("Chat Service stopped")
}

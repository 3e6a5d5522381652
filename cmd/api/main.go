package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"connectpro.org/internal/auth"
	"connectpro.org/internal/dashboard"
	"connectpro.org/internal/httpapi"
	"connectpro.org/internal/obs"
)

var (
	version = "0.3.0"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	// Credential source: Postgres when a DSN is configured, otherwise the
	// in-memory demo table. Signup is only available against the latter.
	var (
		db        *sql.DB
		directory auth.Directory
		registrar *auth.StaticDirectory
	)
	if dsn := os.Getenv("CONNECTPRO_PG_DSN"); dsn != "" {
		var err error
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
		directory = auth.NewPGDirectory(db)
	} else {
		static, err := auth.NewStaticDirectory(auth.SeedCredentials())
		if err != nil {
			log.Fatalf("seed credentials: %v", err)
		}
		directory = static
		registrar = static
	}

	sessions := auth.NewStore(directory)

	feed := dashboard.NewFeed(50)
	feed.SeedDemo()
	board := dashboard.NewService(dashboard.DemoStats(), feed)

	probe := httpapi.ReadyProbe{DB: db}
	api := httpapi.New(probe, version, sessions, registrar, board, feed)

	addr := os.Getenv("CONNECTPRO_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting connectpro-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	var grpcSrv *httpapi.GRPCServer
	if grpcAddr := os.Getenv("CONNECTPRO_GRPC_ADDR"); grpcAddr != "" {
		lis, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			log.Fatalf("grpc listen: %v", err)
		}
		grpcSrv = httpapi.NewGRPCServer(probe)
		log.Printf("Starting gRPC health endpoint on %s", grpcAddr)
		go func() {
			if err := grpcSrv.Serve(lis); err != nil {
				log.Fatalf("grpc serve: %v", err)
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	if db != nil {
		_ = db.Close()
	}
	log.Println("Stopped")
}

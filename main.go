package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tbanku/tbanku-api/config"
	"github.com/tbanku/tbanku-api/handlers"
	"github.com/tbanku/tbanku-api/middleware"
	"github.com/tbanku/tbanku-api/routes"
	"github.com/tbanku/tbanku-api/services"
	"github.com/tbanku/tbanku-api/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	backend, db, err := config.InitBackend(cfg)
	if err != nil {
		log.Fatal("Failed to initialise storage: ", err)
	}
	if db != nil {
		defer db.Close()
	}

	ledger, err := services.NewLedger(backend, cfg.IDStrategy)
	if err != nil {
		log.Fatal("Failed to build ledger: ", err)
	}
	if err := ledger.EnsureExists(context.Background()); err != nil {
		log.Fatal("Failed to create data documents: ", err)
	}

	wsHandler := handlers.NewWSHandler()
	defer wsHandler.Close()

	stopCleanup := make(chan struct{})
	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	go limiter.RunCleanup(time.Minute, stopCleanup)

	log.Printf("🌍 CORS: Allowing origins:")
	for _, origin := range cfg.AllowedOrigins {
		log.Printf("   - %s", origin)
	}

	router := routes.SetupRouter(ledger, routes.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Currency:       cfg.Currency,
		RateLimiter:    limiter,
		WS:             wsHandler,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.LogStartup("TbankU API", routes.Version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Println("Shutting down...")
	close(stopCleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Shutdown error: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fixhub/internal/admin"
	"fixhub/internal/catalog"
	"fixhub/internal/events"
	"fixhub/internal/lookup"
	"fixhub/internal/source"
	"fixhub/pkg/database"
	"fixhub/pkg/utils"
)

func main() {
	utils.LoadDotenv()
	cfg := utils.LoadServerConfig()

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	// Catalog source per config: local file, remote mirror, or the db.
	var src source.Source
	switch cfg.CatalogSource {
	case "url":
		src = source.NewHTTP(cfg.CatalogURL)
	case "db":
		src = source.NewDB(db)
	default:
		src = source.NewFile(cfg.CatalogPath)
	}

	engine := catalog.NewEngine()
	hub := events.NewHub()

	// Initial load. A failure here is reported once and leaves the
	// engine empty; queries stay total (empty results, not errors)
	// and /ready flags the server as not ready.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if entries, err := src.FetchAll(loadCtx); err != nil {
		log.Printf("[catalog] initial load from %s failed: %v", src.Name(), err)
		hub.Broadcast(events.LoadFailed(src.Name(), err))
	} else {
		engine.Load(entries)
		log.Printf("[catalog] loaded %d entries from %s", len(entries), src.Name())
	}
	cancelLoad()

	router := gin.Default()

	// Optional: avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// Start TCP event feed first (so you notice binding errors early)
	router.GET("/ws", events.WSHandler(hub))
	tcpSrv := events.NewServer(cfg.TCPAddr, hub)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		if !engine.Loaded() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":      "not_ready",
				"catalog":     "empty",
				"source":      src.Name(),
				"tcp_clients": stats.TCPClients,
				"ws_clients":  stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"entries":     engine.Len(),
			"source":      src.Name(),
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"db":          dbCfg.Path,
			"source":      src.Name(),
			"entries":     engine.Len(),
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	// Catalog queries (public)
	lookupHandler := lookup.NewHandler(engine)
	lookupHandler.RegisterRoutes(router.Group("/catalog"))

	// Admin auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := admin.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	adminRepo := admin.NewRepo(db)
	adminHandler := admin.NewHandler(adminRepo, tokenSvc, authCfg.SignupCode)
	adminHandler.RegisterRoutes(router.Group("/admin"))

	// Protected admin operations
	protected := router.Group("/admin")
	protected.Use(admin.AuthMiddleware(tokenSvc, adminRepo))
	admin.NewReloadHandler(engine, src, hub).RegisterRoutes(protected)

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tcpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP API server listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := tcpSrv.Close(); err != nil {
		log.Printf("tcp shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("servers stopped")
}

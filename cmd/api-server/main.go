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

	"krisenkanon/internal/annotations"
	"krisenkanon/internal/auth"
	"krisenkanon/internal/content"
	"krisenkanon/internal/feed"
	"krisenkanon/internal/glossary"
	"krisenkanon/pkg/database"
	"krisenkanon/pkg/utils"
)

func main() {
	contentCfg := utils.LoadContentConfig()

	// Build the registry once; it is read-only for the process lifetime.
	docs, err := content.DiscoverDocuments(os.DirFS(contentCfg.CrisesDir))
	if err != nil {
		log.Fatalf("content discovery failed: %v", err)
	}
	registry := content.Load(docs)
	log.Printf("[registry] loaded %d entries, version %s, %d validation issue(s)",
		registry.Count(), registry.ContentVersion(), len(registry.ValidationIssues()))

	catalog, err := glossary.LoadCatalog(contentCfg.CatalogPath)
	if err != nil {
		log.Fatalf("glossary catalog failed: %v", err)
	}

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// Start TCP feed first (so you notice binding errors early)
	hub := feed.NewHub(registry.ContentVersion())
	router.GET("/ws", feed.WSHandler(hub))
	tcpSrv := feed.NewServer(":7070", hub)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"content": registry.ContentVersion(),
			"db":      dbCfg.Path,
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":      "not_ready",
				"db_error":    err.Error(),
				"tcp_clients": stats.TCPClients,
				"ws_clients":  stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"db":          "ok",
			"entries":     registry.Count(),
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"db":          dbCfg.Path,
			"content":     contentCfg.CrisesDir,
			"version":     registry.ContentVersion(),
			"issues":      len(registry.ValidationIssues()),
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	// Content (public, read-only)
	contentHandler := content.NewHandler(registry)
	crises := router.Group("/crises")
	contentHandler.RegisterRoutes(crises)
	contentHandler.RegisterContentRoutes(router.Group("/content"))
	glossary.NewHandler(catalog).RegisterRoutes(router.Group("/glossary"))

	// Annotations: reads public, writes behind editor auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	authHandler := auth.NewHandler(authRepo, tokenSvc)
	authHandler.RegisterRoutes(router.Group("/auth"))

	annRepo := annotations.NewRepo(db)
	annHandler := annotations.NewHandler(annRepo, registry, hub)
	annHandler.RegisterPublicRoutes(crises)

	editors := router.Group("/editors")
	editors.Use(auth.Middleware(tokenSvc, authRepo))

	editors.GET("/me", func(c *gin.Context) {
		claims := auth.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":     claims.EditorID,
			"handle": claims.Handle,
		})
	})
	annHandler.RegisterEditorRoutes(editors)

	httpSrv := &http.Server{
		Addr:    ":8080",
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
		log.Println("HTTP API server listening on :8080")
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

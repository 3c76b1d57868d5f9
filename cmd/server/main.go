package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dev-shamim-ahamed/vpn/internal/asndb"
	"github.com/dev-shamim-ahamed/vpn/internal/classifier"
	"github.com/dev-shamim-ahamed/vpn/internal/config"
	"github.com/dev-shamim-ahamed/vpn/internal/handlers"
	"github.com/dev-shamim-ahamed/vpn/internal/metrics"
	"github.com/dev-shamim-ahamed/vpn/internal/middleware"
)

const headerCacheControl = "Cache-Control"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// The dataset is a startup dependency but not a fatal one: a failed
	// load degrades every scan to the database-error verdict for the
	// process lifetime instead of crashing.
	db, err := asndb.Open(cfg.ASNDatabasePath)
	if err != nil {
		slog.Error("ASN database unavailable, scans will report database error", "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	keywords := classifier.DefaultKeywordSet()
	if cfg.KeywordsPath != "" {
		keywords, err = classifier.LoadKeywordSet(cfg.KeywordsPath)
		if err != nil {
			slog.Error("Failed to load keywords file", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Keyword set ready", "keywords", keywords.Len())

	scanMetrics, err := metrics.New(nil)
	if err != nil {
		slog.Error("Failed to register metrics", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.RequestContext())
	router.Use(middleware.SecurityHeaders())

	templatesDir := findDir("templates")
	router.SetHTMLTemplate(template.Must(
		template.New("").ParseGlob(filepath.Join(templatesDir, "*.html")),
	))

	staticDir := findDir("static")
	router.Static("/static", staticDir)

	var lookup handlers.ASNLookup
	if db != nil {
		lookup = db
	}

	scanHandler := handlers.NewScanHandler(lookup, keywords, scanMetrics)
	homeHandler := handlers.NewHomeHandler(cfg)
	healthHandler := handlers.NewHealthHandler(db)
	staticHandler := handlers.NewStaticHandler(staticDir)

	router.GET("/", homeHandler.Index)
	router.GET("/scan", scanHandler.Scan)
	router.GET("/api/health", healthHandler.HealthCheck)
	router.GET("/robots.txt", staticHandler.RobotsTxt)
	router.GET("/metrics", func(c *gin.Context) {
		c.Header(headerCacheControl, "no-store")
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	addr := ":" + cfg.Port
	slog.Info("Server starting", "addr", addr, "version", cfg.AppVersion, "db_ready", db != nil)
	if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// findDir resolves an asset directory relative to the working directory
// or the repository root, so the binary runs both from the root and from
// cmd/server during development.
func findDir(name string) string {
	for _, candidate := range []string{name, filepath.Join("..", "..", name)} {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return name
}

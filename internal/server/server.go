// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/mxrtinss/equipe403/internal/db"
	"github.com/mxrtinss/equipe403/internal/discover"
)

func NewServer(
	serviceName string,
	defaultRadiusKm float64,
	finder *discover.Finder,
	eStore db.EventStore,
	fStore db.FavoriteStore,
) *Server {
	return &Server{
		logger:          slog.Default().WithGroup("http"),
		serviceName:     serviceName,
		defaultRadiusKm: defaultRadiusKm,
		finder:          finder,
		eStore:          eStore,
		fStore:          fStore,
	}
}

type Server struct {
	serviceName     string
	defaultRadiusKm float64
	logger          *slog.Logger
	finder          *discover.Finder
	eStore          db.EventStore
	fStore          db.FavoriteStore
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := gin.New()
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	middlewares := []gin.HandlerFunc{
		sloggin.NewWithConfig(s.logger,
			sloggin.Config{
				DefaultLevel:     slog.LevelInfo,
				ClientErrorLevel: slog.LevelWarn,
				ServerErrorLevel: slog.LevelError,
			},
		),
		gin.Recovery(), otelgin.Middleware(s.serviceName), slogAddTraceAttributes,
	}
	mux.Use(middlewares...)

	h := newHandler(s.finder, s.eStore, s.fStore, s.defaultRadiusKm)

	api := mux.Group("/api")
	api.GET("/events/nearby", h.nearby)
	api.GET("/events/map", h.mapMarkers)

	authed := api.Group("")
	authed.Use(requireUser)
	authed.POST("/events", h.createEvent)
	authed.PUT("/events/:id", h.updateEvent)
	authed.DELETE("/events/:id", h.deleteEvent)
	authed.GET("/events/mine", h.myEvents)
	authed.GET("/favorites", h.listFavorites)
	authed.PUT("/favorites/:eventid", h.createFavorite)
	authed.DELETE("/favorites/:eventid", h.deleteFavorite)
	authed.DELETE("/favorites", h.deleteAllFavorites)

	mux.GET("/metrics", gin.WrapH(promhttp.Handler()))
	mux.NoRoute(notFound)

	mux.ServeHTTP(w, r)
}

const userIDHeader = "X-User-ID"

// requireUser gates routes that act on behalf of an account. The user
// context is an opaque ID supplied by the auth layer in front of us.
func requireUser(c *gin.Context) {
	if c.GetHeader(userIDHeader) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code": "MISSING_USER", "message": "missing " + userIDHeader + " header",
		})
		return
	}
	c.Next()
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
}

func slogAddTraceAttributes(c *gin.Context) {
	sloggin.AddCustomAttributes(c,
		slog.String("trace-id", trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID().String()),
	)
	sloggin.AddCustomAttributes(c,
		slog.String("span-id", trace.SpanFromContext(c.Request.Context()).SpanContext().SpanID().String()),
	)
	c.Next()
}

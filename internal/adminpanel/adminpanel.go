package adminpanel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/javi11/poolkeeper/internal/adminpanel/handlers"
	"github.com/javi11/poolkeeper/internal/failurelog"
	"github.com/javi11/poolkeeper/internal/serverinfo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sloggin "github.com/samber/slog-gin"
)

const shutdownTimeout = 5 * time.Second

type adminPanel struct {
	router *gin.Engine
	log    *slog.Logger
}

// New returns the admin API. It exposes the following endpoints:
// - GET /api/v1/pools: every pool with its target and global totals.
// - GET /api/v1/pools/:key: a single pool.
// - POST /api/v1/pools/expire?max_idle=<duration>: closes resources idle for longer than max_idle.
// - DELETE /api/v1/pools/:key: retires a pool.
// - GET /api/v1/failures?limit=&offset=: the resource creation failure journal.
// - DELETE /api/v1/failures/:id: deletes a journal entry.
// - GET /metrics: prometheus metrics.
func New(
	si serverinfo.ServerInfo,
	pm handlers.PoolMaintainer,
	fl failurelog.FailureLog,
	gatherer prometheus.Gatherer,
	log *slog.Logger,
) *adminPanel {
	r := gin.New()
	r.Use(sloggin.New(log), gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/pools", handlers.BuildGetPoolsHandler(si))
		v1.POST("/pools/expire", handlers.BuildExpirePoolsHandler(pm))
		v1.GET("/pools/:key", handlers.BuildGetPoolHandler(si))
		v1.DELETE("/pools/:key", handlers.BuildRetirePoolHandler(pm))
		v1.GET("/failures", handlers.BuildGetFailuresHandler(fl))
		v1.DELETE("/failures/:id", handlers.BuildDeleteFailureHandler(fl))
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return &adminPanel{
		router: r,
		log:    log,
	}
}

func (a *adminPanel) Handler() http.Handler {
	return a.router
}

// Start serves the API until ctx is done.
func (a *adminPanel) Start(ctx context.Context, port string) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			a.log.Error("Failed to stop API controller", "err", err)
		}
	}()

	a.log.InfoContext(ctx, fmt.Sprintf("Api controller started at http://localhost:%v", port))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/trontec/extras-atlas/pkg/handlers/dashboard"
	extrasmiddleware "github.com/trontec/extras-atlas/pkg/server/middleware"
	"github.com/trontec/extras-atlas/pkg/services/dashboard"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Dashboard dashboard.Service
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := handlers.NewHandler(config.Dependencies.Dashboard)

	router := chi.NewRouter()

	router.Use(extrasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/columns", handler.GetColumns)
		r.Get("/summary", handler.GetSummary)
		r.Get("/records", handler.GetRecords)
		r.Get("/lastweek", handler.GetLastWeek)
		r.Route("/charts", func(r chi.Router) {
			r.Get("/evolution", handler.GetEvolution)
			r.Get("/top", handler.GetTop)
			r.Get("/donut", handler.GetDonut)
			r.Get("/pareto", handler.GetPareto)
			r.Get("/hourly", handler.GetHourly)
			r.Get("/weekday", handler.GetWeekday)
			r.Get("/transport", handler.GetTransport)
			r.Get("/billable", handler.GetBillable)
		})
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Router exposes the configured mux, used by tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

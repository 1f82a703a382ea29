package http

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/mgualv/baba-elite/internal/admin"
	"github.com/mgualv/baba-elite/internal/career"
	"github.com/mgualv/baba-elite/internal/config"
	"github.com/mgualv/baba-elite/internal/imagehost"
	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/metrics"
	"github.com/mgualv/baba-elite/internal/notifier"
	"github.com/mgualv/baba-elite/internal/processor"
	"github.com/mgualv/baba-elite/internal/pubsub"
	"github.com/mgualv/baba-elite/internal/selection"
)

func NewServer(store league.LeagueStore, selections selection.SelectionStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, adminPolicy *admin.Policy, uploader imagehost.Uploader, notifier notifier.Notifier, careerSvc *career.Service, processorSvc *processor.Service, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Selections:     selections,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Admin:          adminPolicy,
		Uploader:       uploader,
		Notifier:       notifier,
		Career:         careerSvc,
		Processor:      processorSvc,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()

	// The web client calls the API from the browser, so every route goes
	// through CORS. X-User-Email carries the authenticated identity.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-User-Email"},
	})
	server.handler = c.Handler(server.Router)

	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Admin-only routes add s.adminOnly on top of the common params handling.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.CreatePlayerHandler(), paramsMiddleware, s.adminOnly))
	s.Router.Handle("GET /players/by-email", Chain(s.GetPlayerByEmailHandler(), paramsMiddleware))
	s.Router.Handle("GET /players/{id}", Chain(s.GetPlayerHandler(), paramsMiddleware))
	s.Router.Handle("PUT /players/{id}", Chain(s.UpdatePlayerHandler(), paramsMiddleware, s.adminOnly))
	s.Router.Handle("DELETE /players/{id}", Chain(s.DeletePlayerHandler(), paramsMiddleware, s.adminOnly))
	s.Router.Handle("POST /players/{id}/photo", Chain(s.UploadPhotoHandler(), paramsMiddleware, s.adminOnly))

	s.Router.Handle("GET /players/{id}/months", Chain(s.ListMonthsHandler(), paramsMiddleware))
	s.Router.Handle("GET /players/{id}/months/{month}", Chain(s.GetMonthStatsHandler(), paramsMiddleware))
	s.Router.Handle("PUT /players/{id}/months/{month}", Chain(s.UpsertMonthStatsHandler(), paramsMiddleware, s.adminOnly))
	s.Router.Handle("DELETE /players/{id}/months/{month}", Chain(s.DeleteMonthStatsHandler(), paramsMiddleware, s.adminOnly))
	s.Router.Handle("GET /months/{month}/rows", Chain(s.ListMonthRowsHandler(), paramsMiddleware))

	s.Router.Handle("GET /rankings", Chain(s.RankingsHandler(), paramsMiddleware))
	s.Router.Handle("GET /hall", Chain(s.HallHandler(), paramsMiddleware))
	s.Router.Handle("POST /career/launch", Chain(s.LaunchGameHandler(), paramsMiddleware, s.adminOnly))

	s.Router.Handle("GET /selection", Chain(s.GetSelectionHandler(), paramsMiddleware))
	s.Router.Handle("POST /selection", Chain(s.SaveSelectionHandler(), paramsMiddleware, s.adminOnly))

	s.Router.Handle("POST /pubsub/match-recorded", Chain(s.MatchRecordedHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

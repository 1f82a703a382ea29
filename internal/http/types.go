package http

import (
	"net/http"

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

type Server struct {
	Store          league.LeagueStore
	Selections     selection.SelectionStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Admin          *admin.Policy
	Uploader       imagehost.Uploader
	Notifier       notifier.Notifier
	Career         *career.Service
	Processor      *processor.Service
	Router         *http.ServeMux
	handler        http.Handler
	pubsub         pubsub.PubSubClient
}

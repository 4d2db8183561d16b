package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var PollsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "river_client_polls_total",
	Help: "snapshot polls attempted",
})

var PollFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "river_client_poll_failures_total",
	Help: "snapshot polls that failed in transport",
})

var IntentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "river_client_intents_total",
	Help: "intents dispatched, by kind",
}, []string{"intent"})

var IntentFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "river_client_intent_failures_total",
	Help: "intent dispatches that failed in transport, by kind",
}, []string{"intent"})

var RenderOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "river_client_render_ops_total",
	Help: "render operations emitted, by region",
}, []string{"region"})

var UnknownPhases = promauto.NewCounter(prometheus.CounterOpts{
	Name: "river_client_unknown_phases_total",
	Help: "snapshots rejected for an unrecognized phase",
})

// Serve exposes /metrics on its own port; it blocks, so run it in a
// goroutine.
func Serve(port int) {
	prometheus.Unregister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	prometheus.Unregister(prometheus.NewGoCollector())

	http.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	log.Infof("serving metrics on %s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Errorf("metrics server stopped: %+v", err)
	}
}

package database

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	kindSelect = "select"
	kindExec   = "exec"
	kindInsert = "insert"
)

var (
	queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "libraryapi",
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "Time spent running a statement, connection acquisition included.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"kind"})

	queryErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "libraryapi",
		Subsystem: "db",
		Name:      "query_errors_total",
		Help:      "Statements that returned an error.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(queryDuration, queryErrors)
}

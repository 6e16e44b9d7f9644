package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compass_portfolio_records_saved_total",
		Help: "Number of evaluation records saved across all sessions.",
	})
	recordsRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compass_portfolio_records_removed_total",
		Help: "Number of evaluation records removed across all sessions.",
	})
)

package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var opsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "restaurant_admin_store_ops_total",
		Help: "Entity store operations by collection key and operation.",
	},
	[]string{"collection", "op"},
)

func observe(collection, op string) {
	opsTotal.WithLabelValues(collection, op).Inc()
}

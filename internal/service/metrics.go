package service

import "github.com/prometheus/client_golang/prometheus"

var itemMutations = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "inventory_item_mutations_total", Help: "Count of persisted item mutations"},
	[]string{"op"},
)

func init() { prometheus.MustRegister(itemMutations) }

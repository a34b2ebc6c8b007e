package endpoints

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	definitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azd_endpoint_definitions_total",
			Help: "Endpoint definitions read from files, by result",
		},
		[]string{"result"},
	)

	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azd_endpoint_registrations_total",
			Help: "Registry changes, by operation",
		},
		[]string{"operation"},
	)
)

// Result label values for azd_endpoint_definitions_total.
const (
	resultLoaded  = "loaded"
	resultInvalid = "invalid"
)

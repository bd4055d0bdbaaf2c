// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package metrics

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/blinklabs-io/curiumd/internal/chaincfg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "curiumd"

type Metrics struct {
	registry             *prometheus.Registry
	networkInfo          *prometheus.GaugeVec
	genesisVerifications *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		networkInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "network_info",
				Help:      "Active network, its message start bytes and genesis hash.",
			},
			[]string{"network", "magic", "genesis"},
		),
		genesisVerifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "genesis_verifications_total",
				Help:      "Genesis block integrity checks by network and result.",
			},
			[]string{"network", "result"},
		),
	}
	m.registry.MustRegister(m.networkInfo, m.genesisVerifications)
	return m
}

// SetActiveNetwork exports params as the only active network.
func (m *Metrics) SetActiveNetwork(params *chaincfg.Params) {
	m.networkInfo.Reset()
	m.networkInfo.WithLabelValues(
		params.Name,
		hex.EncodeToString(params.MessageStart[:]),
		params.GenesisHash.String(),
	).Set(1)
}

// ObserveGenesis counts the genesis check recorded when params was built.
// It does not repeat the check.
func (m *Metrics) ObserveGenesis(params *chaincfg.Params) {
	result := "ok"
	if !params.GenesisVerified {
		result = "unverified"
	}
	m.genesisVerifications.WithLabelValues(params.Name, result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ListenAndServe serves the metrics endpoint at /metrics.
func (m *Metrics) ListenAndServe(address string, port uint) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return http.ListenAndServe(fmt.Sprintf("%s:%d", address, port), mux)
}

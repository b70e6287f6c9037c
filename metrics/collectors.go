// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/messagebus"
	"github.com/bitmark-inc/wramd/wram"
)

const namespace = "wramd"

// trigger results
const (
	ResultCommitted = "committed"
	ResultAborted   = "aborted"
)

// Collectors - everything exported by the node
type Collectors struct {
	registry *prometheus.Registry

	Triggers      *prometheus.CounterVec
	Steps         *prometheus.CounterVec
	Duration      prometheus.Histogram
	Supply        prometheus.Gauge
	PoolTokens    prometheus.Gauge
	PoolRAM       prometheus.Gauge
	Circulating   prometheus.Gauge
	WrapEnabled   prometheus.Gauge
	UnwrapEnabled prometheus.Gauge
}

// NewCollectors - create and register on a private registry
func NewCollectors(queue *messagebus.Queue) *Collectors {
	c := &Collectors{
		registry: prometheus.NewRegistry(),
		Triggers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "triggers_total",
				Help:      "Triggers run, by entry action and result.",
			},
			[]string{"action", "result"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trigger_steps_total",
				Help:      "Inline actions and notifications inside committed triggers.",
			},
			[]string{"kind"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "trigger_duration_seconds",
				Help:      "Trigger run time.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		Supply:        newGauge("wrapped_supply", "Wrapped token supply."),
		PoolTokens:    newGauge("pool_tokens", "Wrapped tokens held by the pool."),
		PoolRAM:       newGauge("pool_ram_bytes", "RAM held by the pool."),
		Circulating:   newGauge("circulating_supply", "Supply not held by the pool."),
		WrapEnabled:   newGauge("wrap_enabled", "1 when wrapping is enabled."),
		UnwrapEnabled: newGauge("unwrap_enabled", "1 when unwrapping is enabled."),
	}

	c.registry.MustRegister(
		c.Triggers,
		c.Steps,
		c.Duration,
		c.Supply,
		c.PoolTokens,
		c.PoolRAM,
		c.Circulating,
		c.WrapEnabled,
		c.UnwrapEnabled,
		prometheus.NewGoCollector(),
	)

	if nil != queue {
		c.registry.MustRegister(prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "receipts_dropped_total",
				Help:      "Receipts discarded because the queue was full.",
			},
			func() float64 { return float64(queue.Dropped()) },
		))
	}
	return c
}

func newGauge(name string, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

// Registry - for serving and tests
func (c *Collectors) Registry() *prometheus.Registry {
	return c.registry
}

// Record - count one receipt
func (c *Collectors) Record(receipt *host.Receipt) {
	result := ResultCommitted
	if !receipt.Committed() {
		result = ResultAborted
	}
	c.Triggers.WithLabelValues(receipt.Action.String(), result).Inc()
	c.Duration.Observe(receipt.Duration.Seconds())

	if receipt.Committed() {
		c.Steps.WithLabelValues(host.TraceInline).Add(float64(receipt.Count(host.TraceInline)))
		c.Steps.WithLabelValues(host.TraceNotify).Add(float64(receipt.Count(host.TraceNotify)))
	}
}

// Observe - set the contract gauges
func (c *Collectors) Observe(status wram.Status) {
	c.Supply.Set(float64(status.Supply.Amount))
	c.PoolTokens.Set(float64(status.PoolTokens.Amount))
	c.PoolRAM.Set(float64(status.PoolRAM))
	c.Circulating.Set(float64(status.Circulating.Amount))
	c.WrapEnabled.Set(flag(status.Config.WrapEnabled))
	c.UnwrapEnabled.Set(flag(status.Config.UnwrapEnabled))
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

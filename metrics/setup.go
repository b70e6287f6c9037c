// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/version"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/background"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/messagebus"
)

// Configuration - the metrics listener, blank disables HTTP
type Configuration struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

type metricsData struct {
	sync.Mutex

	log        *logger.L
	collectors *Collectors
	background *background.T
	server     *http.Server

	initialised bool
}

var globalData metricsData

// Initialise - start recording receipts and serving the collectors
func Initialise(configuration *Configuration, program string, status StatusFunc) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("metrics")
	globalData.log.Info("starting…")

	queue := messagebus.Bus.Receipts
	globalData.collectors = NewCollectors(queue)
	globalData.collectors.registry.MustRegister(version.NewCollector(program))

	processes := background.Processes{
		NewRecorder(queue, globalData.collectors, status),
	}
	globalData.background = background.Start(processes, nil)

	if "" != configuration.Listen {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(globalData.collectors.registry, promhttp.HandlerOpts{}))
		globalData.server = &http.Server{
			Addr:         configuration.Listen,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		log := globalData.log
		server := globalData.server
		log.Infof("listen: %s", configuration.Listen)
		go func() {
			err := server.ListenAndServe()
			if nil != err && http.ErrServerClosed != err {
				log.Errorf("metrics server error: %s", err)
			}
		}()
	} else {
		globalData.log.Info("http disabled")
	}

	globalData.initialised = true
	return nil
}

// Finalise - stop the recorder and the listener
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	if nil != globalData.server {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = globalData.server.Shutdown(ctx)
		cancel()
		globalData.server = nil
	}
	globalData.background.Stop()

	globalData.initialised = false
	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

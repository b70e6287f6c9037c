// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/counter"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/node"
	"github.com/bitmark-inc/wramd/rpc/certificate"
	"github.com/bitmark-inc/wramd/rpc/handler"
	"github.com/bitmark-inc/wramd/rpc/listeners"
	"github.com/bitmark-inc/wramd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connections on the JSON RPC listener
var connectionCountRPC counter.Counter

// Initialise - start the listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, services server.Services, verifier node.Verifier) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	s := server.Create(log, version, &connectionCountRPC, services, verifier)

	tlsConfig, fingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(rpcConfiguration, log, &connectionCountRPC, s, tlsConfig, fingerprint)
	if nil != err {
		return err
	}
	if err := rpcListener.Serve(); nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if 0 != len(httpsConfiguration.Listen) {
		tlsConfig, fingerprint, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			stop()
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

		h := handler.New(log, s, services, time.Now(), version, httpsConfiguration.MaximumConnections)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, tlsConfig, h)
		if nil != err {
			stop()
			return err
		}
		if err := httpsListener.Serve(); nil != err {
			stop()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// caller holds the lock
func stop() {
	for _, l := range globalData.listeners {
		_ = l.Close()
	}
	globalData.listeners = nil
}

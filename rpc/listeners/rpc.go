// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/counter"
	"github.com/bitmark-inc/wramd/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	networks       []string
	addresses      []string
	listeners      []net.Listener
}

// NewRPC - validate the configuration and create a JSON RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	networks, addresses, err := parseListenAddresses(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", logName, err)
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		networks:       networks,
		addresses:      addresses,
	}, nil
}

// Serve - open every listen address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, address := range r.addresses {
		r.log.Infof("starting RPC server: %s", address)
		listener, err := tls.Listen(r.networks[i], address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, listener)
		go r.accept(listener)
	}
	return nil
}

// Close - stop accepting, open connections finish by themselves
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()

	for _, listener := range r.listeners {
		_ = listener.Close()
	}
	r.listeners = nil
	return nil
}

func (r *rpcListener) accept(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}

		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("connection limit reached, reject: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			r.count.Release()
		}()
	}
}

// "*:PORT" listens on tcp4 and tcp6, "[IPv6]:PORT" on tcp6, otherwise tcp4
func parseListenAddresses(listen []string) ([]string, []string, error) {
	networks := make([]string, len(listen))
	addresses := make([]string, len(listen))

	for i, address := range listen {
		host, port, err := net.SplitHostPort(strings.TrimSpace(address))
		if nil != err {
			return nil, nil, fault.InvalidIpAddress
		}

		switch {
		case "*" == host:
			networks[i] = "tcp"
			addresses[i] = net.JoinHostPort("::", port)
			continue
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}
		if nil == net.ParseIP(host) {
			return nil, nil, fault.InvalidIpAddress
		}
		addresses[i] = net.JoinHostPort(host, port)
	}
	return networks, addresses, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/rpc/handler"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log       *logger.L
	networks  []string
	addresses []string
	tlsConfig *tls.Config
	mux       *http.ServeMux
	servers   []*http.Server
}

// NewHTTPS - create the HTTPS listener, nil if no listen address is set
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	networks, addresses, err := parseListenAddresses(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", httpsLogName, err)
		return nil, err
	}

	allow, err := parseAllow(configuration.Allow)
	if nil != err {
		log.Errorf("%s allow error: %s", httpsLogName, err)
		return nil, err
	}
	hdlr.SetAllow(allow)

	mux := http.NewServeMux()
	mux.HandleFunc("/wramd/rpc", hdlr.RPC)
	mux.HandleFunc("/wramd/"+handler.StatusPath, hdlr.Status)
	mux.HandleFunc("/wramd/"+handler.AuditPath, hdlr.Audit)
	mux.HandleFunc("/", hdlr.Root)

	return &httpsListener{
		log:       log,
		networks:  networks,
		addresses: addresses,
		tlsConfig: tlsConfig,
		mux:       mux,
	}, nil
}

// path to CIDR list, to match http.Request.RemoteAddr
func parseAllow(allow map[string][]string) (map[string][]*net.IPNet, error) {
	local := make(map[string][]*net.IPNet)
	for path, addresses := range allow {
		set := make([]*net.IPNet, len(addresses))
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(ip))
			if nil != err {
				return nil, err
			}
			set[i] = cidr
		}
		local[path] = set
	}
	return local, nil
}

// Serve - open every listen address and serve in the background
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, address := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpsLogName, address)

		ln, err := net.Listen(h.networks[i], address)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}

		cfg := h.tlsConfig.Clone()
		cfg.NextProtos = []string{"http/1.1"}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		go func(address string) {
			err := s.Serve(tls.NewListener(ln, cfg))
			if nil != err && http.ErrServerClosed != err {
				h.log.Errorf("%s on: %q  error: %s", httpsLogName, address, err)
			}
		}(address)
	}
	return nil
}

// Close - graceful shutdown of all servers
func (h *httpsListener) Close() error {
	h.Lock()
	defer h.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, s := range h.servers {
		_ = s.Shutdown(ctx)
	}
	h.servers = nil
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/counter"
	"github.com/bitmark-inc/wramd/node"
	"github.com/bitmark-inc/wramd/wram"
)

// paths guarded by the allow list
const (
	StatusPath = "status"
	AuditPath  = "audit"
)

// Handler - HTTP entry points
type Handler interface {
	Root(w http.ResponseWriter, r *http.Request)
	RPC(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Audit(w http.ResponseWriter, r *http.Request)
	SetAllow(allow map[string][]*net.IPNet)
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	wrapper            node.Wrapper
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// New - create the HTTP handler
func New(log *logger.L, server *rpc.Server, wrapper node.Wrapper, start time.Time, version string, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		wrapper:            wrapper,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - CIDR lists for the restricted paths
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *internalConnection) Write(d []byte) (int, error) {
	return c.out.Write(d)
}

func (c *internalConnection) Close() error {
	return nil
}

// Root - anything not matched
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - one JSON RPC request in a POST body
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	codec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if err := h.server.ServeRequest(codec); nil != err {
		h.log.Debugf("serve request error: %s", err)
		sendInternalServerError(w)
	}
}

type statusReply struct {
	Version string      `json:"version"`
	Uptime  string      `json:"uptime"`
	RPCs    uint64      `json:"rpcs"`
	Wrap    wram.Status `json:"wrap"`
}

// Status - GET the contract state
func (h *handler) Status(w http.ResponseWriter, r *http.Request) {
	if !h.permitted(w, r, StatusPath) {
		return
	}
	defer h.count.Release()

	status, err := h.wrapper.Status()
	if nil != err {
		h.log.Errorf("status error: %s", err)
		sendInternalServerError(w)
		return
	}

	sendReply(w, statusReply{
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
		RPCs:    h.count.Uint64(),
		Wrap:    status,
	})
}

// Audit - GET the consistency report
func (h *handler) Audit(w http.ResponseWriter, r *http.Request) {
	if !h.permitted(w, r, AuditPath) {
		return
	}
	defer h.count.Release()

	report, err := h.wrapper.Audit()
	if nil != err {
		h.log.Errorf("audit error: %s", err)
		sendInternalServerError(w)
		return
	}
	if !report.Consistent() {
		h.log.Criticalf("audit failed: %+v", report)
	}
	sendReply(w, report)
}

// check method, allow list and connection limit
//
// on success a connection slot is held
func (h *handler) permitted(w http.ResponseWriter, r *http.Request, path string) bool {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return false
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil != err || !h.allowed(path, net.ParseIP(host)) {
		h.log.Warnf("deny access: %q  path: %s", r.RemoteAddr, path)
		sendForbidden(w)
		return false
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return false
	}
	return true
}

func (h *handler) allowed(path string, ip net.IP) bool {
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

type errorReply struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(errorReply{
		Code:  code,
		Error: message,
	})
	if nil != err {
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}

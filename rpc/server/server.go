// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/counter"
	"github.com/bitmark-inc/wramd/node"
	rpcnode "github.com/bitmark-inc/wramd/rpc/node"
	"github.com/bitmark-inc/wramd/rpc/resource"
	"github.com/bitmark-inc/wramd/rpc/token"
	"github.com/bitmark-inc/wramd/rpc/wrap"
)

// Services - everything the RPC handlers call
type Services interface {
	node.Tokens
	node.Wrapper
	node.Resources
	node.Statistics
}

// Create - an RPC server with every handler registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services, verifier node.Verifier) *rpc.Server {
	server := rpc.NewServer()

	_ = server.Register(token.New(log, services, verifier))
	_ = server.Register(wrap.New(log, services, verifier))
	_ = server.Register(resource.New(log, services, verifier))
	_ = server.Register(rpcnode.New(log, services, version, rpcCount))

	return server
}

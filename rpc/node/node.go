// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/counter"
	"github.com/bitmark-inc/wramd/node"
	"github.com/bitmark-inc/wramd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Version    string
	statistics node.Statistics
	counter    *counter.Counter
}

// New - create the node RPC handler
func New(log *logger.L, statistics node.Statistics, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:        log,
		Limiter:    ratelimit.New(rateLimitNode, rateBurstNode),
		Version:    version,
		statistics: statistics,
		counter:    counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version   string         `json:"version"`
	Uptime    string         `json:"uptime"`
	RPCs      uint64         `json:"rpcs"`
	Triggers  uint64         `json:"triggers"`
	Accounts  int            `json:"accounts"`
	Contracts []account.Name `json:"contracts"`
}

// Info - return some information about this node
func (n *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}

	reply.Version = n.Version
	reply.Uptime = time.Since(n.statistics.Start()).String()
	reply.RPCs = n.counter.Uint64()
	reply.Triggers = n.statistics.Triggers()
	reply.Accounts = n.statistics.Accounts()
	reply.Contracts = n.statistics.Contracts()
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	rpcnode "github.com/bitmark-inc/wramd/rpc/node"
)

// GetInfo - request status from wramd
func (client *Client) GetInfo() (*rpcnode.InfoReply, error) {
	var reply rpcnode.InfoReply
	if err := client.client.Call("Node.Info", rpcnode.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

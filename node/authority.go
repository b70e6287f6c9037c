// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/storage"
)

// Verify - check a request signature against the account's key
func (n *Node) Verify(name account.Name, message []byte, signature account.Signature) error {
	return n.keys.Verify(name, message, signature)
}

// UseNonce - record a signer's request nonce
//
// each signer's nonces must strictly increase, so a request that has
// already been accepted cannot be sent again
func (n *Node) UseNonce(name account.Name, nonce uint64) error {
	return n.runtime.Update(func(trx storage.Transaction) error {
		last, _ := trx.GetN(storage.Pool.Nonces, name.Bytes())
		if nonce <= last {
			n.log.Warnf("signer: %s  nonce: %d  replayed, last: %d", name, nonce, last)
			return fault.ReplayedRequest
		}
		trx.PutN(storage.Pool.Nonces, name.Bytes(), nonce)
		return nil
	})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/wramd/fault"
)

// Keyring - registered accounts and the keys that authorise them
//
// an account registered without a key exists (it can receive) but
// cannot sign requests, e.g. contract and pool accounts whose
// authority is only exercised through delegation
type Keyring struct {
	sync.RWMutex
	keys map[Name]PublicKey
}

// NewKeyring - create an empty keyring
func NewKeyring() *Keyring {
	return &Keyring{
		keys: make(map[Name]PublicKey),
	}
}

// Register - add or replace an account
func (k *Keyring) Register(name Name, key PublicKey) error {
	if !name.Valid() {
		return fault.InvalidAccountName
	}
	k.Lock()
	k.keys[name] = key
	k.Unlock()
	return nil
}

// Exists - is the account registered
func (k *Keyring) Exists(name Name) bool {
	k.RLock()
	_, ok := k.keys[name]
	k.RUnlock()
	return ok
}

// Verify - check a signature made by an account's key
func (k *Keyring) Verify(name Name, message []byte, signature Signature) error {
	k.RLock()
	key, ok := k.keys[name]
	k.RUnlock()
	if !ok {
		return fault.RecipientNotFound
	}
	if 0 == len(key) {
		return fault.MissingAuthority
	}
	return key.Verify(message, signature)
}

// Names - sorted list of registered accounts
func (k *Keyring) Names() []Name {
	k.RLock()
	defer k.RUnlock()
	names := make([]Name, 0, len(k.keys))
	for n := range k.keys {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

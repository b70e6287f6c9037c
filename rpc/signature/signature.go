// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signature - request authorisation for mutating RPC calls
//
// the signer signs
//   sha3-256(method ++ "\n" ++ nonce ++ "\n" ++ JSON(arguments))
// where nonce is big endian uint64 and the arguments carry an empty
// Authorisation
//
// a signer's nonces must strictly increase, the server keeps the
// highest one accepted
package signature

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/node"
)

// Authorisation - embedded in every mutating request
type Authorisation struct {
	Signer    account.Name      `json:"signer"`
	Nonce     uint64            `json:"nonce"`
	Signature account.Signature `json:"signature"`
}

// Digest - the message that is signed
func Digest(method string, nonce uint64, unsigned interface{}) ([]byte, error) {
	data, err := json.Marshal(unsigned)
	if nil != err {
		return nil, err
	}
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, nonce)

	h := sha3.New256()
	h.Write([]byte(method))
	h.Write([]byte{'\n'})
	h.Write(n)
	h.Write([]byte{'\n'})
	h.Write(data)
	return h.Sum(nil), nil
}

// NextNonce - a nonce from the clock, increasing between requests
func NextNonce() uint64 {
	return uint64(time.Now().UnixNano())
}

// New - sign a request, unsigned must hold an empty Authorisation
func New(signer account.Name, key account.PrivateKey, nonce uint64, method string, unsigned interface{}) (Authorisation, error) {
	digest, err := Digest(method, nonce, unsigned)
	if nil != err {
		return Authorisation{}, err
	}
	return Authorisation{
		Signer:    signer,
		Nonce:     nonce,
		Signature: key.Sign(digest),
	}, nil
}

// Check - verify a request's authorisation and consume its nonce
//
// unsigned is the request with its Authorisation cleared
func Check(verifier node.Verifier, method string, unsigned interface{}, auth Authorisation) error {
	if "" == auth.Signer || 0 == len(auth.Signature) {
		return fault.MissingAuthority
	}
	digest, err := Digest(method, auth.Nonce, unsigned)
	if nil != err {
		return err
	}
	if err := verifier.Verify(auth.Signer, digest, auth.Signature); nil != err {
		return err
	}
	return verifier.UseNonce(auth.Signer, auth.Nonce)
}

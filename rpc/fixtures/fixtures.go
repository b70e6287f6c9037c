// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc package tests
package fixtures

import (
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
)

// LogCategory - logger channel used by tests
const LogCategory = "testing"

const testingDirName = "testing"

// SetupTestLogger - log to a scratch directory at critical level
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// KeyPair - a fresh signing key for an account
func KeyPair() (account.PublicKey, account.PrivateKey) {
	public, private, err := account.NewKeyPair()
	if nil != err {
		panic(err)
	}
	return public, private
}

// Certificate - a self signed PEM certificate and key for localhost
func Certificate() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("wramd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}

// Verifier - a keyring that remembers nonces in memory
type Verifier struct {
	*account.Keyring
	last map[account.Name]uint64
}

// NewVerifier - wrap a keyring
func NewVerifier(keys *account.Keyring) *Verifier {
	return &Verifier{
		Keyring: keys,
		last:    make(map[account.Name]uint64),
	}
}

// UseNonce - accept strictly increasing nonces
func (v *Verifier) UseNonce(name account.Name, nonce uint64) error {
	if nonce <= v.last[name] {
		return fault.ReplayedRequest
	}
	v.last[name] = nonce
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/wramd/fault"
)

// key codes, first byte of the encoded form
const (
	checksumLength = 4

	publicKeyCode  = 0x11
	privateKeyCode = 0x12
)

// PublicKey - an ed25519 public key that authorises an account
type PublicKey []byte

// PrivateKey - an ed25519 private key used by clients to sign requests
type PrivateKey []byte

// NewKeyPair - generate a random ed25519 key pair
func NewKeyPair() (PublicKey, PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}
	return PublicKey(publicKey), PrivateKey(privateKey), nil
}

// PublicKeyFromBase58 - decode and checksum a public key
func PublicKeyFromBase58(s string) (PublicKey, error) {
	b, err := decode(s, publicKeyCode, ed25519.PublicKeySize)
	if nil != err {
		return nil, err
	}
	return PublicKey(b), nil
}

// PrivateKeyFromBase58 - decode and checksum a private key
func PrivateKeyFromBase58(s string) (PrivateKey, error) {
	b, err := decode(s, privateKeyCode, ed25519.PrivateKeySize)
	if nil != err {
		return nil, err
	}
	return PrivateKey(b), nil
}

// String - base58 encoding of the public key
func (key PublicKey) String() string {
	return encode(publicKeyCode, key)
}

// MarshalText - convert a public key to its base58 JSON form
func (key PublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - convert a base58 public key
func (key *PublicKey) UnmarshalText(s []byte) error {
	k, err := PublicKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*key = k
	return nil
}

// Verify - check the signature of a message
func (key PublicKey) Verify(message []byte, signature Signature) error {
	if ed25519.PublicKeySize != len(key) || ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(key), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// String - base58 encoding of the private key
func (key PrivateKey) String() string {
	return encode(privateKeyCode, key)
}

// PublicKey - extract the public half
func (key PrivateKey) PublicKey() PublicKey {
	return PublicKey(ed25519.PrivateKey(key).Public().(ed25519.PublicKey))
}

// Sign - sign a message
func (key PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(ed25519.PrivateKey(key), message))
}

// code ++ key ++ checksum(4)
func encode(code byte, key []byte) string {
	buffer := append([]byte{code}, key...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

func decode(s string, code byte, size int) ([]byte, error) {
	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return nil, fault.CannotDecodeKey
	}
	if len(decoded) != 1+size+checksumLength {
		return nil, fault.InvalidKeyLength
	}
	if code != decoded[0] {
		return nil, fault.CannotDecodeKey
	}
	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.CannotDecodeKey
	}
	key := make([]byte, size)
	copy(key, decoded[1:checksumStart])
	return key, nil
}

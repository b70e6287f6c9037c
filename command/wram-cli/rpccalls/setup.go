// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/rpc/certificate"
	"github.com/bitmark-inc/wramd/rpc/signature"
)

// Identity - the account that signs requests
type Identity struct {
	Signer     account.Name
	PrivateKey account.PrivateKey
}

// Client - to hold RPC connections streams
type Client struct {
	conn     net.Conn
	client   *rpc.Client
	identity *Identity
	verbose  bool
	handle   io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a wramd
//
// an empty fingerprint accepts any server certificate
func NewClient(connect string, fingerprint string, identity *Identity, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" != fingerprint {
		expected, err := hex.DecodeString(fingerprint)
		if nil != err || 32 != len(expected) {
			return nil, fault.InvalidFingerprint
		}
		tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(rawCerts) {
				return fault.InvalidFingerprint
			}
			actual := certificate.Fingerprint(rawCerts[0])
			if !bytes.Equal(expected, actual[:]) {
				return fault.InvalidFingerprint
			}
			return nil
		}
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:     conn,
		client:   jsonrpc.NewClient(conn),
		identity: identity,
		verbose:  verbose,
		handle:   handle,
	}
	return r, nil
}

// Close - shutdown the wramd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign a request whose Authorisation is still empty
func (client *Client) authorise(method string, unsigned interface{}) (signature.Authorisation, error) {
	if nil == client.identity {
		return signature.Authorisation{}, fault.MissingAuthority
	}
	return signature.New(client.identity.Signer, client.identity.PrivateKey, signature.NextNonce(), method, unsigned)
}

func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" Request", arguments)
	err := client.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}
	client.printJson(method+" Reply", reply)
	return nil
}

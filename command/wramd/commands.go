// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/node"
	"github.com/bitmark-inc/wramd/rpc/certificate"
	"github.com/bitmark-inc/wramd/util"
)

const (
	identityFilename = "wramd.identity"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// identity file contents
type identity struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-identity", "id":
		fileName := identityFilename
		if len(arguments) > 0 {
			fileName = arguments[0]
		}
		if util.EnsureFileExists(fileName) {
			exitwithstatus.Message("generate identity: %q error: %s", fileName, fault.KeyFileAlreadyExists)
		}
		err := makeIdentity(fileName)
		if nil != err {
			exitwithstatus.Message("generate identity: %q error: %s", fileName, err)
		}
		fmt.Printf("generated identity: %q\n", fileName)

	case "gen-rpc-cert", "rpc":
		dir := "."
		if len(arguments) > 0 {
			dir = arguments[0]
			arguments = arguments[1:]
		}
		certificateFilename := filepath.Join(dir, rpcCertificateKeyFilename)
		privateKeyFilename := filepath.Join(dir, rpcPrivateKeyFilename)

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, 0 != len(arguments), arguments)
		if nil != err {
			exitwithstatus.Message("generate RPC key: %q and certificate: %q  error: %s", privateKeyFilename, certificateFilename, err)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  generate-identity [FILE]   (id)     - create an account key pair in: %q\n", identityFilename)
		fmt.Printf("                                        the public key goes in the accounts table\n")
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-config                (cfg)    - check and print the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  audit                      (a)      - check supply against balances and\n")
		fmt.Printf("                                        circulating supply against pool RAM\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)

	default:
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "dump-config", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database and node are available
func processDataCommand(log *logger.L, arguments []string, n *node.Node) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "audit", "a":
		report, err := n.Audit()
		if nil != err {
			exitwithstatus.Message("audit error: %s", err)
		}
		holdings, err := n.RAMHoldings()
		if nil != err {
			exitwithstatus.Message("audit RAM holdings error: %s", err)
		}
		printJSON(map[string]interface{}{
			"audit": report,
			"ram":   holdings,
		})
		if !report.Consistent() {
			log.Critical("audit failed")
			exitwithstatus.Message("audit failed")
		}

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func makeIdentity(fileName string) error {
	public, private, err := account.NewKeyPair()
	if nil != err {
		return err
	}
	data, err := json.MarshalIndent(identity{
		PublicKey:  public.String(),
		PrivateKey: private.String(),
	}, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, append(data, '\n'), 0600)
}

func printJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	os.Stdout.Write(b)
	os.Stdout.WriteString("\n")
}

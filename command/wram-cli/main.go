// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/wramd/wram"
)

type metadata struct {
	connect      string
	fingerprint  string
	identityFile string
	signer       string
	verbose      bool
	e            io.Writer
	w            io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "wram-cli"
	app.Usage = "client for the wramd wrapped RAM node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	contractFlag := cli.StringFlag{
		Name:  "contract, c",
		Value: wram.DefaultContract.String(),
		Usage: " token contract `ACCOUNT`",
	}
	memoFlag := cli.StringFlag{
		Name:  "memo, m",
		Value: "",
		Usage: " transfer memo `STRING`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, C",
			Value:  "127.0.0.1:2130",
			Usage:  " wramd host/IP and port, `HOST:PORT`",
			EnvVar: "WRAM_CONNECT",
		},
		cli.StringFlag{
			Name:  "fingerprint, F",
			Value: "",
			Usage: " expected server certificate `HEX` fingerprint",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "wramd.identity",
			Usage:  " signing key `FILE`",
			EnvVar: "WRAM_IDENTITY",
		},
		cli.StringFlag{
			Name:   "account, a",
			Value:  "",
			Usage:  " signing `ACCOUNT` name",
			EnvVar: "WRAM_ACCOUNT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in identity file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "supply",
			Usage:     "token supply statistics",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				contractFlag,
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*token `CODE`",
				},
			},
			Action: runSupply,
		},
		{
			Name:      "balance",
			Usage:     "token balances of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				contractFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: " token `CODE` [all rows]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "ram",
			Usage:     "RAM bytes held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
			},
			Action: runRAM,
		},
		{
			Name:      "status",
			Usage:     "wrapped RAM contract status",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "audit, A",
					Usage: " include the consistency checks",
				},
			},
			Action: runStatus,
		},
		{
			Name:   "info",
			Usage:  "display wramd status",
			Action: runInfo,
		},
		{
			Name:      "create",
			Usage:     "create a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				contractFlag,
				cli.StringFlag{
					Name:  "issuer, I",
					Value: "",
					Usage: "*issuer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "maximum, M",
					Value: "",
					Usage: "*maximum supply `QUANTITY` e.g. \"1000000 WRAM\"",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "issue",
			Usage:     "issue tokens to the issuer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				contractFlag,
				memoFlag,
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: " receiving `ACCOUNT` [signing account]",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*`QUANTITY` to issue",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "retire",
			Usage:     "retire tokens held by the issuer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				contractFlag,
				memoFlag,
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*`QUANTITY` to retire",
				},
			},
			Action: runRetire,
		},
		{
			Name:      "transfer",
			Usage:     "transfer tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				contractFlag,
				memoFlag,
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*`QUANTITY` to send",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "open",
			Usage:     "open an empty balance row",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				contractFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*row owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*`SYMBOL` as precision,CODE",
				},
			},
			Action: runOpen,
		},
		{
			Name:      "close",
			Usage:     "close a zero balance row",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				contractFlag,
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*`SYMBOL` as precision,CODE",
				},
			},
			Action: runClose,
		},
		{
			Name:      "wrap",
			Usage:     "wrap RAM by sending bytes to the contract",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				contractFlag,
				memoFlag,
				cli.Int64Flag{
					Name:  "bytes, b",
					Value: 0,
					Usage: "*RAM `BYTES` to wrap",
				},
			},
			Action: runWrap,
		},
		{
			Name:      "unwrap",
			Usage:     "unwrap tokens back into RAM",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "bytes, b",
					Value: 0,
					Usage: "*RAM `BYTES` to unwrap",
				},
			},
			Action: runUnwrap,
		},
		{
			Name:      "ram-transfer",
			Usage:     "transfer RAM bytes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				memoFlag,
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.Int64Flag{
					Name:  "bytes, b",
					Value: 0,
					Usage: "*RAM `BYTES` to send",
				},
			},
			Action: runRAMTransfer,
		},
		{
			Name:      "buy-ram",
			Usage:     "buy RAM bytes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " receiving `ACCOUNT` [signing account]",
				},
				cli.Int64Flag{
					Name:  "bytes, b",
					Value: 0,
					Usage: "*RAM `BYTES` to buy",
				},
			},
			Action: runBuyRAM,
		},
		{
			Name:      "configure",
			Usage:     "enable or disable wrap and unwrap",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "wrap, w",
					Usage: " enable wrap",
				},
				cli.BoolFlag{
					Name:  "unwrap, u",
					Usage: " enable unwrap",
				},
			},
			Action: runConfigure,
		},
		{
			Name:      "add-egress",
			Usage:     "block accounts from receiving wrapped tokens",
			ArgsUsage: "ACCOUNT...",
			Action:    runAddEgress,
		},
		{
			Name:      "remove-egress",
			Usage:     "unblock accounts",
			ArgsUsage: "ACCOUNT...",
			Action:    runRemoveEgress,
		},
		{
			Name:   "migrate",
			Usage:  "move legacy RAM into the wrap pool",
			Action: runMigrate,
		},
		{
			Name:  "version",
			Usage: "display wram-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:      c.GlobalString("connect"),
			fingerprint:  c.GlobalString("fingerprint"),
			identityFile: c.GlobalString("identity"),
			signer:       c.GlobalString("account"),
			verbose:      c.GlobalBool("verbose"),
			e:            c.App.ErrWriter,
			w:            c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/arkecosystem/arkcrypto/chain"
	"github.com/arkecosystem/arkcrypto/configuration"
	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/transaction"
)

type metadata struct {
	manager *transaction.Manager
	verbose bool
	tempDir string
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp(true)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

// newApp - the command tree; standalone also owns the logger
func newApp(standalone bool) *cli.App {

	app := cli.NewApp()
	app.Name = "ark-tx"
	app.Usage = "decode, verify and build ARK transactions offline"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Devnet,
			Usage: " preset `NETWORK` [mainnet|devnet|testnet|unitnet]",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " network configuration `FILE` (lua), overrides --network",
		},
		cli.Uint64Flag{
			Name:  "height",
			Value: 1,
			Usage: " chain `HEIGHT` selecting the milestone",
		},
		cli.StringFlag{
			Name:  "log-dir, l",
			Value: "",
			Usage: " log `DIRECTORY` [default: temporary]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode a serialized transaction",
			ArgsUsage: "HEX",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "unsafe, u",
					Usage: " accept any version and skip schema checks",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "verify",
			Usage:     "strictly decode and verify a serialized transaction",
			ArgsUsage: "HEX",
			Action:    runVerify,
		},
		{
			Name:      "transfer",
			Usage:     "build and sign a transfer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "passphrase, p",
					Value: "",
					Usage: "*sender `PASSPHRASE`",
				},
				cli.StringFlag{
					Name:  "second-passphrase, s",
					Value: "",
					Usage: " second `PASSPHRASE`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*recipient `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*`ARKTOSHI` to send",
				},
				cli.Uint64Flag{
					Name:  "fee, f",
					Value: 0,
					Usage: " `ARKTOSHI` fee [default: static fee]",
				},
				cli.Uint64Flag{
					Name:  "nonce",
					Value: 1,
					Usage: " sender `NONCE` (version 2)",
				},
				cli.StringFlag{
					Name:  "vendor-field, m",
					Value: "",
					Usage: " vendor field `TEXT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "address",
			Usage:     "address of a passphrase or public key",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "passphrase, p",
					Value: "",
					Usage: "+`PASSPHRASE`",
				},
				cli.StringFlag{
					Name:  "public-key, k",
					Value: "",
					Usage: "+hex `KEY`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "milestone",
			Usage:     "milestone in force at a height [default: --height]",
			ArgsUsage: "[HEIGHT]",
			Action:    runMilestone,
		},
		{
			Name:      "sign-message",
			Usage:     "sign a text message",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "passphrase, p",
					Value: "",
					Usage: "*signer `PASSPHRASE`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*`TEXT` to sign",
				},
			},
			Action: runMessageSign,
		},
		{
			Name:      "verify-message",
			Usage:     "verify a signed text message",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "public-key, k",
					Value: "",
					Usage: "*hex `KEY`",
				},
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: "*hex DER `SIGNATURE`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*signed `TEXT`",
				},
			},
			Action: runMessageVerify,
		},
		{
			Name:  "version",
			Usage: "display ark-tx version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// select the network
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		if standalone {
			if err := initialiseLogging(c, m); nil != err {
				return err
			}
		}

		context, err := loadContext(c.GlobalString("config"), c.GlobalString("network"))
		if nil != err {
			return err
		}
		if err := context.SetHeight(c.GlobalUint64("height")); nil != err {
			return err
		}

		if m.verbose {
			fmt.Fprintf(m.e, "network: %s  height: %d\n", context.Network().Name, context.Height())
		}
		m.manager = transaction.NewManager(context)
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !standalone {
			return nil
		}
		fault.Finalise()
		logger.Finalise()
		if "" != m.tempDir {
			return os.RemoveAll(m.tempDir)
		}
		return nil
	}

	return app
}

func initialiseLogging(c *cli.Context, m *metadata) error {
	directory := c.GlobalString("log-dir")
	if "" == directory {
		d, err := os.MkdirTemp("", "ark-tx-")
		if nil != err {
			return errors.Wrap(err, "log directory")
		}
		directory = d
		m.tempDir = d
	}

	level := "error"
	if m.verbose {
		level = "info"
	}
	logging := logger.Configuration{
		Directory: directory,
		File:      "ark-tx.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	if err := logger.Initialise(logging); nil != err {
		return errors.Wrapf(err, "logger in: %q", directory)
	}
	return fault.Initialise()
}

func loadContext(fileName string, network string) (*chain.Context, error) {
	if "" != fileName {
		return configuration.Context(fileName)
	}
	if !chain.Valid(network) {
		return nil, errors.Wrapf(ErrInvalidNetwork, "network: %q", network)
	}
	return chain.FromPreset(network)
}

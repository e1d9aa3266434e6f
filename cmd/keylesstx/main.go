// Copyright 2025 The keylesstx Authors
// This file is part of keylesstx.
//
// keylesstx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// keylesstx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with keylesstx. If not, see <http://www.gnu.org/licenses/>.

// keylesstx is a command-line tool for building and decoding keyless
// Ethereum transactions.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/keylesstx/keylesstx/common/math"
	"github.com/keylesstx/keylesstx/internal/flags"
	"github.com/keylesstx/keylesstx/keyless"
	"github.com/keylesstx/keylesstx/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var (
	gasLimitFlag = &flags.BigFlag{
		Name:  "gas-limit",
		Usage: "Gas limit of the transaction (decimal or 0x-prefixed hex)",
	}
	gasPriceFlag = &flags.BigFlag{
		Name:  "gas-price",
		Usage: "Gas price in wei (decimal or 0x-prefixed hex)",
	}
	valueFlag = &flags.BigFlag{
		Name:  "value",
		Usage: "Value in wei transferred by the transaction (decimal or 0x-prefixed hex)",
	}
	toFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Recipient address (0x-prefixed, EIP-55 checksummed)",
	}
	dataFlag = &cli.StringFlag{
		Name:  "data",
		Usage: "Call data as 0x-prefixed hex (\"0x\" for none)",
	}
	bytecodeFlag = &cli.StringFlag{
		Name:  "bytecode",
		Usage: "Contract creation code as 0x-prefixed hex",
	}
	sigRFlag = &cli.StringFlag{
		Name:  "sig-r",
		Usage: "Override the fixed signature r component (0x-prefixed hex)",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
)

var app = flags.NewApp("keyless Ethereum transaction tool")

func init() {
	app.Flags = []cli.Flag{verbosityFlag}
	app.Commands = []*cli.Command{
		{
			Name:      "execute",
			Usage:     "Build a keyless transaction invoking an existing account",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				gasLimitFlag, gasPriceFlag, valueFlag, toFlag, dataFlag, sigRFlag,
			},
			Action: buildExecution,
		},
		{
			Name:      "deploy",
			Usage:     "Build a keyless contract creation transaction",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				gasLimitFlag, gasPriceFlag, valueFlag, bytecodeFlag, sigRFlag,
			},
			Action: buildDeployment,
		},
		{
			Name:      "parse",
			Usage:     "Decode a raw legacy transaction into its fields",
			ArgsUsage: "<rawtx>",
			Action:    parseTx,
		},
	}
	app.Before = func(ctx *cli.Context) error {
		setupLogging(ctx)
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		flags.Fatalf("%v", err)
	}
}

func setupLogging(ctx *cli.Context) {
	usecolor := isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb"
	output := io.Writer(os.Stderr)
	if usecolor {
		output = colorable.NewColorableStderr()
	}
	verbosity := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(output, verbosity, usecolor)))
}

// config assembles a build configuration from the command line context. Unset
// flags stay absent so the library reports the exact missing set.
func config(ctx *cli.Context) *keyless.Config {
	cfg := &keyless.Config{
		To:       ctx.String(toFlag.Name),
		Data:     ctx.String(dataFlag.Name),
		Bytecode: ctx.String(bytecodeFlag.Name),
		R:        ctx.String(sigRFlag.Name),
	}
	if ctx.IsSet(gasLimitFlag.Name) {
		cfg.GasLimit = (*math.HexOrDecimal256)(flags.GlobalBig(ctx, gasLimitFlag.Name))
	}
	if ctx.IsSet(gasPriceFlag.Name) {
		cfg.GasPrice = (*math.HexOrDecimal256)(flags.GlobalBig(ctx, gasPriceFlag.Name))
	}
	if ctx.IsSet(valueFlag.Name) {
		cfg.Value = (*math.HexOrDecimal256)(flags.GlobalBig(ctx, valueFlag.Name))
	}
	return cfg
}

func buildExecution(ctx *cli.Context) error {
	res, err := keyless.BuildExecution(config(ctx))
	if err != nil {
		return err
	}
	log.Info("Built keyless transaction", "sender", res.SenderAddress, "cost", res.UpfrontCost)
	return emit(res)
}

func buildDeployment(ctx *cli.Context) error {
	res, err := keyless.BuildDeployment(config(ctx))
	if err != nil {
		return err
	}
	log.Info("Built keyless deployment", "sender", res.SenderAddress, "contract", res.ContractAddress, "cost", res.UpfrontCost)
	return emit(res)
}

func parseTx(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("parse requires exactly one raw transaction argument")
	}
	parsed, err := keyless.Parse(ctx.Args().First())
	if err != nil {
		return err
	}
	return emit(parsed)
}

// emit writes v to stdout as JSON, indented when stdout is a terminal.
func emit(v any) error {
	var (
		out []byte
		err error
	)
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(out))
	return err
}

// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"

	"github.com/Thermoquad/pronto/pkg/pronto"
	"github.com/Thermoquad/pronto/pkg/transmit"
	"github.com/spf13/cobra"
)

var (
	// Remote table flags
	remotesPath   string
	snapshotPath  string
	writeSnapshot bool

	// Serial transmitter flags
	portName string
	baudRate int

	// WebSocket transmitter flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// serviceIdx under which the transmitter selected by the flags above
	// is registered; remote definitions name this same value in their
	// IRemitter.ServiceIdx field.
	serviceIdx string

	codec *pronto.Codec
)

var rootCmd = &cobra.Command{
	Use:   "pronto",
	Short: "Pronto IR remote code encoder",
	Long: `pronto encodes logical IR remote button presses — a protocol, device,
subdevice, and function, looked up by name from a loaded remote table, or
supplied directly via the irp subcommand — into Pronto CCF hexadecimal
waveform strings, and hands them to a registered transmitter.

Remote table:
  --remotes path/to/remotes.json   (send/browse need this or --snapshot)
  --snapshot path/to/remotes.cbor  (optional CBOR cache; see --write-snapshot)

Transmitter (pick one):
  Serial:    --port /dev/ttyUSB0 [--baud 9600]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the
PRONTO_WS_PASSWORD environment variable, or prompted interactively if not
set. There is deliberately no --password flag, to avoid leaking credentials
in shell history.`,
	Version: "1.0.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&remotesPath, "remotes", "", "Path to a JSON remote table")
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "Path to a CBOR remote-table snapshot (read if --remotes is absent, written if --write-snapshot is set)")
	rootCmd.PersistentFlags().BoolVar(&writeSnapshot, "write-snapshot", false, "Write --snapshot after loading --remotes")

	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device for the IR transmitter")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 9600, "Baud rate (serial transmitter only)")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://) for the IR transmitter")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().StringVar(&serviceIdx, "service-idx", "default", "ServiceIdx under which the selected transmitter is registered")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadCodec builds a Codec from --remotes/--snapshot and registers
// whichever transmitter --port or --url selects. Subcommands that need
// a live codec call this once at the start of their RunE.
func loadCodec() (*pronto.Codec, error) {
	if codec != nil {
		return codec, nil
	}

	c := pronto.NewCodec()

	remotes, err := loadRemoteTable()
	if err != nil {
		return nil, err
	}
	if remotes != nil {
		c.LoadRemotes(remotes)
	}

	if t, err := openTransmitter(); err != nil {
		return nil, err
	} else if t != nil {
		c.RegisterTransmitter(serviceIdx, t)
	}

	codec = c
	return codec, nil
}

func loadRemoteTable() (map[string]*pronto.Remote, error) {
	switch {
	case remotesPath != "":
		data, err := os.ReadFile(remotesPath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", remotesPath, err)
		}
		remotes, errs := pronto.LoadRemoteTable(data)
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "pronto: %s\n", e)
		}
		if writeSnapshot && snapshotPath != "" {
			snap, err := pronto.SaveSnapshot(remotes)
			if err != nil {
				return nil, err
			}
			if err := os.WriteFile(snapshotPath, snap, 0o644); err != nil {
				return nil, fmt.Errorf("write %s: %w", snapshotPath, err)
			}
		}
		return remotes, nil

	case snapshotPath != "":
		data, err := os.ReadFile(snapshotPath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", snapshotPath, err)
		}
		remotes, errs := pronto.LoadSnapshot(data)
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "pronto: %s\n", e)
		}
		return remotes, nil

	default:
		return nil, nil
	}
}

// openTransmitter opens whichever of --port/--url was supplied, wrapped
// to satisfy pronto.Transmitter. Returns (nil, nil) if neither was set —
// some subcommands (irp --dry-run, browse in list-only mode) don't need
// one.
func openTransmitter() (pronto.Transmitter, error) {
	switch {
	case wsURL != "":
		password := ""
		if wsUsername != "" {
			var err error
			password, err = transmit.GetPassword()
			if err != nil {
				return nil, err
			}
		}
		return transmit.OpenWebSocketTransmitter(wsURL, wsUsername, password, wsNoSSLVerify)

	case portName != "":
		return transmit.OpenSerialTransmitter(portName, baudRate)

	default:
		return nil, nil
	}
}

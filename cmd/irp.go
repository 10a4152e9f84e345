// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	irpProtocol  string
	irpDevice    int
	irpSubdevice int
	irpFnc       string
	irpRepeats   int
	irpDeviceID  string
	irpDryRun    bool
)

var irpCmd = &cobra.Command{
	Use:   "irp",
	Short: "Encode (and optionally transmit) an ad-hoc IRP-style code",
	Long: `irp builds a Pronto code directly from a protocol tag, device,
subdevice, and function, without needing an entry in a loaded remote table.

--fnc accepts a decimal integer, a 0x-prefixed hex integer, a quoted Pronto
hex-word string (protocol PRONTO), or a comma-separated integer list
(protocol GC100). A RAW list is parsed too, but irp has no way to supply
the Freq a RAW code needs, so a RAW code fails validation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fnc, err := parseIRPFnc(irpProtocol, irpFnc)
		if err != nil {
			return err
		}

		c, err := loadCodec()
		if err != nil {
			return err
		}

		if irpDryRun {
			pronto, err := c.EncodeIRPCode(irpProtocol, irpDevice, irpSubdevice, fnc, irpRepeats)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pronto)
			return nil
		}

		if err := c.SendIRPCode(context.Background(), serviceIdx, irpDeviceID, irpProtocol, irpDevice, irpSubdevice, fnc, irpRepeats); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sent %s D=%d S=%d F=%s\n", irpProtocol, irpDevice, irpSubdevice, irpFnc)
		return nil
	},
}

func init() {
	irpCmd.Flags().StringVar(&irpProtocol, "protocol", "", "Protocol tag (NEC2, RC5, SONY12, MCE, ...)")
	irpCmd.Flags().IntVar(&irpDevice, "device", 0, "Device code")
	irpCmd.Flags().IntVar(&irpSubdevice, "subdevice", -1, "Subdevice code (-1 for absent)")
	irpCmd.Flags().StringVar(&irpFnc, "fnc", "", "Function code")
	irpCmd.Flags().IntVar(&irpRepeats, "repeats", 0, "Repeat count, 0-5")
	irpCmd.Flags().StringVar(&irpDeviceID, "device-id", "", "Transmitter-specific device address")
	irpCmd.Flags().BoolVar(&irpDryRun, "dry-run", false, "Print the Pronto string instead of transmitting it")
	irpCmd.MarkFlagRequired("protocol")
	irpCmd.MarkFlagRequired("fnc")
	rootCmd.AddCommand(irpCmd)
}

// parseIRPFnc interprets the --fnc flag per protocol family: GC100/RAW
// take a comma-separated integer list, PRONTO takes the hex string
// itself, everything else takes a single integer (decimal or 0x-hex).
// No Freq is supplied, so a RAW code built from it fails validation.
func parseIRPFnc(protocol, raw string) (interface{}, error) {
	upper := strings.ToUpper(strings.TrimSpace(protocol))
	switch upper {
	case "PRONTO":
		return raw, nil
	case "GC100", "RAW":
		parts := strings.Split(raw, ",")
		out := make([]interface{}, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("--fnc: %w", err)
			}
			out = append(out, float64(n))
		}
		return out, nil
	default:
		s := strings.TrimSpace(raw)
		base := 10
		if strings.HasPrefix(strings.ToLower(s), "0x") {
			s = s[2:]
			base = 16
		}
		n, err := strconv.ParseInt(s, base, 64)
		if err != nil {
			return nil, fmt.Errorf("--fnc: %w", err)
		}
		return float64(n), nil
	}
}

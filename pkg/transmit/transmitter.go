// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package transmit supplies reference Transmitter implementations —
// pkg/pronto's sole hardware-facing interface — over a serial GC100-style
// IR blaster and a WebSocket BroadLink-style bridge. The wire grammar
// each real device expects is a transport-layer contract this module
// only documents; these implementations frame the Pronto CCF string
// plainly enough to be adapted to a specific device without pulling
// serial/websocket dependencies into the pure codec in pkg/pronto.
package transmit

import "context"

// Transmitter mirrors pronto.Transmitter so callers that only import
// pkg/transmit don't need to also import pkg/pronto just to name the
// interface they're satisfying.
type Transmitter interface {
	Send(ctx context.Context, prontoCode string, deviceID string) error
}

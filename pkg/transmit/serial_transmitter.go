// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package transmit

import (
	"context"
	"fmt"

	"go.bug.st/serial"
)

// SerialTransmitter carries Pronto codes to a GC100-style IR blaster
// attached over a serial port, framed as a "sendir" command line.
type SerialTransmitter struct {
	port serial.Port
}

// OpenSerialTransmitter opens portName at baudRate, 8 data bits, no
// parity, one stop bit — the framing every serial IR blaster this
// module has been pointed at expects.
func OpenSerialTransmitter(portName string, baudRate int) (*SerialTransmitter, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("pronto/transmit: open serial port %s: %w", portName, err)
	}
	return &SerialTransmitter{port: port}, nil
}

// Send writes one GC100-style sendir command carrying prontoCode to the
// module/connector addressed by deviceID (e.g. "1:1").
func (s *SerialTransmitter) Send(ctx context.Context, prontoCode string, deviceID string) error {
	line := fmt.Sprintf("sendir,%s,1,%s\r", deviceID, prontoCode)
	_, err := s.port.Write([]byte(line))
	return err
}

// Close releases the underlying serial port.
func (s *SerialTransmitter) Close() error {
	return s.port.Close()
}

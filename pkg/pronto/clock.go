// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

// ClockContext carries the per-encode clock state that every burst
// primitive needs: the true carrier frequency after prescaler rounding,
// and the number of master-clock cycles in one basic time unit.
//
// The reference implementation this module descends from kept the
// equivalent of these two values as process-level globals, set once at
// the start of every encode and read by every burst primitive during
// that same encode. That's safe only because encodes never interleave.
// Here they're an explicit value threaded through the call graph instead,
// so an encode is self-contained and safe to run concurrently with
// another encode in a different goroutine.
type ClockContext struct {
	// IRClk is the true carrier frequency in Hz, after prescaler rounding:
	// MasterOscillatorHz / Prescaler.
	IRClk float64
	// BasicTimeUnitDivisor is k, the per-protocol number of
	// master-clock cycles making up one basic time unit.
	BasicTimeUnitDivisor int
	// Prescaler is the raw Pronto header word: round(MasterOscillatorHz / fReq).
	Prescaler uint16
}

// SetClockRate computes the Pronto prescaler for a requested carrier
// frequency and derives a ClockContext carrying the true carrier and the
// basic-time-unit divisor k. Every protocol encoder calls this once
// before emitting any bursts; for PIONEER, codec.go makes a second call
// at 40kHz for the header prescaler only.
func SetClockRate(fReq float64, k int) ClockContext {
	prescaler := roundToInt(MasterOscillatorHz / fReq)
	if prescaler < 1 {
		prescaler = 1
	}
	trueCarrier := MasterOscillatorHz / float64(prescaler)
	return ClockContext{
		IRClk:                trueCarrier,
		BasicTimeUnitDivisor: k,
		Prescaler:            uint16(prescaler),
	}
}

// BasicTimeUnitMs returns the duration, in milliseconds, of one basic
// time unit under this clock context: (k * 1000) / true_carrier.
func (c ClockContext) BasicTimeUnitMs() float64 {
	return (float64(c.BasicTimeUnitDivisor) * 1000) / c.IRClk
}

// CyclesForUnits converts a count of basic time units into cycles:
// units × k. The carrier frequency does not enter into it, and the result
// is not rounded.
func (c ClockContext) CyclesForUnits(units float64) float64 {
	return units * float64(c.BasicTimeUnitDivisor)
}

// CyclesForFrameMs returns the number of master-clock cycles spanning a
// frame of the given duration in milliseconds, used for lead-out padding:
// round(true_carrier * frame_ms / 1000).
func (c ClockContext) CyclesForFrameMs(frameMs float64) float64 {
	return float64(roundToInt(c.IRClk * frameMs / 1000))
}

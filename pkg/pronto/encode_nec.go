// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

// necTiming is the standard NEC pulse-distance timing table, in basic
// time units: data (1,-1)/(1,-3).
var necTiming = PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

const (
	necLeadInMark  = 16
	necLeadInSpace = 8
	necxLeadInMark = 8 // NECx's shortened lead-in mark; space is unchanged

	necFreq    = 38000
	necK       = 21
	necFrameMs = 108 // frame-length pad target
)

// pioneerLeadFreq and pioneerDataFreq are Pioneer's split-rate special
// case: the Pronto header carries the 40kHz prescaler (codec.go sets it
// from pioneerLeadFreq), while every burst of the frame, including the
// lead-out pad, is computed in the 38kHz clock context. Both contexts
// share the NEC basic-time-unit divisor.
const (
	pioneerLeadFreq = 40000
	pioneerDataFreq = 38000
)

// encodeNEC builds one NEC-family frame body (without the Pronto
// preamble) for NEC/NEC2/LG/SAMSUNG/SHARP/DENON-NEC. NECx uses a shorter
// (8,-8) lead-in instead of the standard (16,-8); PIONEER is handled by
// encodePioneer below because of its split clock rate.
func encodeNEC(p Protocol, cb CmdBytesNEC) ([]uint16, float64) {
	ctx := SetClockRate(necFreq, necK)
	b := &burstBuilder{}

	leadMark := float64(necLeadInMark)
	if p == ProtocolNECx {
		leadMark = necxLeadInMark
	}
	leadIn, leadInCycles := MakeBurst(ctx, leadMark, necLeadInSpace)
	b.words = append(b.words, leadIn...)
	b.cycles += leadInCycles

	for _, field := range [3]byte{cb.ByteD, cb.ByteS, cb.ByteF} {
		w, c := PDMBurstsLSB(ctx, 8, uint32(field), necTiming)
		b.words = append(b.words, w...)
		b.cycles += c
	}
	complement := byte(^cb.ByteF)
	w, c := PDMBurstsLSB(ctx, 8, uint32(complement), necTiming)
	b.words = append(b.words, w...)
	b.cycles += c

	b.words = append(b.words, roundToUint16(ctx.CyclesForUnits(1)))
	b.cycles += ctx.CyclesForUnits(1)

	padCycles := ctx.CyclesForFrameMs(necFrameMs) - b.cycles
	if padCycles < 0 {
		padCycles = 0
	}
	b.words = append(b.words, roundToUint16(padCycles))
	b.cycles += padCycles

	return b.words, b.cycles
}

// encodePioneer builds a PIONEER frame body: every burst, including the
// lead-out pad, in the 38kHz clock context at k=21, identical framing to
// NEC2 otherwise. The 40kHz prescaler appears only in the header.
func encodePioneer(cb CmdBytesNEC) ([]uint16, float64) {
	dataCtx := SetClockRate(pioneerDataFreq, necK)

	b := &burstBuilder{}

	leadIn, leadInCycles := MakeBurst(dataCtx, necLeadInMark, necLeadInSpace)
	b.words = append(b.words, leadIn...)
	b.cycles += leadInCycles

	for _, field := range [3]byte{cb.ByteD, cb.ByteS, cb.ByteF} {
		w, c := PDMBurstsLSB(dataCtx, 8, uint32(field), necTiming)
		b.words = append(b.words, w...)
		b.cycles += c
	}
	complement := byte(^cb.ByteF)
	w, c := PDMBurstsLSB(dataCtx, 8, uint32(complement), necTiming)
	b.words = append(b.words, w...)
	b.cycles += c

	b.words = append(b.words, roundToUint16(dataCtx.CyclesForUnits(1)))
	b.cycles += dataCtx.CyclesForUnits(1)

	padCycles := dataCtx.CyclesForFrameMs(necFrameMs) - b.cycles
	if padCycles < 0 {
		padCycles = 0
	}
	b.words = append(b.words, roundToUint16(padCycles))
	b.cycles += padCycles

	return b.words, b.cycles
}

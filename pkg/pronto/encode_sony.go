// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

var sonyTiming = PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 2, HighSpace: 1}

const (
	sonyFreq    = 40000
	sonyK       = 24
	sonyFrameMs = 45

	sonyLeadInMark  = 4
	sonyLeadInSpace = 1
)

// sonyDeviceBits returns the device field width for one Sony variant.
func sonyDeviceBits(p Protocol) int {
	if p == ProtocolSony12 {
		return 5
	}
	return 8
}

// encodeSony builds a Sony SIRC frame: lead-in, then F (7 bits), D (5 or
// 8 bits), and — for SONY20 with an extension present — E (8 bits), all
// LSB-first. Sony's own repeat cadence means the trailing space of the
// last burst is absorbed into the frame-length pad rather than emitted
// as a separate word.
func encodeSony(p Protocol, cb CmdBytesSony) ([]uint16, float64) {
	ctx := SetClockRate(sonyFreq, sonyK)
	b := &burstBuilder{}

	leadIn, leadInCycles := MakeBurst(ctx, sonyLeadInMark, sonyLeadInSpace)
	b.words = append(b.words, leadIn...)
	b.cycles += leadInCycles

	w, c := PDMBurstsLSB(ctx, 7, uint32(cb.ByteF), sonyTiming)
	b.words = append(b.words, w...)
	b.cycles += c

	dBits := sonyDeviceBits(p)
	w, c = PDMBurstsLSB(ctx, dBits, uint32(cb.ByteD), sonyTiming)
	b.words = append(b.words, w...)
	b.cycles += c

	if p == ProtocolSony20 && cb.HasExtension {
		w, c = PDMBurstsLSB(ctx, 8, uint32(cb.ByteE), sonyTiming)
		b.words = append(b.words, w...)
		b.cycles += c
	}

	// Drop the final burst's trailing space: the frame-length pad below
	// stands in for it.
	if len(b.words) > 0 {
		last := b.words[len(b.words)-1]
		b.cycles -= float64(last)
		b.words = b.words[:len(b.words)-1]
	}

	pad := ctx.CyclesForFrameMs(sonyFrameMs) - b.cycles
	if pad < 0 {
		pad = 0
	}
	b.words = append(b.words, roundToUint16(pad))
	b.cycles += pad

	return b.words, b.cycles
}

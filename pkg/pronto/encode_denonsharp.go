// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

var denonSharpTiming = PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

const (
	denonSharpFreq = 38000
	denonSharpK    = 10

	denonSharpGapSpace = 165 // separator between the two frames, in basic time units
)

// encodeDenonSharp builds the two-frame DENON/SHARP body: a data frame
// carrying D (5 bits), F (8 bits), and a 2-bit extension selector, a
// fixed (1,-165) separator burst, then an all-complemented repeat of the
// same frame. Real Denon/Sharp receivers require both frames to accept a
// code; callers must not split only one of them out when an assembler
// splices repeats (see assembler.go).
func encodeDenonSharp(cb CmdBytesDenonSharp) ([]uint16, float64) {
	ctx := SetClockRate(denonSharpFreq, denonSharpK)
	b := &burstBuilder{}

	appendFrame := func(d, f, ext byte) {
		w, c := PDMBurstsLSB(ctx, 5, uint32(d), denonSharpTiming)
		b.words = append(b.words, w...)
		b.cycles += c
		w, c = PDMBurstsLSB(ctx, 8, uint32(f), denonSharpTiming)
		b.words = append(b.words, w...)
		b.cycles += c
		w, c = PDMBurstsLSB(ctx, 2, uint32(ext), denonSharpTiming)
		b.words = append(b.words, w...)
		b.cycles += c
	}

	appendFrame(cb.ByteD, cb.ByteF, cb.Ext)

	gap, gapCycles := MakeBurst(ctx, 1, denonSharpGapSpace)
	b.words = append(b.words, gap...)
	b.cycles += gapCycles

	appendFrame(^cb.ByteD&0x1F, ^cb.ByteF, ^cb.Ext&0x3)

	return b.words, b.cycles
}

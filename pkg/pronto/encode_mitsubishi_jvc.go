// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

var mitsubishiTiming = PDMTiming{LowMark: 1, LowSpace: 3, HighMark: 1, HighSpace: 7}
var jvcTiming = PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

const (
	mitsubishiFreq         = 32600
	mitsubishiK            = 10
	mitsubishiTrailerSpace = 80

	jvcFreq         = 38000
	jvcK            = 20
	jvcLeadInMark   = 16
	jvcLeadInSpace  = 8
	jvcTrailerSpace = 45
)

// encodeMitsubishi builds a MITSUBISHI frame: no lead-in, two LSB-first
// data bytes, and a literal trailer burst.
func encodeMitsubishi(cb CmdBytesMitsubishiJVC) ([]uint16, float64) {
	ctx := SetClockRate(mitsubishiFreq, mitsubishiK)
	b := &burstBuilder{}

	for _, field := range [2]byte{cb.ByteD, cb.ByteF} {
		w, c := PDMBurstsLSB(ctx, 8, uint32(field), mitsubishiTiming)
		b.words = append(b.words, w...)
		b.cycles += c
	}

	trailer, trailerCycles := MakeBurst(ctx, 1, mitsubishiTrailerSpace)
	b.words = append(b.words, trailer...)
	b.cycles += trailerCycles

	return b.words, b.cycles
}

// encodeJVC builds a JVC frame. JVC's lead-in is only present on the
// first frame of a repeated transmission — see assembler.go, which
// strips it from the spliced repeat copies — so encodeJVC always emits
// it and the assembler is responsible for the exception.
func encodeJVC(cb CmdBytesMitsubishiJVC) ([]uint16, float64) {
	ctx := SetClockRate(jvcFreq, jvcK)
	b := &burstBuilder{}

	leadIn, leadInCycles := MakeBurst(ctx, jvcLeadInMark, jvcLeadInSpace)
	b.words = append(b.words, leadIn...)
	b.cycles += leadInCycles

	for _, field := range [2]byte{cb.ByteD, cb.ByteF} {
		w, c := PDMBurstsLSB(ctx, 8, uint32(field), jvcTiming)
		b.words = append(b.words, w...)
		b.cycles += c
	}

	trailer, trailerCycles := MakeBurst(ctx, 1, jvcTrailerSpace)
	b.words = append(b.words, trailer...)
	b.cycles += trailerCycles

	return b.words, b.cycles
}

// jvcLeadInWords is how many leading burst words encodeJVC's lead-in
// occupies; the assembler strips exactly this many words from each
// spliced repeat frame after the first.
const jvcLeadInWords = 2

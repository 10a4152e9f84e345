// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

var kaseikyoTiming = PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

const (
	kaseikyoLeadInMark  = 8
	kaseikyoLeadInSpace = 4

	kaseikyoFreq = 36700
	kaseikyoK    = 16

	kaseikyoTrailerSpace        = 173
	kaseikyoFujitsuTrailerSpace = 110
)

// kaseikyoClock returns the (frequency, basic-time-unit divisor) pair for
// a Kaseikyo-family protocol. SHARPDVD is a documented stub that runs at
// 38kHz with k=15; every other member of the family shares the 36.7kHz/
// k=16 table.
func kaseikyoClock(p Protocol) (float64, int) {
	if p == ProtocolSharpDVD {
		return 38000, 15
	}
	return kaseikyoFreq, kaseikyoK
}

// encodeKaseikyo builds a Kaseikyo-family frame body: lead-in, LSB-first
// data bytes (OEM-M, OEM-N, then three data bytes — already packed
// per-protocol by Validate), an XOR checksum byte for every member except
// FUJITSU, and a literal trailer burst (no dynamic frame-length pad: the
// family's framing ends with a fixed trailer space, not a computed
// remainder). FUJITSU omits the checksum byte and uses a shorter trailer
// space, per its own stub status.
func encodeKaseikyo(p Protocol, cb CmdBytesKaseikyo) ([]uint16, float64) {
	freq, k := kaseikyoClock(p)
	ctx := SetClockRate(freq, k)
	b := &burstBuilder{}

	leadIn, leadInCycles := MakeBurst(ctx, kaseikyoLeadInMark, kaseikyoLeadInSpace)
	b.words = append(b.words, leadIn...)
	b.cycles += leadInCycles

	fields := []byte{cb.OemM, cb.OemN, cb.ByteD, cb.ByteS, cb.ByteF}
	trailerSpace := float64(kaseikyoTrailerSpace)
	if p == ProtocolFujitsu {
		trailerSpace = kaseikyoFujitsuTrailerSpace
	} else {
		fields = append(fields, xorFields(cb.ByteD, cb.ByteS, cb.ByteF))
	}

	for _, field := range fields {
		w, c := PDMBurstsLSB(ctx, 8, uint32(field), kaseikyoTiming)
		b.words = append(b.words, w...)
		b.cycles += c
	}

	trailer, trailerCycles := MakeBurst(ctx, 1, trailerSpace)
	b.words = append(b.words, trailer...)
	b.cycles += trailerCycles

	return b.words, b.cycles
}

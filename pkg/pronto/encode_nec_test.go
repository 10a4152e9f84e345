// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import "testing"

func TestEncodeNEC2LeadInWords(t *testing.T) {
	cb := CmdBytesNEC{ByteD: 0x20, ByteS: 0xFB, ByteF: 0x10}
	words, _ := encodeNEC(ProtocolNEC2, cb)

	if len(words) < 2 {
		t.Fatalf("expected at least a lead-in pair, got %d words", len(words))
	}
	if words[0] != 0x0150 || words[1] != 0x00A8 {
		t.Errorf("lead-in = %04X %04X, want 0150 00A8", words[0], words[1])
	}
}

func TestEncodeNECComplementsF(t *testing.T) {
	cb := CmdBytesNEC{ByteD: 0x20, ByteS: 0xFB, ByteF: 0x10}
	words, cycles := encodeNEC(ProtocolNEC2, cb)

	if len(words)%2 != 0 {
		t.Fatalf("odd word count %d", len(words))
	}
	if cycles <= 0 {
		t.Fatalf("expected positive cycle total, got %v", cycles)
	}

	// Rebuild the expected body independently of encodeNEC and compare.
	ctx := SetClockRate(necFreq, necK)
	b := &burstBuilder{}
	leadIn, leadInCycles := MakeBurst(ctx, necLeadInMark, necLeadInSpace)
	b.words = append(b.words, leadIn...)
	b.cycles += leadInCycles
	for _, field := range [3]byte{cb.ByteD, cb.ByteS, cb.ByteF} {
		w, c := PDMBurstsLSB(ctx, 8, uint32(field), necTiming)
		b.words = append(b.words, w...)
		b.cycles += c
	}
	w, c := PDMBurstsLSB(ctx, 8, uint32(byte(^cb.ByteF)), necTiming)
	b.words = append(b.words, w...)
	b.cycles += c
	b.words = append(b.words, roundToUint16(ctx.CyclesForUnits(1)))
	b.cycles += ctx.CyclesForUnits(1)
	pad := ctx.CyclesForFrameMs(necFrameMs) - b.cycles
	if pad < 0 {
		pad = 0
	}
	b.words = append(b.words, roundToUint16(pad))
	b.cycles += pad

	if len(words) != len(b.words) {
		t.Fatalf("word count = %d, want %d", len(words), len(b.words))
	}
	for i := range words {
		if words[i] != b.words[i] {
			t.Errorf("word[%d] = %04X, want %04X", i, words[i], b.words[i])
		}
	}
}

func TestEncodeNECxShorterLeadIn(t *testing.T) {
	cb := CmdBytesNEC{ByteD: 0x01, ByteS: 0x02, ByteF: 0x03}
	words, _ := encodeNEC(ProtocolNECx, cb)

	wantMark := roundToUint16(float64(necxLeadInMark) * necK)
	wantSpace := roundToUint16(float64(necLeadInSpace) * necK)
	if words[0] != wantMark || words[1] != wantSpace {
		t.Errorf("NECx lead-in = %04X %04X, want %04X %04X", words[0], words[1], wantMark, wantSpace)
	}
}

func TestEncodePioneerSplitClock(t *testing.T) {
	cb := CmdBytesNEC{ByteD: 0x10, ByteS: 0x20, ByteF: 0x30}
	words, cycles := encodePioneer(cb)

	leadCtx := SetClockRate(pioneerLeadFreq, necK)
	wantLeadMark := roundToUint16(leadCtx.CyclesForUnits(necLeadInMark))
	wantLeadSpace := roundToUint16(leadCtx.CyclesForUnits(necLeadInSpace))
	if words[0] != wantLeadMark || words[1] != wantLeadSpace {
		t.Errorf("pioneer lead-in = %04X %04X, want %04X %04X", words[0], words[1], wantLeadMark, wantLeadSpace)
	}
	if len(words)%2 != 0 {
		t.Fatalf("odd word count %d", len(words))
	}
	if cycles <= 0 {
		t.Fatalf("expected positive cycles, got %v", cycles)
	}
}

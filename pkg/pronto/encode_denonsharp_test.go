// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import "testing"

func TestEncodeDenonSharpTwoFramesComplemented(t *testing.T) {
	cb := CmdBytesDenonSharp{ByteD: 0x05, ByteF: 0x2A, Ext: 0x01}
	words, cycles := encodeDenonSharp(cb)

	if len(words)%2 != 0 {
		t.Fatalf("odd word count %d", len(words))
	}
	if cycles <= 0 {
		t.Fatal("expected positive cycle total")
	}

	// frame1 (5+8+2=15 bits = 15 pairs) + separator (1 pair) + frame2 (15 pairs)
	wantWords := 15*2 + 2 + 15*2
	if len(words) != wantWords {
		t.Errorf("word count = %d, want %d", len(words), wantWords)
	}

	ctx := SetClockRate(denonSharpFreq, denonSharpK)
	sepMark := words[15*2]
	sepSpace := words[15*2+1]
	wantSepMark := roundToUint16(ctx.CyclesForUnits(1))
	wantSepSpace := roundToUint16(ctx.CyclesForUnits(denonSharpGapSpace))
	if sepMark != wantSepMark || sepSpace != wantSepSpace {
		t.Errorf("separator = %04X %04X, want %04X %04X", sepMark, sepSpace, wantSepMark, wantSepSpace)
	}
}

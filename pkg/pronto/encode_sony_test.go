// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import "testing"

func TestEncodeSony12Scenario(t *testing.T) {
	// device=1, fnc=46, repeats=2 (the literal SONY12 scenario).
	cb := CmdBytesSony{ByteD: 1, ByteF: 46}
	words, cycles := encodeSony(ProtocolSony12, cb)

	if len(words)%2 != 0 {
		t.Fatalf("odd word count %d", len(words))
	}

	ctx := SetClockRate(sonyFreq, sonyK)
	wantLeadMark := roundToUint16(ctx.CyclesForUnits(sonyLeadInMark))
	wantLeadSpace := roundToUint16(ctx.CyclesForUnits(sonyLeadInSpace))
	if words[0] != wantLeadMark || words[1] != wantLeadSpace {
		t.Errorf("lead-in = %04X %04X, want %04X %04X", words[0], words[1], wantLeadMark, wantLeadSpace)
	}
	if cycles <= 0 {
		t.Fatal("expected positive cycle total")
	}
}

func TestEncodeSony20Extension(t *testing.T) {
	withExt := CmdBytesSony{ByteD: 1, ByteF: 2, ByteE: 3, HasExtension: true}
	withoutExt := CmdBytesSony{ByteD: 1, ByteF: 2}

	wordsExt, _ := encodeSony(ProtocolSony20, withExt)
	wordsNoExt, _ := encodeSony(ProtocolSony20, withoutExt)

	if len(wordsExt) <= len(wordsNoExt) {
		t.Errorf("extension frame (%d words) should be longer than non-extension frame (%d words)", len(wordsExt), len(wordsNoExt))
	}
}

func TestEncodeSonyDeviceBitWidth(t *testing.T) {
	if got := sonyDeviceBits(ProtocolSony12); got != 5 {
		t.Errorf("SONY12 device bits = %d, want 5", got)
	}
	if got := sonyDeviceBits(ProtocolSony15); got != 8 {
		t.Errorf("SONY15 device bits = %d, want 8", got)
	}
	if got := sonyDeviceBits(ProtocolSony20); got != 8 {
		t.Errorf("SONY20 device bits = %d, want 8", got)
	}
}

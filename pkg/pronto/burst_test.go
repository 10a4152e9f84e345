// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import (
	"strings"
	"testing"
)

func TestPDMBurstsLSBOrder(t *testing.T) {
	ctx := SetClockRate(38000, 1)
	timing := PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

	words, _ := PDMBurstsLSB(ctx, 4, 0b0001, timing)
	// bit 0 (LSB) is 1 -> first pair should be the "high" timing (1,-3).
	if len(words) != 8 {
		t.Fatalf("expected 8 words for 4 bits, got %d", len(words))
	}
	if words[0] != 1 || words[1] != 3 {
		t.Errorf("first pair = (%d,%d), want (1,3) for LSB=1", words[0], words[1])
	}
	// Remaining bits are 0 -> "low" timing (1,-1).
	if words[2] != 1 || words[3] != 1 {
		t.Errorf("second pair = (%d,%d), want (1,1)", words[2], words[3])
	}
}

func TestPDMBurstsMSBOrder(t *testing.T) {
	ctx := SetClockRate(38000, 1)
	timing := PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

	words, _ := PDMBurstsMSB(ctx, 4, 0b1000, timing)
	if words[0] != 1 || words[1] != 3 {
		t.Errorf("first pair = (%d,%d), want (1,3) for MSB=1", words[0], words[1])
	}
}

func TestBiPhasePolarity(t *testing.T) {
	var sb strings.Builder
	BiPhase(&sb, 0b101, 3, true)
	if sb.String() != "011001" {
		t.Errorf("BiPhase(0b101,3,true) = %q, want %q", sb.String(), "011001")
	}
}

func TestManchesterToProntoCollapsesEqualHalfBits(t *testing.T) {
	ctx := SetClockRate(36000, 1)
	// "0011" collapses the equal pair at [0:2] and at [2:4] into two
	// double-width words (mark, space); ending on a space, the final
	// single-width mark padding is appended.
	words, _ := ManchesterToPronto(ctx, "0011", false)
	if len(words) != 3 {
		t.Fatalf("expected 3 words (2 collapsed + 1 pad), got %d: %v", len(words), words)
	}
	if words[0] != 2 || words[1] != 2 || words[2] != 1 {
		t.Errorf("words = %v, want [2 2 1]", words)
	}
}

func TestManchesterToProntoNoPadWhenEndingOnMark(t *testing.T) {
	ctx := SetClockRate(36000, 1)
	// "010" has a final unequal half-bit pair that emits a lone
	// single-width mark, giving an odd word count (1,1,1): already ends
	// on a mark, so no extra padding word is added.
	words, _ := ManchesterToPronto(ctx, "010", false)
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d: %v", len(words), words)
	}
}

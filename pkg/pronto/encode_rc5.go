// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import "strings"

const (
	rc5Freq    = 36000
	rc5K       = 32
	rc5FrameMs = 113.778
)

// encodeRC5 builds an RC5 frame: a three-bit (six half-bit) Manchester
// seed (two start bits, then the toggle bit threaded in by the caller —
// the codec always passes toggle=false, see the RC5/RC6 toggle open
// question), device (5 bits) and function (6 bits), all MSB-first, then
// collapsed into Pronto burst words and padded to the standard RC5 frame
// length.
func encodeRC5(cb CmdBytesRC5, toggle bool) ([]uint16, float64) {
	ctx := SetClockRate(rc5Freq, rc5K)

	var man strings.Builder
	BiPhase(&man, 1, 1, true) // first start bit, always logic 1
	BiPhase(&man, 1, 1, true) // second start bit, always logic 1
	if toggle {
		BiPhase(&man, 1, 1, true)
	} else {
		BiPhase(&man, 0, 1, true)
	}
	BiPhase(&man, uint32(cb.D), 5, true)
	BiPhase(&man, uint32(cb.F), 6, true)

	words, cycles := ManchesterToPronto(ctx, man.String(), false)

	pad := ctx.CyclesForFrameMs(rc5FrameMs) - cycles
	if pad < 0 {
		pad = 0
	}
	words = append(words, roundToUint16(pad))
	cycles += pad

	return words, cycles
}

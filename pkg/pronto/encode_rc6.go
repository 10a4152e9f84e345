// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import "strings"

const (
	rc6Freq    = 36000
	rc6K       = 16
	rc6FrameMs = 106.667

	rc6LeaderMark  = 6
	rc6LeaderSpace = 2

	rc6ModeLegacy   = 0b000
	rc6ModeExtended = 0b110

	rc6_6_32_OEM1 = 0x80
)

// encodeRC6 builds an RC6-family frame: a dedicated (6,-2) leader burst,
// then a Manchester stream of start bit ("1") + 3 mode bits + a
// double-width header toggle half-bit (always 0 — see the RC5/RC6
// toggle open question) + the variant's data fields, collapsed through
// ManchesterToPronto's weird-RC6 width table, and padded to the standard
// RC6 frame length.
//
// The long-lived MCE toggle (RC6-6-32 only) is carried in bit 7 of the
// device byte, not the header toggle half-bit: the Codec.mceToggle state
// the caller threads through `toggle` alternates which polarity that bit
// transmits at from one encode to the next.
func encodeRC6(p Protocol, cb CmdBytesRC6, toggle bool) ([]uint16, float64) {
	ctx := SetClockRate(rc6Freq, rc6K)
	b := &burstBuilder{}

	leader, leaderCycles := MakeBurst(ctx, rc6LeaderMark, rc6LeaderSpace)
	b.words = append(b.words, leader...)
	b.cycles += leaderCycles

	var man strings.Builder
	BiPhase(&man, 1, 1, false) // start bit, always logic 1

	mode := rc6ModeLegacy
	if p != ProtocolRC6_0_16 {
		mode = rc6ModeExtended
	}
	BiPhase(&man, uint32(mode), 3, false)

	BiPhase(&man, 0, 1, false) // header toggle half-bit: source always emits 0

	switch p {
	case ProtocolRC6_0_16:
		BiPhase(&man, uint32(cb.D), 8, false)
		BiPhase(&man, uint32(cb.F), 8, false)
	case ProtocolRC6_6_20:
		BiPhase(&man, uint32(cb.D), 8, false)
		BiPhase(&man, uint32(cb.S), 4, false)
		BiPhase(&man, uint32(cb.F), 8, false)
	case ProtocolRC6_6_32:
		d := cb.D
		if toggle {
			d |= 0x80
		}
		BiPhase(&man, rc6_6_32_OEM1, 8, false)
		BiPhase(&man, uint32(cb.S), 8, false)
		BiPhase(&man, uint32(d), 8, false)
		BiPhase(&man, uint32(cb.F), 8, false)
	}

	words, cycles := ManchesterToPronto(ctx, man.String(), true)
	b.words = append(b.words, words...)
	b.cycles += cycles

	pad := ctx.CyclesForFrameMs(rc6FrameMs) - b.cycles
	if pad < 0 {
		pad = 0
	}
	b.words = append(b.words, roundToUint16(pad))
	b.cycles += pad

	return b.words, b.cycles
}

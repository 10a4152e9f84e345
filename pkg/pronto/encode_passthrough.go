// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

// encodeGC100 formats a GC100-style burst list as Pronto words. The
// first three decimal values (carrier Hz, repeat count, offset) select
// the clock and are not part of the burst body; the remainder are
// already expressed in GC100 clock ticks (k=1), so they are formatted
// directly without further conversion.
func encodeGC100(cb CmdBytesGC100) (ClockContext, []uint16) {
	freq := float64(cb.Bytes[0])
	ctx := SetClockRate(freq, 1)

	body := cb.Bytes[3:]
	words := make([]uint16, len(body))
	for i, v := range body {
		if v < 0 {
			v = -v
		}
		words[i] = roundToUint16(float64(v))
	}
	return ctx, words
}

// encodeRaw converts a list of signed-microsecond burst lengths (sign
// carries no meaning here; GC100/IRremote raw captures often keep it to
// indicate mark vs space, which the caller's CmdBytesRaw.Bytes ordering
// already encodes by position) into Pronto cycles at the supplied
// carrier.
func encodeRaw(cb CmdBytesRaw) (ClockContext, []uint16) {
	ctx := SetClockRate(cb.Freq, 1)
	words := make([]uint16, len(cb.Bytes))
	for i, us := range cb.Bytes {
		if us < 0 {
			us = -us
		}
		cycles := float64(us) * 1e-6 * ctx.IRClk
		words[i] = roundToUint16(cycles)
	}
	return ctx, words
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import (
	"fmt"
	"strings"
)

// assemblePronto wraps a once/repeat burst pair into the Pronto CCF
// format: "0000 <prescaler> 0000 <pairCount> <body...>", where the body
// is the once section followed by `repeats` spliced copies of the repeat
// section. The header declares no once-only sequence: pairCount counts
// every burst pair of the whole body. stripLeadIn removes that many leading words from
// every spliced repeat copy — JVC's lead-in is present only on the first
// transmission of a frame — and is 0 for every other protocol.
func assemblePronto(ctx ClockContext, onceWords, repeatWords []uint16, repeats, stripLeadIn int) (string, error) {
	var consistencyErr error
	switch {
	case len(onceWords)%2 != 0:
		consistencyErr = &ConsistencyError{Message: fmt.Sprintf("once section has odd word count %d", len(onceWords))}
	case len(repeatWords)%2 != 0:
		consistencyErr = &ConsistencyError{Message: fmt.Sprintf("repeat section has odd word count %d", len(repeatWords))}
	}

	repeatBody := repeatWords
	if stripLeadIn > 0 && len(repeatWords) >= stripLeadIn {
		repeatBody = repeatWords[stripLeadIn:]
	}
	if consistencyErr == nil && len(repeatBody)%2 != 0 {
		consistencyErr = &ConsistencyError{Message: "repeat section has odd word count after lead-in strip"}
	}

	body := make([]uint16, 0, len(onceWords)+repeats*len(repeatBody))
	body = append(body, onceWords...)
	for i := 0; i < repeats; i++ {
		body = append(body, repeatBody...)
	}

	pairCount := len(body) / 2

	var sb strings.Builder
	sb.WriteString("0000")
	writeHexWord(&sb, ctx.Prescaler)
	writeHexWord(&sb, 0)
	writeHexWord(&sb, uint16(pairCount))
	for _, w := range body {
		writeHexWord(&sb, w)
	}
	// Even on a ConsistencyError, the malformed string is returned
	// alongside it so the caller can log or inspect what was built.
	return sb.String(), consistencyErr
}

func writeHexWord(sb *strings.Builder, w uint16) {
	sb.WriteString(fmt.Sprintf(" %04X", w))
}

// assemblePassthrough formats a single burst list with no repeat
// splicing, for GC100/Raw passthrough where Repeats is not meaningful —
// the caller already supplied exactly the words to transmit. As in
// assemblePronto, word 2 is 0000 and word 3 counts the body's pairs.
func assemblePassthrough(ctx ClockContext, words []uint16) (string, error) {
	var consistencyErr error
	if len(words)%2 != 0 {
		consistencyErr = &ConsistencyError{Message: fmt.Sprintf("passthrough body has odd word count %d", len(words))}
	}

	var sb strings.Builder
	sb.WriteString("0000")
	writeHexWord(&sb, ctx.Prescaler)
	writeHexWord(&sb, 0)
	writeHexWord(&sb, uint16(len(words)/2))
	for _, w := range words {
		writeHexWord(&sb, w)
	}
	return sb.String(), consistencyErr
}

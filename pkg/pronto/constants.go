// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package pronto encodes logical IR remote button presses into the Pronto
// CCF hexadecimal waveform representation: a space-separated sequence of
// 4-hex-digit words describing a prescaler and a list of mark/space burst
// lengths, measured in cycles of a fixed 4.145152 MHz model IR clock.
//
// See the Pronto codec specification at origin/documentation/source/specifications/pronto/
package pronto

// MasterOscillatorHz is the historical Pronto reference clock. Every
// prescaler and every burst length in the protocol encoders is derived
// from this single constant.
const MasterOscillatorHz = 4_145_152

// Protocol identifies one of the IR protocol families this codec
// understands. Validate canonicalizes the JSON "Protocol" string to one
// of these tags; encoders never re-parse the string form.
type Protocol int

const (
	ProtocolUnknown Protocol = iota
	ProtocolNEC
	ProtocolNEC2
	ProtocolNECx
	ProtocolLG
	ProtocolSamsung // NECx2 framing
	ProtocolSharp   // NEC-variant framing (distinct from the DENON/SHARP two-frame protocol)
	ProtocolDenonNEC
	ProtocolPioneer
	ProtocolPanasonic // Kaseikyo, OEM 2/32
	ProtocolDenonK    // Kaseikyo, repacked D:4 S:4 F:12
	ProtocolJVC48     // Kaseikyo framing, 48-bit JVC variant
	ProtocolFujitsu   // Kaseikyo family, stub per spec Non-goals
	ProtocolSharpDVD  // Kaseikyo family, stub, 38kHz/k=15
	ProtocolTeacK     // Kaseikyo family, stub
	ProtocolDenon     // two-frame Denon/Sharp protocol
	ProtocolSharpTwoFrame
	ProtocolMitsubishi
	ProtocolMitsubishiK // stub per spec Non-goals
	ProtocolJVC
	ProtocolRC5
	ProtocolRC6_0_16
	ProtocolRC6_6_20 // "Sky"
	ProtocolRC6_6_32 // MCE
	ProtocolRCA
	ProtocolSony12
	ProtocolSony15
	ProtocolSony20
	ProtocolGC100
	ProtocolRaw
	ProtocolPronto
)

// kaseikyoFamily is every protocol sharing the 48-bit Kaseikyo framing,
// distinguished only by OEM bytes and checksum/trailer details.
var kaseikyoFamily = map[Protocol]bool{
	ProtocolPanasonic: true,
	ProtocolDenonK:    true,
	ProtocolJVC48:     true,
	ProtocolFujitsu:   true,
	ProtocolSharpDVD:  true,
	ProtocolTeacK:     true,
}

// rc6Family is every protocol sharing RC6 bi-phase framing, distinguished
// by field widths and OEM byte usage.
var rc6Family = map[Protocol]bool{
	ProtocolRC6_0_16: true,
	ProtocolRC6_6_20: true,
	ProtocolRC6_6_32: true,
}

// stubProtocols are declared in the Kaseikyo table but the reference
// implementation flags them as "will not function without further coding":
// the data layout is a best-effort guess that may not decode on real
// hardware. They still validate ranges and produce a Pronto string.
var stubProtocols = map[Protocol]bool{
	ProtocolFujitsu:     true,
	ProtocolMitsubishiK: true,
	ProtocolSharpDVD:    true,
	ProtocolTeacK:       true,
}

// protocolNames canonicalizes the JSON "Protocol" string (case-insensitive)
// to an internal tag, classifying once at validation time rather than
// re-dispatching by string at every encode.
var protocolNames = map[string]Protocol{
	"NEC":          ProtocolNEC,
	"NEC2":         ProtocolNEC2,
	"NECX":         ProtocolNECx,
	"LG":           ProtocolLG,
	"SAMSUNG":      ProtocolSamsung,
	"SHARP":        ProtocolSharp,
	"DENON-NEC":    ProtocolDenonNEC,
	"PIONEER":      ProtocolPioneer,
	"PANASONIC":    ProtocolPanasonic,
	"KASEIKYO":     ProtocolPanasonic,
	"DENON-K":      ProtocolDenonK,
	"JVC48":        ProtocolJVC48,
	"FUJITSU":      ProtocolFujitsu,
	"SHARPDVD":     ProtocolSharpDVD,
	"TEAC-K":       ProtocolTeacK,
	"DENON":        ProtocolDenon,
	"SHARP-2FRM":   ProtocolSharpTwoFrame,
	"MITSUBISHI":   ProtocolMitsubishi,
	"MITSUBISHI-K": ProtocolMitsubishiK,
	"JVC":          ProtocolJVC,
	"RC5":          ProtocolRC5,
	"RC6-0-16":     ProtocolRC6_0_16,
	"RC6-6-20":     ProtocolRC6_6_20,
	"RC6-6-32":     ProtocolRC6_6_32,
	"MCE":          ProtocolRC6_6_32,
	"RCA":          ProtocolRCA,
	"SONY12":       ProtocolSony12,
	"SONY15":       ProtocolSony15,
	"SONY20":       ProtocolSony20,
	"GC100":        ProtocolGC100,
	"RAW":          ProtocolRaw,
	"PRONTO":       ProtocolPronto,
}

func (p Protocol) String() string {
	for name, tag := range protocolNames {
		if tag == p {
			return name
		}
	}
	return "UNKNOWN"
}

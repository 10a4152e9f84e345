// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

// Remote is a single virtual remote: a display model name, the
// transmitter that should carry its Pronto codes, the wire encoding it
// speaks, and its button table. Loaded once at startup, validated in
// place, mutated only to attach the derived CmdObc/CmdBytes fields on
// each Button; never destroyed for the lifetime of the process (aside
// from the single ephemeral slot SendIRPCode reuses).
type Remote struct {
	Model     string             `json:"Model"`
	IrEmitter IrEmitter          `json:"IRemitter"`
	Encoding  Encoding           `json:"Encoding"`
	Functions map[string]*Button `json:"Functions"`

	// protocol is the canonicalized tag derived from Encoding.Protocol
	// during validation. Encoders dispatch on this, never on the string.
	protocol Protocol
}

// IrEmitter identifies the transmitter a remote's codes should be handed
// to. It carries no protocol semantics of its own — it is opaque to the
// codec and meaningful only to the Transmitter registered under
// ServiceIdx.
type IrEmitter struct {
	Device     string `json:"Device"`
	ServiceIdx string `json:"ServiceIdx"`
}

// Encoding describes the IR protocol family and addressing for a remote.
type Encoding struct {
	Protocol  string `json:"Protocol"`
	Device    int    `json:"Device"`
	Subdevice int    `json:"Subdevice"`
	LSBFirst  *bool  `json:"LSBfirst,omitempty"`
	Repeats   int    `json:"Repeats,omitempty"`

	// kaseikyo is set by Validate when Protocol falls in the Kaseikyo
	// family; it exists so callers that already hold an *Encoding can
	// check family membership without re-consulting the protocol tables.
	kaseikyo bool
}

// lsbFirst returns the effective LSBfirst setting, defaulting to true
// when the field was omitted from the JSON document.
func (e *Encoding) lsbFirst() bool {
	if e.LSBFirst == nil {
		return true
	}
	return *e.LSBFirst
}

// Button is one function on a remote: its raw, protocol-dependent `Fnc`
// value as loaded from JSON, plus the two derived records Validate
// populates.
type Button struct {
	Fnc  interface{} `json:"Fnc"`
	Note string      `json:"Note,omitempty"`
	Freq float64     `json:"Freq,omitempty"`

	// CmdObc is the human-readable "original button code" triple, after
	// endianness adjustment, as printed on remotes and in IR databases.
	CmdObc CmdObc `json:"-" cbor:"-"`
	// CmdBytes is the protocol-specific, LSB-first encoder input derived
	// from CmdObc. Its concrete shape depends on the remote's protocol;
	// see the CmdBytes* types below. Excluded from both JSON and the CBOR
	// snapshot cache: it's re-derived by Validate every time a remote
	// table is loaded, since its concrete type can't round-trip through
	// an untyped interface{} field.
	CmdBytes interface{} `json:"-" cbor:"-"`
}

// CmdObc is the original button code: the human-readable (D, S, F)
// triple as printed on remotes and in IR code databases, after
// endianness adjustment but before protocol-specific byte packing.
type CmdObc struct {
	D int
	S int
	F int
}

// CmdBytesNEC is the encoder input for the NEC protocol family:
// NEC/NEC2/NECx/LG/SAMSUNG/SHARP/DENON-NEC/PIONEER.
type CmdBytesNEC struct {
	ByteD, ByteS, ByteF byte
}

// CmdBytesKaseikyo is the encoder input for the Kaseikyo family:
// PANASONIC/DENON-K/JVC48/FUJITSU/SHARPDVD/TEAC-K.
type CmdBytesKaseikyo struct {
	OemM, OemN          byte
	ByteD, ByteS, ByteF byte
}

// CmdBytesDenonSharp is the encoder input for the two-frame DENON/SHARP
// protocol.
type CmdBytesDenonSharp struct {
	ByteD, ByteF byte
	Ext          byte // 2-bit extension: 00 for DENON, 01 for SHARP (pre-LSB-flip)
}

// CmdBytesMitsubishiJVC is the encoder input shared by MITSUBISHI and
// JVC (distinct timing tables, identical D:8,F:8 field layout).
type CmdBytesMitsubishiJVC struct {
	ByteD, ByteF byte
}

// CmdBytesRC5 is the encoder input for RC5.
type CmdBytesRC5 struct {
	D, F int
}

// CmdBytesRC6 is the encoder input for the RC6 family
// (RC6-0-16/RC6-6-20/RC6-6-32).
type CmdBytesRC6 struct {
	D, S, F int
}

// CmdBytesRCA is the encoder input for RCA.
type CmdBytesRCA struct {
	D, F int
}

// CmdBytesSony is the encoder input for the Sony family
// (SONY12/SONY15/SONY20).
type CmdBytesSony struct {
	ByteD, ByteE, ByteF byte
	HasExtension        bool // true for every SONY20 (ByteE is 0 when the subdevice was absent); false for SONY12/SONY15
}

// CmdBytesPronto is the encoder input for PRONTO passthrough: the
// already-assembled Pronto string, returned verbatim.
type CmdBytesPronto struct {
	ProntoCode string
}

// CmdBytesGC100 is the encoder input for GC100 passthrough.
type CmdBytesGC100 struct {
	Bytes []int
}

// CmdBytesRaw is the encoder input for RAW passthrough: a list of
// signed-microsecond burst lengths and the carrier to convert them at.
type CmdBytesRaw struct {
	Bytes []int
	Freq  float64
}

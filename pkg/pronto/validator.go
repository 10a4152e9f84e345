// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import (
	"fmt"
	"strconv"
	"strings"
)

// kaseikyoOEM supplies the two OEM identification bytes placed at the
// head of every Kaseikyo-family frame. Only the PANASONIC pair (2, 32)
// is a well-known published value; the rest are this module's working
// placeholders until real vendor codes are sourced — see DESIGN.md.
var kaseikyoOEM = map[Protocol]struct{ M, N byte }{
	ProtocolPanasonic: {0x02, 0x20},
	ProtocolDenonK:    {0x2B, 0x0B},
	ProtocolJVC48:     {0x01, 0x49},
	ProtocolFujitsu:   {0x04, 0x3F},
	ProtocolSharpDVD:  {0x5A, 0x3C},
	ProtocolTeacK:     {0x43, 0x01},
}

// Validate range-checks and normalizes a remote definition in place:
// it canonicalizes the protocol tag, clamps Repeats, range-checks
// Device/Subdevice, and — for every button — range-checks Fnc, applies
// the LSBfirst convention, and populates CmdObc/CmdBytes. It returns on
// the first invalid button; the caller's loader (see loader.go) is
// responsible for deciding whether one bad remote should prevent the
// rest of the document from loading.
func Validate(remoteName string, r *Remote) error {
	if r.Functions == nil {
		r.Functions = map[string]*Button{}
	}

	protoStr := strings.ToUpper(strings.TrimSpace(r.Encoding.Protocol))
	tag, ok := protocolNames[protoStr]
	if !ok {
		return &ConfigError{Remote: remoteName, Field: "Encoding.Protocol", Message: fmt.Sprintf("unknown protocol %q", r.Encoding.Protocol)}
	}
	r.protocol = tag
	r.Encoding.kaseikyo = kaseikyoFamily[tag]

	if r.Encoding.Repeats < 0 || r.Encoding.Repeats > 5 {
		r.Encoding.Repeats = 0
	}

	switch tag {
	case ProtocolGC100:
		return validateGC100Buttons(remoteName, r)
	case ProtocolRaw:
		return validateRawButtons(remoteName, r)
	case ProtocolPronto:
		return validateProntoButtons(remoteName, r)
	}

	if r.Encoding.Device < 0 || r.Encoding.Device > 255 {
		return &ConfigError{Remote: remoteName, Field: "Encoding.Device", Message: fmt.Sprintf("device %d out of range [0,255]", r.Encoding.Device)}
	}
	if r.Encoding.Subdevice < -1 || r.Encoding.Subdevice > 255 {
		return &ConfigError{Remote: remoteName, Field: "Encoding.Subdevice", Message: fmt.Sprintf("subdevice %d out of range [-1,255]", r.Encoding.Subdevice)}
	}

	switch {
	case kaseikyoFamily[tag]:
		return validateKaseikyoButtons(remoteName, r)
	case rc6Family[tag]:
		return validateRC6Buttons(remoteName, r)
	case tag == ProtocolDenon || tag == ProtocolSharpTwoFrame:
		return validateDenonSharpButtons(remoteName, r)
	case tag == ProtocolMitsubishi || tag == ProtocolMitsubishiK || tag == ProtocolJVC:
		return validateMitsubishiJVCButtons(remoteName, r)
	case tag == ProtocolRC5:
		return validateRC5Buttons(remoteName, r)
	case tag == ProtocolRCA:
		return validateRCAButtons(remoteName, r)
	case tag == ProtocolSony12 || tag == ProtocolSony15 || tag == ProtocolSony20:
		return validateSonyButtons(remoteName, r)
	default:
		return validateNECButtons(remoteName, r)
	}
}

// fncAsInt parses a Button.Fnc value as used by every IRP-style
// protocol: a JSON number (or the int64/uint64 a CBOR snapshot decodes
// it as), or a decimal/0x-hex string.
func fncAsInt(fnc interface{}) (int, error) {
	switch v := fnc.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case string:
		s := strings.TrimSpace(v)
		base := 10
		if len(s) > 1 && (strings.HasPrefix(strings.ToLower(s), "0x")) {
			s = s[2:]
			base = 16
		}
		n, err := strconv.ParseInt(s, base, 64)
		if err != nil {
			return 0, fmt.Errorf("fnc %q is not a valid integer: %w", v, err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("fnc must be a number or numeric string, got %T", fnc)
	}
}

func fncAsHexString(fnc interface{}) (string, error) {
	s, ok := fnc.(string)
	if !ok {
		return "", fmt.Errorf("fnc must be a string, got %T", fnc)
	}
	return strings.ToUpper(strings.TrimSpace(s)), nil
}

func fncAsIntArray(fnc interface{}) ([]int, error) {
	arr, ok := fnc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("fnc must be an array, got %T", fnc)
	}
	out := make([]int, len(arr))
	for i, v := range arr {
		switch n := v.(type) {
		case float64:
			out[i] = int(n)
		case int:
			out[i] = n
		case int64:
			out[i] = int(n)
		case uint64:
			out[i] = int(n)
		default:
			return nil, fmt.Errorf("fnc[%d] must be a number, got %T", i, v)
		}
	}
	return out, nil
}

// deviceSubdevice applies the LSBfirst convention to Device and returns
// it alongside the raw Subdevice (the -1 sentinel is never bit-reversed —
// each protocol family interprets it as "absent" in its own way).
func deviceSubdevice(enc *Encoding, dBits, sBits int) (d, s int) {
	lsb := enc.lsbFirst()
	d = enc.Device
	if !lsb {
		d = int(reverseBits(uint32(d), dBits))
	}
	s = enc.Subdevice
	if s != -1 && !lsb {
		s = int(reverseBits(uint32(s), sBits))
	}
	return d, s
}

func applyEndianF(enc *Encoding, f, fBits int) int {
	if enc.lsbFirst() {
		return f
	}
	return int(reverseBits(uint32(f), fBits))
}

// validateNECButtons handles NEC/NEC2/NECx/LG/SAMSUNG/SHARP/DENON-NEC/PIONEER.
// These protocols conventionally store OBC device/subdevice/function in
// MSB-first human notation while the wire format transmits LSB first, so
// the NEC-family CmdBytes carry an extra bit-reversal beyond the
// LSBfirst input convention (grounded in the literal NEC2 scenario in
// SPEC_FULL.md §8; see DESIGN.md for why other families don't repeat it).
func validateNECButtons(remoteName string, r *Remote) error {
	d, s := deviceSubdevice(&r.Encoding, 8, 8)

	for name, btn := range r.Functions {
		f, err := fncAsInt(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if f < 0 || f > 0xFF {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: fmt.Sprintf("function %d out of range [0,255]", f)}
		}
		f = applyEndianF(&r.Encoding, f, 8)

		btn.CmdObc = CmdObc{D: d, S: s, F: f}

		byteD := byte(reverseBits(uint32(d), 8))
		byteF := byte(reverseBits(uint32(f), 8))
		var byteS byte
		if s == -1 {
			byteS = byte(0xFF - d)
		} else {
			byteS = byte(reverseBits(uint32(s), 8))
		}

		btn.CmdBytes = CmdBytesNEC{ByteD: byteD, ByteS: byteS, ByteF: byteF}
	}
	return nil
}

// validateKaseikyoButtons handles PANASONIC/DENON-K/JVC48/FUJITSU/SHARPDVD/TEAC-K.
func validateKaseikyoButtons(remoteName string, r *Remote) error {
	maxF := 0xFF
	dBits, sBits, fBits := 8, 8, 8
	if r.protocol == ProtocolDenonK {
		dBits, sBits, fBits = 4, 4, 12
		maxF = 0xFFF
	}

	d, s := deviceSubdevice(&r.Encoding, dBits, sBits)
	if s == -1 {
		s = 0
	}
	oem := kaseikyoOEM[r.protocol]

	for name, btn := range r.Functions {
		f, err := fncAsInt(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if f < 0 || f > maxF {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: fmt.Sprintf("function %#x out of range [0,%#x]", f, maxF)}
		}
		f = applyEndianF(&r.Encoding, f, fBits)

		btn.CmdObc = CmdObc{D: d, S: s, F: f}

		// DENON-K repacks D:4/S:4/F:12 into the same three data-byte
		// slots the rest of the Kaseikyo family uses for D, S, F
		// directly, so the encoder never special-cases it.
		var dataD, dataS, dataF byte
		if r.protocol == ProtocolDenonK {
			dataD = byte(s&0xF)<<4 | byte(d&0xF)
			dataS = byte(f & 0xFF)
			dataF = byte((f >> 8) & 0xFF)
		} else {
			dataD, dataS, dataF = byte(d), byte(s), byte(f)
		}

		btn.CmdBytes = CmdBytesKaseikyo{
			OemM:  oem.M,
			OemN:  oem.N,
			ByteD: dataD,
			ByteS: dataS,
			ByteF: dataF,
		}
	}
	return nil
}

// validateDenonSharpButtons handles the two-frame DENON/SHARP protocol.
func validateDenonSharpButtons(remoteName string, r *Remote) error {
	d, _ := deviceSubdevice(&r.Encoding, 5, 0)
	ext := byte(0x00)
	if r.protocol == ProtocolSharpTwoFrame {
		ext = 0x01
	}

	for name, btn := range r.Functions {
		f, err := fncAsInt(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if f < 0 || f > 0xFF {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: fmt.Sprintf("function %d out of range [0,255]", f)}
		}
		f = applyEndianF(&r.Encoding, f, 8)

		btn.CmdObc = CmdObc{D: d, F: f}
		btn.CmdBytes = CmdBytesDenonSharp{ByteD: byte(d), ByteF: byte(f), Ext: ext}
	}
	return nil
}

// validateMitsubishiJVCButtons handles MITSUBISHI/MITSUBISHI-K/JVC:
// distinct timing tables, identical D:8,F:8 field layout.
func validateMitsubishiJVCButtons(remoteName string, r *Remote) error {
	d, _ := deviceSubdevice(&r.Encoding, 8, 0)

	for name, btn := range r.Functions {
		f, err := fncAsInt(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if f < 0 || f > 0xFF {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: fmt.Sprintf("function %d out of range [0,255]", f)}
		}
		f = applyEndianF(&r.Encoding, f, 8)

		btn.CmdObc = CmdObc{D: d, F: f}
		btn.CmdBytes = CmdBytesMitsubishiJVC{ByteD: byte(d), ByteF: byte(f)}
	}
	return nil
}

// validateRC5Buttons handles RC5: D:5,F:6, MSB-first, no reversal beyond
// the LSBfirst convention (grounded in the literal RC5 scenario).
func validateRC5Buttons(remoteName string, r *Remote) error {
	d, _ := deviceSubdevice(&r.Encoding, 5, 0)

	for name, btn := range r.Functions {
		f, err := fncAsInt(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if f < 0 || f > 0x3F {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: fmt.Sprintf("function %#x out of range [0,0x3F]", f)}
		}
		f = applyEndianF(&r.Encoding, f, 6)

		btn.CmdObc = CmdObc{D: d, F: f}
		btn.CmdBytes = CmdBytesRC5{D: d, F: f}
	}
	return nil
}

// validateRC6Buttons handles RC6-0-16/RC6-6-20 (Sky)/RC6-6-32 (MCE).
func validateRC6Buttons(remoteName string, r *Remote) error {
	sBits := 0
	if r.protocol == ProtocolRC6_6_20 {
		sBits = 4
	} else if r.protocol == ProtocolRC6_6_32 {
		sBits = 8
	}
	d, s := deviceSubdevice(&r.Encoding, 8, sBits)
	if s == -1 {
		// RC6-6-20 "Sky" S field: the reference implementation hardcodes
		// a "rough guess" of 0x0C when no subdevice is supplied. See
		// DESIGN.md Open Question; 0 is used for RC6-0-16 where S is unused.
		if r.protocol == ProtocolRC6_6_20 {
			s = 0x0C
		} else {
			s = 0
		}
	}

	for name, btn := range r.Functions {
		f, err := fncAsInt(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if f < 0 || f > 0xFF {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: fmt.Sprintf("function %d out of range [0,255]", f)}
		}
		f = applyEndianF(&r.Encoding, f, 8)

		btn.CmdObc = CmdObc{D: d, S: s, F: f}
		btn.CmdBytes = CmdBytesRC6{D: d, S: s, F: f}
	}
	return nil
}

// validateRCAButtons handles RCA: D:4,F:8, MSB-first.
func validateRCAButtons(remoteName string, r *Remote) error {
	d, _ := deviceSubdevice(&r.Encoding, 4, 0)
	if d > 0xF {
		return &ConfigError{Remote: remoteName, Field: "Encoding.Device", Message: fmt.Sprintf("RCA device %#x out of range [0,0xF]", d)}
	}

	for name, btn := range r.Functions {
		f, err := fncAsInt(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if f < 0 || f > 0xFF {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: fmt.Sprintf("function %d out of range [0,255]", f)}
		}
		f = applyEndianF(&r.Encoding, f, 8)

		btn.CmdObc = CmdObc{D: d, F: f}
		btn.CmdBytes = CmdBytesRCA{D: d, F: f}
	}
	return nil
}

// validateSonyButtons handles SONY12/SONY15/SONY20: F:7 always, D:5/8/8,
// plus an E:8 extension for SONY20 (from Subdevice; 0 if Subdevice = -1).
func validateSonyButtons(remoteName string, r *Remote) error {
	dBits := 5
	if r.protocol != ProtocolSony12 {
		dBits = 8
	}
	d, s := deviceSubdevice(&r.Encoding, dBits, 8)

	for name, btn := range r.Functions {
		f, err := fncAsInt(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if f < 0 || f > 0x7F {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: fmt.Sprintf("function %#x out of range [0,0x7F]", f)}
		}
		f = applyEndianF(&r.Encoding, f, 7)

		btn.CmdObc = CmdObc{D: d, S: s, F: f}

		hasExt := r.protocol == ProtocolSony20 && s != -1
		e := 0
		if hasExt {
			e = s
		}
		btn.CmdBytes = CmdBytesSony{ByteD: byte(d), ByteE: byte(e), ByteF: byte(f), HasExtension: r.protocol == ProtocolSony20}
	}
	return nil
}

func validateGC100Buttons(remoteName string, r *Remote) error {
	for name, btn := range r.Functions {
		arr, err := fncAsIntArray(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if len(arr) < 5 {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: "GC100 fnc array must contain at least clock, repeat, offset, and one burst pair"}
		}
		btn.CmdBytes = CmdBytesGC100{Bytes: arr}
	}
	return nil
}

func validateRawButtons(remoteName string, r *Remote) error {
	for name, btn := range r.Functions {
		arr, err := fncAsIntArray(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if len(arr) == 0 {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: "RAW fnc array must contain at least one burst value"}
		}
		freq := btn.Freq
		if freq <= 0 {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Freq", Message: "RAW button requires a positive Freq"}
		}
		btn.CmdBytes = CmdBytesRaw{Bytes: arr, Freq: freq}
	}
	return nil
}

func validateProntoButtons(remoteName string, r *Remote) error {
	for name, btn := range r.Functions {
		code, err := fncAsHexString(btn.Fnc)
		if err != nil {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: err.Error()}
		}
		if code == "" {
			return &ConfigError{Remote: remoteName, Button: name, Field: "Fnc", Message: "PRONTO fnc must be a non-empty hex word string"}
		}
		btn.CmdBytes = CmdBytesPronto{ProntoCode: code}
	}
	return nil
}

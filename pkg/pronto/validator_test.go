// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import "testing"

func TestValidateNEC2ComplementSubdevice(t *testing.T) {
	r := &Remote{
		Encoding: Encoding{Protocol: "NEC2", Device: 4, Subdevice: -1},
		Functions: map[string]*Button{
			"power": {Fnc: float64(8)},
		},
	}
	if err := Validate("test", r); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	cb := r.Functions["power"].CmdBytes.(CmdBytesNEC)
	if cb.ByteD != 0x20 {
		t.Errorf("ByteD = %#x, want 0x20", cb.ByteD)
	}
	if cb.ByteS != 0xFB {
		t.Errorf("ByteS = %#x, want 0xFB", cb.ByteS)
	}
	if cb.ByteF != 0x10 {
		t.Errorf("ByteF = %#x, want 0x10", cb.ByteF)
	}
}

func TestValidateRC5Fields(t *testing.T) {
	r := &Remote{
		Encoding: Encoding{Protocol: "RC5", Device: 5, Subdevice: -1},
		Functions: map[string]*Button{
			"vol+": {Fnc: float64(35)},
		},
	}
	if err := Validate("test", r); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	cb := r.Functions["vol+"].CmdBytes.(CmdBytesRC5)
	if cb.D != 5 {
		t.Errorf("D = %d, want 5", cb.D)
	}
	if cb.F != 35 {
		t.Errorf("F = %d, want 35", cb.F)
	}
}

func TestValidateSony12Fields(t *testing.T) {
	r := &Remote{
		Encoding: Encoding{Protocol: "SONY12", Device: 1, Subdevice: -1, Repeats: 2},
		Functions: map[string]*Button{
			"power": {Fnc: float64(46)},
		},
	}
	if err := Validate("test", r); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	cb := r.Functions["power"].CmdBytes.(CmdBytesSony)
	if cb.ByteD != 1 {
		t.Errorf("ByteD = %d, want 1", cb.ByteD)
	}
	if cb.ByteF != 46 {
		t.Errorf("ByteF = %d, want 46", cb.ByteF)
	}
}

func TestValidateKaseikyoPanasonicChecksum(t *testing.T) {
	r := &Remote{
		Encoding: Encoding{Protocol: "PANASONIC", Device: 8, Subdevice: 0},
		Functions: map[string]*Button{
			"power": {Fnc: float64(0x3D)},
		},
	}
	if err := Validate("test", r); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	cb := r.Functions["power"].CmdBytes.(CmdBytesKaseikyo)
	if cb.ByteD != 8 || cb.ByteS != 0 || cb.ByteF != 0x3D {
		t.Fatalf("unexpected CmdBytes: %+v", cb)
	}
	if got := xorFields(cb.ByteD, cb.ByteS, cb.ByteF); got != 0x35 {
		t.Errorf("checksum = %#x, want 0x35", got)
	}
}

func TestValidateUnknownProtocol(t *testing.T) {
	r := &Remote{
		Encoding:  Encoding{Protocol: "NOT-A-PROTOCOL", Device: 1},
		Functions: map[string]*Button{},
	}
	err := Validate("test", r)
	if err == nil {
		t.Fatal("expected an error for an unknown protocol")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestValidateDeviceOutOfRange(t *testing.T) {
	r := &Remote{
		Encoding:  Encoding{Protocol: "NEC", Device: 999},
		Functions: map[string]*Button{},
	}
	if err := Validate("test", r); err == nil {
		t.Fatal("expected an error for an out-of-range device")
	}
}

func TestValidateRepeatsClampedWhenOutOfRange(t *testing.T) {
	r := &Remote{
		Encoding: Encoding{Protocol: "NEC", Device: 1, Subdevice: -1, Repeats: 99},
		Functions: map[string]*Button{
			"a": {Fnc: float64(1)},
		},
	}
	if err := Validate("test", r); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if r.Encoding.Repeats != 0 {
		t.Errorf("Repeats = %d, want 0 after clamping an out-of-range value", r.Encoding.Repeats)
	}
}

func TestEndiannessFlipIsInvolutive(t *testing.T) {
	lsbFalse := false
	a := &Remote{
		Encoding: Encoding{Protocol: "NEC", Device: 0x35, Subdevice: -1, LSBFirst: &lsbFalse},
		Functions: map[string]*Button{
			"a": {Fnc: float64(0x0F)},
		},
	}
	lsbTrue := true
	b := &Remote{
		Encoding: Encoding{Protocol: "NEC", Device: int(reverseBits(0x35, 8)), Subdevice: -1, LSBFirst: &lsbTrue},
		Functions: map[string]*Button{
			"a": {Fnc: float64(reverseBits(0x0F, 8))},
		},
	}
	if err := Validate("a", a); err != nil {
		t.Fatalf("Validate a: %v", err)
	}
	if err := Validate("b", b); err != nil {
		t.Fatalf("Validate b: %v", err)
	}
	cbA := a.Functions["a"].CmdBytes.(CmdBytesNEC)
	cbB := b.Functions["a"].CmdBytes.(CmdBytesNEC)
	if cbA != cbB {
		t.Errorf("lsb_first=false with X should match lsb_first=true with reverse(X): got %+v vs %+v", cbA, cbB)
	}
}

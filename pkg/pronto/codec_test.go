// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import (
	"context"
	"testing"
)

func newValidatedNECRemote(t *testing.T, serviceIdx string) *Remote {
	t.Helper()
	r := &Remote{
		Model:     "test-nec",
		IrEmitter: IrEmitter{ServiceIdx: serviceIdx, Device: "dev"},
		Encoding:  Encoding{Protocol: "NEC2", Device: 4, Subdevice: -1, Repeats: 0},
		Functions: map[string]*Button{"power": {Fnc: 8}},
	}
	if err := Validate("test-nec", r); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	return r
}

func TestCodecSendRemoteCodeHappyPath(t *testing.T) {
	c := NewCodec()
	r := newValidatedNECRemote(t, "svc")
	c.LoadRemotes(map[string]*Remote{"test-nec": r})

	var got string
	c.RegisterTransmitter("svc", transmitterFunc(func(_ context.Context, pronto, _ string) error {
		got = pronto
		return nil
	}))

	if err := c.SendRemoteCode(context.Background(), "test-nec", "power"); err != nil {
		t.Fatalf("SendRemoteCode failed: %v", err)
	}
	if got == "" {
		t.Fatal("transmitter never received a pronto string")
	}
	if got[:4] != "0000" {
		t.Errorf("pronto string = %q, want it to start with 0000", got)
	}
}

func TestCodecSendRemoteCodeUnknownRemote(t *testing.T) {
	c := NewCodec()
	err := c.SendRemoteCode(context.Background(), "nope", "power")
	if _, ok := err.(*LookupError); !ok {
		t.Fatalf("error = %T (%v), want *LookupError", err, err)
	}
}

func TestCodecSendRemoteCodeUnknownButton(t *testing.T) {
	c := NewCodec()
	r := newValidatedNECRemote(t, "svc")
	c.LoadRemotes(map[string]*Remote{"test-nec": r})

	err := c.SendRemoteCode(context.Background(), "test-nec", "volume-up")
	le, ok := err.(*LookupError)
	if !ok {
		t.Fatalf("error = %T (%v), want *LookupError", err, err)
	}
	if le.Button != "volume-up" {
		t.Errorf("LookupError.Button = %q, want volume-up", le.Button)
	}
}

func TestCodecSendRemoteCodeUnregisteredTransmitter(t *testing.T) {
	c := NewCodec()
	r := newValidatedNECRemote(t, "svc")
	c.LoadRemotes(map[string]*Remote{"test-nec": r})

	err := c.SendRemoteCode(context.Background(), "test-nec", "power")
	if _, ok := err.(*UnimplementedError); !ok {
		t.Fatalf("error = %T (%v), want *UnimplementedError", err, err)
	}
}

func TestCodecEncodeIRPCodeDryRun(t *testing.T) {
	c := NewCodec()
	pronto, err := c.EncodeIRPCode("NEC2", 4, -1, 8, 0)
	if err != nil {
		t.Fatalf("EncodeIRPCode failed: %v", err)
	}
	if pronto[:4] != "0000" {
		t.Errorf("pronto = %q, want it to start with 0000", pronto)
	}
}

func TestCodecEncodeIRPCodeUnknownProtocol(t *testing.T) {
	c := NewCodec()
	_, err := c.EncodeIRPCode("NOT-A-PROTOCOL", 1, 1, 1, 0)
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("error = %T (%v), want *ConfigError", err, err)
	}
}

func TestCodecRemoteNames(t *testing.T) {
	c := NewCodec()
	r := newValidatedNECRemote(t, "svc")
	c.LoadRemotes(map[string]*Remote{"test-nec": r})

	names := c.RemoteNames()
	if len(names) != 1 || names[0] != "test-nec" {
		t.Errorf("RemoteNames() = %v, want [test-nec]", names)
	}

	got, ok := c.Remote("test-nec")
	if !ok || got != r {
		t.Error("Remote() did not return the loaded remote")
	}
}

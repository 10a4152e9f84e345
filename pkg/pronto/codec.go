// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import (
	"context"
	"sync"
)

// Transmitter hands a Pronto CCF string to whatever hardware actually
// emits IR for one device. pkg/transmit supplies reference
// implementations; the host wires one to each IrEmitter.ServiceIdx a
// remote table names.
type Transmitter interface {
	Send(ctx context.Context, pronto string, deviceID string) error
}

// Codec is the dispatch facade: a validated remote table plus the
// registered transmitters that carry its codes, and the one piece of
// genuinely long-lived mutable state this module keeps — the MCE toggle
// bit, which must alternate across calls for the lifetime of the
// process, not just within one encode.
type Codec struct {
	mu           sync.RWMutex
	remotes      map[string]*Remote
	transmitters map[string]Transmitter
	mceToggle    bool
}

// NewCodec returns an empty Codec ready to have remotes loaded into it
// and transmitters registered against it.
func NewCodec() *Codec {
	return &Codec{
		remotes:      map[string]*Remote{},
		transmitters: map[string]Transmitter{},
	}
}

// LoadRemotes replaces the codec's remote table. The CLI's loadCodec
// calls it once at startup with the table LoadRemoteTable or
// LoadSnapshot returned, whose remotes have all been validated.
func (c *Codec) LoadRemotes(remotes map[string]*Remote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remotes = remotes
}

// RegisterTransmitter attaches a Transmitter under the ServiceIdx that
// remote definitions reference in their IrEmitter field.
func (c *Codec) RegisterTransmitter(serviceIdx string, t Transmitter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transmitters[serviceIdx] = t
}

// Remote looks up a loaded remote by name, for callers (the CLI's
// browse command, primarily) that want to list its buttons without
// sending anything.
func (c *Codec) Remote(name string) (*Remote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.remotes[name]
	return r, ok
}

// RemoteNames returns every loaded remote's name.
func (c *Codec) RemoteNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.remotes))
	for name := range c.remotes {
		names = append(names, name)
	}
	return names
}

// SendRemoteCode looks up a named remote and button, encodes the Pronto
// CCF string for it, and hands it to the transmitter registered under
// that remote's IrEmitter.ServiceIdx.
func (c *Codec) SendRemoteCode(ctx context.Context, remoteName, buttonName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.remotes[remoteName]
	if !ok {
		return &LookupError{Remote: remoteName}
	}
	btn, ok := r.Functions[buttonName]
	if !ok {
		return &LookupError{Remote: remoteName, Button: buttonName}
	}

	pronto, err := c.encodeButton(r, btn)
	if err != nil {
		return err
	}

	t, ok := c.transmitters[r.IrEmitter.ServiceIdx]
	if !ok {
		return &UnimplementedError{ServiceIdx: r.IrEmitter.ServiceIdx, What: "transmitter not registered"}
	}
	return t.Send(ctx, pronto, r.IrEmitter.Device)
}

// adhocRemoteName is the fixed reserved name an ad-hoc IRP-style code is
// installed under: a one-button ephemeral remote that overwrites
// whatever occupied the slot on the previous ad-hoc call.
const adhocRemoteName = "__adhoc__"
const adhocButtonName = "_irp"

// buildAdhocRemote validates a one-off IRP-style code into a one-button
// ephemeral Remote and installs (or overwrites) it into the remote table
// under adhocRemoteName — the only table mutation this module ever makes
// outside of a full LoadRemotes call.
func (c *Codec) buildAdhocRemote(serviceIdx, deviceID, protocol string, device, subdevice int, fnc interface{}, repeats int) error {
	r := &Remote{
		IrEmitter: IrEmitter{Device: deviceID, ServiceIdx: serviceIdx},
		Encoding: Encoding{
			Protocol:  protocol,
			Device:    device,
			Subdevice: subdevice,
			Repeats:   repeats,
		},
		Functions: map[string]*Button{adhocButtonName: {Fnc: fnc}},
	}
	if err := Validate(adhocRemoteName, r); err != nil {
		return err
	}

	c.mu.Lock()
	c.remotes[adhocRemoteName] = r
	c.mu.Unlock()
	return nil
}

// SendIRPCode encodes and transmits a one-off IRP-style code that is not
// backed by an entry in the remote table: the host supplies the protocol
// tag, device/subdevice, function, and repeat count directly, along with
// the serviceIdx/deviceID of the transmitter to carry it. It synthesizes
// the ephemeral remote, installs it under adhocRemoteName, and routes
// through the normal SendRemoteCode path rather than duplicating it.
func (c *Codec) SendIRPCode(ctx context.Context, serviceIdx, deviceID, protocol string, device, subdevice int, fnc interface{}, repeats int) error {
	if err := c.buildAdhocRemote(serviceIdx, deviceID, protocol, device, subdevice, fnc, repeats); err != nil {
		return err
	}
	return c.SendRemoteCode(ctx, adhocRemoteName, adhocButtonName)
}

// EncodeIRPCode validates and encodes an ad-hoc IRP-style code without
// transmitting it — the half of SendIRPCode a caller wants when it only
// needs the Pronto string (the irp command's --dry-run flag). It
// installs the same ephemeral remote SendIRPCode does,
// so a dry-run preview and a real send see identical validation.
func (c *Codec) EncodeIRPCode(protocol string, device, subdevice int, fnc interface{}, repeats int) (string, error) {
	if err := c.buildAdhocRemote("", "", protocol, device, subdevice, fnc, repeats); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.remotes[adhocRemoteName]
	return c.encodeButton(r, r.Functions[adhocButtonName])
}

// encodeButton dispatches to the protocol-specific encoder and the
// assembler, consuming (and, for MCE, flipping) the caller's held lock.
func (c *Codec) encodeButton(r *Remote, btn *Button) (string, error) {
	repeats := r.Encoding.Repeats

	switch r.protocol {
	case ProtocolPronto:
		cb := btn.CmdBytes.(CmdBytesPronto)
		return cb.ProntoCode, nil

	case ProtocolGC100:
		cb := btn.CmdBytes.(CmdBytesGC100)
		ctx, words := encodeGC100(cb)
		return assemblePassthrough(ctx, words)

	case ProtocolRaw:
		cb := btn.CmdBytes.(CmdBytesRaw)
		ctx, words := encodeRaw(cb)
		return assemblePassthrough(ctx, words)

	case ProtocolPioneer:
		cb := btn.CmdBytes.(CmdBytesNEC)
		words, _ := encodePioneer(cb)
		ctx := SetClockRate(pioneerLeadFreq, necK)
		return assemblePronto(ctx, words, words, repeats, 0)

	case ProtocolRC5:
		cb := btn.CmdBytes.(CmdBytesRC5)
		words, _ := encodeRC5(cb, false)
		ctx := SetClockRate(rc5Freq, rc5K)
		return assemblePronto(ctx, words, words, repeats, 0)

	case ProtocolRC6_0_16, ProtocolRC6_6_20:
		cb := btn.CmdBytes.(CmdBytesRC6)
		words, _ := encodeRC6(r.protocol, cb, false)
		ctx := SetClockRate(rc6Freq, rc6K)
		return assemblePronto(ctx, words, words, repeats, 0)

	case ProtocolRC6_6_32:
		cb := btn.CmdBytes.(CmdBytesRC6)
		toggle := c.mceToggle
		c.mceToggle = !c.mceToggle
		words, _ := encodeRC6(r.protocol, cb, toggle)
		ctx := SetClockRate(rc6Freq, rc6K)
		return assemblePronto(ctx, words, words, repeats, 0)

	case ProtocolRCA:
		cb := btn.CmdBytes.(CmdBytesRCA)
		words, _ := encodeRCA(cb)
		ctx := SetClockRate(rcaFreq, rcaK)
		return assemblePronto(ctx, words, words, repeats, 0)

	case ProtocolSony12, ProtocolSony15, ProtocolSony20:
		cb := btn.CmdBytes.(CmdBytesSony)
		words, _ := encodeSony(r.protocol, cb)
		ctx := SetClockRate(sonyFreq, sonyK)
		return assemblePronto(ctx, words, words, repeats, 0)

	case ProtocolDenon, ProtocolSharpTwoFrame:
		cb := btn.CmdBytes.(CmdBytesDenonSharp)
		words, _ := encodeDenonSharp(cb)
		ctx := SetClockRate(denonSharpFreq, denonSharpK)
		return assemblePronto(ctx, words, words, repeats, 0)

	case ProtocolMitsubishi, ProtocolMitsubishiK:
		cb := btn.CmdBytes.(CmdBytesMitsubishiJVC)
		words, _ := encodeMitsubishi(cb)
		ctx := SetClockRate(mitsubishiFreq, mitsubishiK)
		return assemblePronto(ctx, words, words, repeats, 0)

	case ProtocolJVC:
		cb := btn.CmdBytes.(CmdBytesMitsubishiJVC)
		words, _ := encodeJVC(cb)
		ctx := SetClockRate(jvcFreq, jvcK)
		return assemblePronto(ctx, words, words, repeats, jvcLeadInWords)

	case ProtocolPanasonic, ProtocolDenonK, ProtocolJVC48, ProtocolFujitsu, ProtocolSharpDVD, ProtocolTeacK:
		cb := btn.CmdBytes.(CmdBytesKaseikyo)
		words, _ := encodeKaseikyo(r.protocol, cb)
		freq, k := kaseikyoClock(r.protocol)
		ctx := SetClockRate(freq, k)
		return assemblePronto(ctx, words, words, repeats, 0)

	default:
		cb := btn.CmdBytes.(CmdBytesNEC)
		words, _ := encodeNEC(r.protocol, cb)
		ctx := SetClockRate(necFreq, necK)
		return assemblePronto(ctx, words, words, repeats, 0)
	}
}

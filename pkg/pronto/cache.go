// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// SaveSnapshot CBOR-encodes an already-validated remote table for reload
// on the next process start without the JSON parse. CmdObc/CmdBytes are
// tagged cbor:"-" and excluded; LoadSnapshot re-derives them by running
// Validate again, so a snapshot load still range-checks every button.
func SaveSnapshot(remotes map[string]*Remote) ([]byte, error) {
	data, err := cbor.Marshal(remotes)
	if err != nil {
		return nil, fmt.Errorf("pronto: snapshot encode failed: %w", err)
	}
	return data, nil
}

// LoadSnapshot decodes a CBOR snapshot written by SaveSnapshot and
// re-validates every remote in it. A remote that no longer validates
// (the protocol tables changed between the snapshot and this binary,
// say) is dropped and reported, exactly as LoadRemoteTable does for a
// fresh JSON load.
func LoadSnapshot(data []byte) (map[string]*Remote, []error) {
	var raw map[string]*Remote
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, []error{&ConfigError{Message: fmt.Sprintf("malformed snapshot: %s", err)}}
	}

	var errs []error
	out := make(map[string]*Remote, len(raw))
	for name, r := range raw {
		if r == nil {
			errs = append(errs, &ConfigError{Remote: name, Message: "remote entry is null"})
			continue
		}
		if err := Validate(name, r); err != nil {
			errs = append(errs, err)
			continue
		}
		out[name] = r
	}
	return out, errs
}

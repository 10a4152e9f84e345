// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LoadRemoteTable parses a JSON remote-definitions document — a map from
// remote name to Remote — and validates every entry in it.
//
// A remote that fails validation is recorded in the returned error slice
// but does not stop the rest of the document from loading: a home's
// remote file aggregates many vendors, and one malformed entry shouldn't
// blind the host to every other remote in the file. Callers that want
// strict all-or-nothing loading can check len(errs) == 0 themselves.
//
// This loader only understands plain JSON. Some hosts ship remote
// tables LZO-compressed; detecting and decompressing that format is the
// host's concern, not this module's — LoadRemoteTable rejects
// non-JSON input outright rather than guessing at a compression scheme.
func LoadRemoteTable(data []byte) (map[string]*Remote, []error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, []error{&ConfigError{Message: "input is not JSON (LZO-compressed remote files must be decompressed by the host before calling LoadRemoteTable)"}}
	}

	var raw map[string]*Remote
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, []error{&ConfigError{Message: fmt.Sprintf("malformed remote table: %s", err)}}
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

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import "fmt"

// ConfigError reports a malformed remote definition: a missing or
// wrong-typed field, or a value outside the protocol's valid range.
// Surfaced at load time; the host is told which remote/button/field
// failed so it can fix the definitions file.
type ConfigError struct {
	Remote  string
	Button  string
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Button != "":
		return fmt.Sprintf("pronto: config error in remote %q button %q: %s", e.Remote, e.Button, e.Message)
	case e.Remote != "":
		return fmt.Sprintf("pronto: config error in remote %q: %s", e.Remote, e.Message)
	default:
		return fmt.Sprintf("pronto: config error: %s", e.Message)
	}
}

// LookupError reports that a requested remote or button name is not in
// the table. It is a no-op condition, not a crash: the caller logs it
// and moves on.
type LookupError struct {
	Remote string
	Button string
}

func (e *LookupError) Error() string {
	if e.Button != "" {
		return fmt.Sprintf("pronto: unknown button %q on remote %q", e.Button, e.Remote)
	}
	return fmt.Sprintf("pronto: unknown remote %q", e.Remote)
}

// UnimplementedError reports a transmitter service index this module
// does not carry a transport for (Kira, Tasmota). No transmission is
// attempted.
type UnimplementedError struct {
	ServiceIdx string
	What       string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("pronto: transmitter service index %q (%s) is not implemented", e.ServiceIdx, e.What)
}

// ConsistencyError reports an internal invariant violation — an odd
// Pronto body-word count — that should be unreachable. The malformed
// string is still returned by the caller alongside this error so it can
// be diagnosed rather than silently discarded.
type ConsistencyError struct {
	Message string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("pronto: internal consistency error: %s", e.Message)
}

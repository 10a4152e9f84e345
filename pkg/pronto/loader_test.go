// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pronto

import "testing"

func TestLoadRemoteTableRejectsNonJSON(t *testing.T) {
	// Stands in for an LZO-compressed remote file: not JSON, must not be
	// guessed at.
	_, errs := LoadRemoteTable([]byte{0x89, 0x4c, 0x5a, 0x4f, 0x00, 0x0d, 0x0a})
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(errs))
	}
	if _, ok := errs[0].(*ConfigError); !ok {
		t.Errorf("error = %T, want *ConfigError", errs[0])
	}
}

func TestLoadRemoteTableMalformedJSON(t *testing.T) {
	_, errs := LoadRemoteTable([]byte(`{"a": `))
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(errs))
	}
}

func TestLoadRemoteTableSkipsBadEntryContinuesRest(t *testing.T) {
	doc := []byte(`{
		"good": {
			"Model": "Good Remote",
			"IRemitter": {"Device": "dev1", "ServiceIdx": "svc1"},
			"Encoding": {"Protocol": "NEC2", "Device": 4, "Subdevice": -1},
			"Functions": {"power": {"Fnc": 8}}
		},
		"bad": {
			"Model": "Bad Remote",
			"IRemitter": {"Device": "dev2", "ServiceIdx": "svc2"},
			"Encoding": {"Protocol": "NOT-A-REAL-PROTOCOL", "Device": 1},
			"Functions": {"power": {"Fnc": 1}}
		}
	}`)

	remotes, errs := LoadRemoteTable(doc)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error for the bad entry, got %d: %v", len(errs), errs)
	}
	if _, ok := remotes["good"]; !ok {
		t.Error("good remote should have loaded despite the bad entry")
	}
	if _, ok := remotes["bad"]; ok {
		t.Error("bad remote should not be present in the loaded table")
	}
}

func TestLoadRemoteTableNullEntry(t *testing.T) {
	doc := []byte(`{"ghost": null}`)
	remotes, errs := LoadRemoteTable(doc)
	if len(errs) != 1 {
		t.Fatalf("expected one error for a null entry, got %d", len(errs))
	}
	if len(remotes) != 0 {
		t.Errorf("expected no remotes loaded, got %d", len(remotes))
	}
}

func TestSaveAndLoadSnapshotRoundTrips(t *testing.T) {
	r := newValidatedNECRemote(t, "svc")
	remotes := map[string]*Remote{"test-nec": r}

	data, err := SaveSnapshot(remotes)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, errs := LoadSnapshot(data)
	if len(errs) != 0 {
		t.Fatalf("LoadSnapshot errors: %v", errs)
	}
	got, ok := loaded["test-nec"]
	if !ok {
		t.Fatal("snapshot round-trip lost the remote")
	}
	if got.Model != r.Model {
		t.Errorf("Model = %q, want %q", got.Model, r.Model)
	}
	if got.Functions["power"].CmdBytes == nil {
		t.Error("CmdBytes should be re-derived by Validate after snapshot load")
	}
}

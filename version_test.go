// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package gobombe

import "testing"

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("GetVersion() = %q, want %q", GetVersion(), Version)
	}
	if Version == "" {
		t.Error("Version must not be empty")
	}
}

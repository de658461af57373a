//go:build !mobile

package utils

import "testing"

func TestIsMobileDesktop(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("IsMobile() should be false on desktop")
	}

	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Errorf("IsMobile() should be true when %s=1", MobileEmulateEnv)
	}
}

func TestEnsureStorageDirDesktop(t *testing.T) {
	if err := EnsureStorageDir("liquidsim"); err != nil {
		t.Errorf("EnsureStorageDir() error = %v", err)
	}
}

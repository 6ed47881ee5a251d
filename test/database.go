package test

import (
	"path/filepath"
	"testing"
)

// TmpFile returns the path to a temporary file that can be used as a
// database. The file is cleaned up automatically when the test ends.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "gorm.db")
}

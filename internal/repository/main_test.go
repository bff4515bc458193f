//go:build integration

package repository_test

import (
	"os"
	"testing"

	"leadership-survey-backend/internal/testutils"
)

// TestMain tears down the shared Postgres container after the package's suites
// have all run.
func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

package usecase

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies that no goroutines leak from the catalog business logic.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/luxlife/millionaire-go/internal/catalog"
	"github.com/luxlife/millionaire-go/internal/dependencies/mocks"
	"github.com/luxlife/millionaire-go/internal/services/directory"
	"github.com/luxlife/millionaire-go/internal/services/progression"
	"github.com/luxlife/millionaire-go/internal/storage/memory"
	"github.com/luxlife/millionaire-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(
		store,
		mockClock,
		mockRandom,
		catalog.Default(),
		directory.Config{BcryptCost: bcrypt.MinCost},
		progression.DefaultConfig(),
		testutil.NopLogger(),
	)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

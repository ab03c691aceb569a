package simulator

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{Hands: 10, HeroStrategy: "call", OppStrategy: "fold", Logger: testLogger()})

	assert.Equal(t, 6, s.config.Seats)
	assert.Equal(t, 10, s.config.SmallBlind)
	assert.Equal(t, 20, s.config.BigBlind)
	assert.Equal(t, 2000, s.config.StartingStack)
	assert.NotZero(t, s.config.Timeout)
}

func TestRunPlaysAllHands(t *testing.T) {
	s := New(Config{
		Hands:        30,
		Seats:        4,
		HeroStrategy: "call",
		OppStrategy:  "rand",
		Seed:         12345,
		Logger:       testLogger(),
	})

	stats, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 30, stats.Hands)
	assert.NoError(t, stats.Validate())
	assert.Len(t, stats.Values, 30)
}

func TestRunDeterministicWithSeed(t *testing.T) {
	config := Config{
		Hands:        20,
		Seats:        3,
		HeroStrategy: "chart",
		OppStrategy:  "rand",
		Seed:         777,
		Logger:       testLogger(),
	}

	first, err := New(config).Run()
	require.NoError(t, err)
	second, err := New(config).Run()
	require.NoError(t, err)

	assert.Equal(t, first.Mean(), second.Mean())
	assert.Equal(t, first.Values, second.Values)
}

func TestHeroSeatRotates(t *testing.T) {
	s := New(Config{
		Hands:        9,
		Seats:        3,
		HeroStrategy: "fold",
		OppStrategy:  "fold",
		Seed:         1,
		Logger:       testLogger(),
	})

	stats, err := s.Run()
	require.NoError(t, err)
	for seat := 0; seat < 3; seat++ {
		assert.Equal(t, 3, stats.SeatResults[seat].Hands, "seat %d", seat)
	}
}

func TestRunRecordsHandHistories(t *testing.T) {
	dir := t.TempDir()
	s := New(Config{
		Hands:        3,
		Seats:        3,
		HeroStrategy: "call",
		OppStrategy:  "call",
		Seed:         5,
		RecordDir:    dir,
		Logger:       testLogger(),
	})

	_, err := s.Run()
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	for _, entry := range entries {
		assert.True(t, strings.HasSuffix(entry.Name(), ".phh"), entry.Name())
	}
}

func TestRunUnknownStrategy(t *testing.T) {
	s := New(Config{
		Hands:        1,
		HeroStrategy: "gto",
		OppStrategy:  "call",
		Logger:       testLogger(),
	})

	_, err := s.Run()
	assert.Error(t, err)
}

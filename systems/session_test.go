package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0:00.0"},
		{"under a second", 0.34, "0:00.3"},
		{"single digit seconds", 3.07, "0:03.1"},
		{"minute rollover", 61.24, "1:01.2"},
		{"rounds up into the next minute", 59.97, "1:00.0"},
		{"just under the rounding boundary", 59.94, "0:59.9"},
		{"several minutes", 125.5, "2:05.5"},
		{"negative clamps to zero", -4, "0:00.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.seconds))
		})
	}
}

func TestRecordBestTimeKeepsFastest(t *testing.T) {
	saved = SavedData{}

	assert.Zero(t, BestTime("5x5x3x3"))

	RecordBestTime("5x5x3x3", 42.5)
	assert.Equal(t, 42.5, BestTime("5x5x3x3"))

	// A slower run must not overwrite the record.
	RecordBestTime("5x5x3x3", 60.0)
	assert.Equal(t, 42.5, BestTime("5x5x3x3"))

	RecordBestTime("5x5x3x3", 30.0)
	assert.Equal(t, 30.0, BestTime("5x5x3x3"))

	// Records are kept per maze size.
	RecordBestTime("2x2x2x2", 5.0)
	assert.Equal(t, 5.0, BestTime("2x2x2x2"))
	assert.Equal(t, 30.0, BestTime("5x5x3x3"))
}

func TestDimensionsKeyMatchesConfig(t *testing.T) {
	assert.Regexp(t, `^\d+x\d+x\d+x\d+$`, DimensionsKey())
}

//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScheduleFile(t *testing.T) {
	t.Run("overrides only the keys present in the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "club.yaml")
		content := "schedule:\n  opens_at: \"09:00\"\n  horizon_weeks: 6\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		sc := NewTestConfig().Schedule
		require.NoError(t, loadScheduleFile(path, &sc))

		assert.Equal(t, "09:00", sc.OpensAt)
		assert.Equal(t, 6, sc.HorizonWeeks)
		assert.Equal(t, "22:00", sc.LastStart)
		assert.Equal(t, 90, sc.SlotMinutes)
		assert.Equal(t, time.Hour, sc.SweepInterval)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		sc := NewTestConfig().Schedule
		err := loadScheduleFile(filepath.Join(t.TempDir(), "absent.yaml"), &sc)
		require.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("schedule: [unclosed"), 0o600))

		sc := NewTestConfig().Schedule
		require.Error(t, loadScheduleFile(path, &sc))
	})
}

func TestScheduleLocation(t *testing.T) {
	assert.Equal(t, time.UTC, ScheduleConfig{TimeZone: "Not/AZone"}.Location())
	assert.Equal(t, "America/Argentina/Buenos_Aires", ScheduleConfig{TimeZone: "America/Argentina/Buenos_Aires"}.Location().String())
}

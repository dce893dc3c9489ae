//go:build unit

package court_test

import (
	"strings"
	"testing"
	"time"

	"padel-club/internal/domain/court"
	"padel-club/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourt(t *testing.T) {
	t.Run("valid court starts active with trimmed description", func(t *testing.T) {
		c, err := court.NewCourt(3, court.CategoryIndoor, "  techada con vidrio  ")
		require.NoError(t, err)

		assert.Equal(t, 3, c.Number())
		assert.Equal(t, court.CategoryIndoor, c.Category())
		assert.Equal(t, "techada con vidrio", c.Description())
		assert.True(t, c.IsActive())
		assert.NoError(t, c.EnsureBookable())
	})

	cases := []struct {
		name        string
		number      int
		category    court.Category
		description string
		errIs       error
	}{
		{name: "zero number", number: 0, category: court.CategoryOutdoor, errIs: court.ErrInvalidNumber},
		{name: "unknown type", number: 1, category: "covered", errIs: court.ErrInvalidCategory},
		{name: "description at limit", number: 1, category: court.CategoryOutdoor, description: strings.Repeat("ñ", 255)},
		{name: "description too long", number: 1, category: court.CategoryOutdoor, description: strings.Repeat("a", 256), errIs: court.ErrDescriptionTooLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := court.NewCourt(c.number, c.category, c.description)
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, got)
				return
			}
			require.Nil(t, got)
			assert.True(t, errs.Is(err, c.errIs))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestCourtLifecycle(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := court.ReconstructCourt(9, 2, court.CategoryOutdoor, "", true, now, now)

	require.NoError(t, c.Update(4, court.CategoryIndoor, "renovada", true))
	want := court.ReconstructCourt(9, 4, court.CategoryIndoor, "renovada", true, now, now)
	if diff := cmp.Diff(want, c, cmp.AllowUnexported(court.Court{})); diff != "" {
		t.Errorf("Court mismatch (-want +got):\n%s", diff)
	}

	c.Deactivate()
	assert.False(t, c.IsActive())
	assert.True(t, errs.Is(c.EnsureBookable(), court.ErrCourtInactive))

	assert.True(t, errs.Is(c.Update(0, court.CategoryIndoor, "", true), court.ErrInvalidNumber))
	assert.Equal(t, 4, c.Number(), "failed update must not change state")
}

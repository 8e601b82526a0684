package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomField(t *testing.T) {
	t.Run("Places the whole fleet without touching ships", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			// Given: a seeded generator
			rng := rand.New(rand.NewSource(seed))

			// When: a random field is generated
			field, err := NewRandomField(rng)

			// Then: the fleet is complete and ships keep their distance
			require.NoError(t, err)
			require.Equal(t, FleetCells, field.Alive())

			ships := field.Ships()
			require.Len(t, ships, len(Fleet))
			for i, ship := range ships {
				assert.Equal(t, Fleet[i], ship.Length)
			}

			for i := range ships {
				for j := i + 1; j < len(ships); j++ {
					assertApart(t, ships[i], ships[j])
				}
			}
		}
	})

	t.Run("Same seed gives the same field", func(t *testing.T) {
		first, err := NewRandomField(rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		second, err := NewRandomField(rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		assert.Equal(t, first.Ships(), second.Ships())
	})
}

func assertApart(t *testing.T, a, b Ship) {
	t.Helper()

	for _, ca := range a.Cells() {
		for _, cb := range b.Cells() {
			dc, dr := ca.Col-cb.Col, ca.Row-cb.Row
			touching := dc >= -1 && dc <= 1 && dr >= -1 && dr <= 1
			assert.False(t, touching, "ships %+v and %+v touch at %s/%s", a, b, ca, cb)
		}
	}
}

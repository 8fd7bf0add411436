package cargo_test

import (
	"testing"

	"fuelroute/internal/core/domain/model/cargo"
	"fuelroute/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("should create package with valid parameters", func(t *testing.T) {
		pkg, err := cargo.NewPackage(0, -1, 5, 4)

		require.NoError(t, err)
		require.NoError(t, pkg.Validate())
		assert.Equal(t, 0, pkg.ID())
		assert.EqualValues(t, -1, pkg.Pickup())
		assert.EqualValues(t, 5, pkg.Drop())
		assert.Equal(t, 4, pkg.Weight())
	})

	t.Run("should return error for non-positive weight", func(t *testing.T) {
		testCases := []struct {
			name   string
			weight int
		}{
			{"zero weight", 0},
			{"negative weight", -3},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := cargo.NewPackage(0, -1, 5, tc.weight)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), "weight")
			})
		}
	})

	t.Run("should return error when pickup equals drop", func(t *testing.T) {
		_, err := cargo.NewPackage(0, 7, 7, 4)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "pickup and drop")
	})

	t.Run("should return aggregated errors for multiple invalid parameters", func(t *testing.T) {
		_, err := cargo.NewPackage(0, 7, 7, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pickup and drop")
		assert.Contains(t, err.Error(), "weight")
	})
}

func TestPackage_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var pkg cargo.Package

		err := pkg.Validate()

		require.Error(t, err)
		assert.Equal(t, cargo.ErrPackageIsNotConstructed, err)
	})
}

func TestPackage_IsEqual(t *testing.T) {
	t.Run("packages with same id are equal regardless of other fields", func(t *testing.T) {
		a, err := cargo.NewPackage(1, -1, 5, 4)
		require.NoError(t, err)
		b, err := cargo.NewPackage(1, 6, 2, 9)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("packages with different ids are not equal even with same fields", func(t *testing.T) {
		a, err := cargo.NewPackage(1, -1, 5, 4)
		require.NoError(t, err)
		b, err := cargo.NewPackage(2, -1, 5, 4)
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})
}

func TestPackage_String(t *testing.T) {
	pkg, err := cargo.NewPackage(2, -2, 9, 3)
	require.NoError(t, err)

	assert.Equal(t, "Package(2: -2->9, weight 3)", pkg.String())
}

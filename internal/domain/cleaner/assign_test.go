//go:build unit

package cleaner_test

import (
	"testing"

	"cleaning-scheduler/internal/domain/cleaner"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crew(vehicleID uuid.UUID, vehicleName string, names ...string) []cleaner.Candidate {
	out := make([]cleaner.Candidate, 0, len(names))
	for _, n := range names {
		out = append(out, cleaner.Candidate{
			CleanerID:   uuid.New(),
			CleanerName: n,
			VehicleID:   vehicleID,
			VehicleName: vehicleName,
		})
	}
	return out
}

func TestAssignSameVehicle(t *testing.T) {
	v1 := uuid.New()
	v2 := uuid.New()

	t.Run("first vehicle with capacity wins", func(t *testing.T) {
		candidates := append(
			crew(v1, "Vehicle-1", "a"),
			crew(v2, "Vehicle-2", "b", "c")...,
		)

		got, err := cleaner.AssignSameVehicle(candidates, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, m := range got {
			assert.Equal(t, v2, m.VehicleID)
		}
	})

	t.Run("takes the first members in candidate order", func(t *testing.T) {
		candidates := crew(v1, "Vehicle-1", "a", "b", "c")

		got, err := cleaner.AssignSameVehicle(candidates, 2)
		require.NoError(t, err)
		if diff := cmp.Diff(candidates[:2], got); diff != "" {
			t.Errorf("crew mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("never mixes vehicles", func(t *testing.T) {
		candidates := append(
			crew(v1, "Vehicle-1", "a", "b"),
			crew(v2, "Vehicle-2", "c", "d")...,
		)

		_, err := cleaner.AssignSameVehicle(candidates, 3)
		require.ErrorIs(t, err, cleaner.ErrNoVehicleWithCapacity)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := cleaner.AssignSameVehicle(nil, 1)
		require.ErrorIs(t, err, cleaner.ErrNoVehicleWithCapacity)
	})

	t.Run("deterministic for a fixed candidate order", func(t *testing.T) {
		candidates := append(
			crew(v1, "Vehicle-1", "a", "b"),
			crew(v2, "Vehicle-2", "c", "d")...,
		)

		first, err := cleaner.AssignSameVehicle(candidates, 2)
		require.NoError(t, err)
		second, err := cleaner.AssignSameVehicle(candidates, 2)
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("assignment not deterministic (-first +second):\n%s", diff)
		}
	})

	t.Run("interleaved candidates keep first appearance order", func(t *testing.T) {
		a := crew(v1, "Vehicle-1", "a")[0]
		b := crew(v2, "Vehicle-2", "b")[0]
		c := crew(v1, "Vehicle-1", "c")[0]
		d := crew(v2, "Vehicle-2", "d")[0]

		got, err := cleaner.AssignSameVehicle([]cleaner.Candidate{a, b, c, d}, 2)
		require.NoError(t, err)
		if diff := cmp.Diff([]cleaner.Candidate{a, c}, got); diff != "" {
			t.Errorf("crew mismatch (-want +got):\n%s", diff)
		}
	})
}

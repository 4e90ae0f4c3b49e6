package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomyMarengo/Woki-Challenge/pkg/types"
)

func TestNewTimeString(t *testing.T) {
	ts := types.NewTimeString(time.Date(2025, time.October, 22, 19, 5, 30, 0, time.UTC))
	assert.Equal(t, "19:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := types.NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())
	assert.Equal(t, 30, ts.Minute())
	assert.Equal(t, 570, ts.TotalMinutes())

	_, err = types.NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = types.NewTimeStringFromString("not a time")
	assert.Error(t, err)
}

func TestMustTimeString_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { types.MustTimeString("99:99") })
	assert.NotPanics(t, func() { types.MustTimeString("23:59") })
}

func TestAddMinutes(t *testing.T) {
	ts := types.MustTimeString("23:45")

	shifted, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "00:15", shifted.String())

	shifted, err = ts.AddMinutes(-45)
	require.NoError(t, err)
	assert.Equal(t, "23:00", shifted.String())
}

func TestComparisons(t *testing.T) {
	earlier := types.MustTimeString("11:00")
	later := types.MustTimeString("20:15")

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))
	assert.False(t, earlier.IsBefore(earlier))
	assert.False(t, earlier.IsAfter(earlier))
}

package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderBookings(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer

	rows := []BookingRow{
		{
			ID:               1,
			CustomerUsername: "alice",
			CarName:          "Corolla",
			CarModel:         "2022",
			PickupDate:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			ReturnDate:       time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC),
			Days:             3,
			TotalCost:        135.00,
		},
	}

	err := r.RenderBookings(&buf, rows, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderer_RenderCars_Empty(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer

	err := r.RenderCars(&buf, nil, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderer_RenderCustomers(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer

	rows := []CustomerRow{
		{UserID: 7, Username: "bob", TotalBookings: 2, TotalSpent: 240.50},
	}

	err := r.RenderCustomers(&buf, rows, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

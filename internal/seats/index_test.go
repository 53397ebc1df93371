package seats

import (
	"encoding/json"
	"testing"

	"github.com/saeed-Underline/fidibo/internal/fidibo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatmapDoc(layouts ...fidibo.SeatmapLayout) *fidibo.SeatmapDocument {
	doc := &fidibo.SeatmapDocument{}
	doc.Data.Result = layouts
	return doc
}

func price(v float64) *float64 {
	return &v
}

func TestBuildIndexFlattensFirstLayout(t *testing.T) {
	doc := seatmapDoc(
		fidibo.SeatmapLayout{
			Zones: []fidibo.SeatmapZone{
				{
					Name: "Balcony",
					Blocks: []fidibo.SeatmapBlock{
						{
							Name: "B1",
							Rows: []fidibo.SeatmapRow{
								{
									Name: "R1",
									Seats: []fidibo.SeatmapSeat{
										{ID: json.Number("11"), DisplayName: "B1-R1-1", Price: price(100), Currency: "IRR"},
										{ID: json.Number("12"), DisplayName: "B1-R1-2", Price: price(150), Currency: "IRR"},
									},
								},
							},
						},
					},
				},
			},
		},
		fidibo.SeatmapLayout{
			Zones: []fidibo.SeatmapZone{
				{
					Name: "SecondLayout",
					Blocks: []fidibo.SeatmapBlock{
						{Rows: []fidibo.SeatmapRow{{Seats: []fidibo.SeatmapSeat{{ID: json.Number("99")}}}}},
					},
				},
			},
		},
	)

	ix := BuildIndex(doc)

	require.Equal(t, 2, ix.Len())

	entry, ok := ix.Lookup(11)
	require.True(t, ok)
	assert.Equal(t, "Balcony", entry.Zone)
	assert.Equal(t, "B1", entry.Block)
	assert.Equal(t, "R1", entry.Row)
	assert.Equal(t, "B1-R1-1", entry.DisplayName)
	assert.Equal(t, 100.0, *entry.Price)

	// seats from the second layout must not leak in
	_, ok = ix.Lookup(99)
	assert.False(t, ok)
}

func TestBuildIndexSkipsSeatsWithoutIntegerID(t *testing.T) {
	doc := seatmapDoc(fidibo.SeatmapLayout{
		Zones: []fidibo.SeatmapZone{
			{
				Name: "Main",
				Blocks: []fidibo.SeatmapBlock{
					{
						Name: "A",
						Rows: []fidibo.SeatmapRow{
							{
								Name: "1",
								Seats: []fidibo.SeatmapSeat{
									{ID: json.Number("1")},
									{ID: json.Number("")},
									{ID: json.Number("2.5")},
									{ID: json.Number("2")},
								},
							},
						},
					},
				},
			},
		},
	})

	ix := BuildIndex(doc)

	assert.Equal(t, 2, ix.Len())
	_, ok := ix.Lookup(1)
	assert.True(t, ok)
	_, ok = ix.Lookup(2)
	assert.True(t, ok)
}

func TestBuildIndexEmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		doc  *fidibo.SeatmapDocument
	}{
		{name: "nil document", doc: nil},
		{name: "no layouts", doc: seatmapDoc()},
		{name: "layout without seats", doc: seatmapDoc(fidibo.SeatmapLayout{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := BuildIndex(tt.doc)
			require.NotNil(t, ix)
			assert.Equal(t, 0, ix.Len())
			assert.Empty(t, ix.Entries())
		})
	}
}

func TestBuildIndexPreservesStructuralOrder(t *testing.T) {
	doc := seatmapDoc(fidibo.SeatmapLayout{
		Zones: []fidibo.SeatmapZone{
			{
				Name: "Z1",
				Blocks: []fidibo.SeatmapBlock{
					{
						Name: "B1",
						Rows: []fidibo.SeatmapRow{
							{Name: "R1", Seats: []fidibo.SeatmapSeat{{ID: json.Number("30")}, {ID: json.Number("10")}}},
							{Name: "R2", Seats: []fidibo.SeatmapSeat{{ID: json.Number("20")}}},
						},
					},
				},
			},
			{
				Name: "Z2",
				Blocks: []fidibo.SeatmapBlock{
					{Name: "B2", Rows: []fidibo.SeatmapRow{{Name: "R1", Seats: []fidibo.SeatmapSeat{{ID: json.Number("5")}}}}},
				},
			},
		},
	})

	ix := BuildIndex(doc)

	var ids []int64
	for _, e := range ix.Entries() {
		ids = append(ids, e.SeatID)
	}
	assert.Equal(t, []int64{30, 10, 20, 5}, ids)
}

func TestBuildIndexDuplicateSeatIDLastWins(t *testing.T) {
	doc := seatmapDoc(fidibo.SeatmapLayout{
		Zones: []fidibo.SeatmapZone{
			{
				Name: "Z1",
				Blocks: []fidibo.SeatmapBlock{
					{
						Name: "B1",
						Rows: []fidibo.SeatmapRow{
							{Name: "R1", Seats: []fidibo.SeatmapSeat{{ID: json.Number("7"), DisplayName: "first"}}},
							{Name: "R2", Seats: []fidibo.SeatmapSeat{{ID: json.Number("7"), DisplayName: "second"}}},
						},
					},
				},
			},
		},
	})

	ix := BuildIndex(doc)

	require.Equal(t, 1, ix.Len())
	entry, ok := ix.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, "second", entry.DisplayName)
	assert.Equal(t, "R2", entry.Row)
}

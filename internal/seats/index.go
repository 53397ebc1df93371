package seats

import (
	"github.com/saeed-Underline/fidibo/internal/entity"
	"github.com/saeed-Underline/fidibo/internal/fidibo"
)

// Index is the flattened seatmap of one session. Entries keep the
// structural order of the layout (zone, block, row, seat), which makes
// "first non-empty currency wins" a deterministic tie-break.
type Index struct {
	entries []entity.SeatMapEntry
	byID    map[int64]int
}

// BuildIndex flattens the first layout of a seatmap document. Seats
// without an integer id are skipped; a document with no layouts yields
// an empty index. Layouts beyond the first are ignored.
func BuildIndex(doc *fidibo.SeatmapDocument) *Index {
	ix := &Index{byID: make(map[int64]int)}
	if doc == nil || len(doc.Data.Result) == 0 {
		return ix
	}

	layout := doc.Data.Result[0]
	for _, zone := range layout.Zones {
		for _, block := range zone.Blocks {
			for _, row := range block.Rows {
				for _, seat := range row.Seats {
					id, err := seat.ID.Int64()
					if err != nil {
						continue
					}
					entry := entity.SeatMapEntry{
						SeatID:      id,
						DisplayName: seat.DisplayName,
						Zone:        zone.Name,
						Block:       block.Name,
						Row:         row.Name,
						Price:       seat.Price,
						Currency:    seat.Currency,
					}
					if pos, ok := ix.byID[id]; ok {
						ix.entries[pos] = entry
						continue
					}
					ix.byID[id] = len(ix.entries)
					ix.entries = append(ix.entries, entry)
				}
			}
		}
	}
	return ix
}

// Len reports the number of distinct seats in the map.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns the seats in structural layout order.
func (ix *Index) Entries() []entity.SeatMapEntry {
	return ix.entries
}

// Lookup returns the entry for a seat id.
func (ix *Index) Lookup(seatID int64) (entity.SeatMapEntry, bool) {
	pos, ok := ix.byID[seatID]
	if !ok {
		return entity.SeatMapEntry{}, false
	}
	return ix.entries[pos], true
}

package models

// CompactMeta describes when and from which source versions a compact table
// was generated.
type CompactMeta struct {
	GeneratedAt         string   `json:"generatedAt"`
	SourceCacheVersions []string `json:"sourceCacheVersions"`
}

// BusyPair is a merged busy interval serialised as [start, end].
type BusyPair [2]string

// CampusRooms maps room -> day -> sorted busy intervals.
type CampusRooms struct {
	Rooms map[string]map[string][]BusyPair `json:"rooms"`
}

// CompactTable is the compacted room-busy table keyed by campus.
type CompactTable struct {
	Meta     CompactMeta            `json:"meta"`
	Campuses map[string]CampusRooms `json:"campuses"`
}

// RoomCounts returns the number of rooms per campus.
func (t *CompactTable) RoomCounts() map[string]int {
	counts := make(map[string]int, len(t.Campuses))
	for campus, rooms := range t.Campuses {
		counts[campus] = len(rooms.Rooms)
	}
	return counts
}

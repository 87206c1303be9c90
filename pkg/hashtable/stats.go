package hashtable

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats describes how entries are spread across buckets.
type Stats struct {
	Entries      int
	Buckets      int
	UsedBuckets  int
	LongestChain int
	LoadFactor   float64
}

// Stats walks every chain and reports the table's occupancy.
func (t *Table[K, V]) Stats() Stats {
	s := Stats{Entries: t.Size(), Buckets: t.Capacity()}
	if !t.usable() {
		return s
	}
	for _, head := range t.heads {
		n := 0
		for i := head; i != noEntry; i = t.links[i] {
			n++
		}
		if n > 0 {
			s.UsedBuckets++
		}
		s.LongestChain = max(s.LongestChain, n)
	}
	s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("%s entries in %s buckets (%s used, longest chain %s, load %.2f)",
		humanize.Comma(int64(s.Entries)),
		humanize.Comma(int64(s.Buckets)),
		humanize.Comma(int64(s.UsedBuckets)),
		humanize.Comma(int64(s.LongestChain)),
		s.LoadFactor)
}

package rbtree

import "go.uber.org/atomic"

// Stats counts the rebalancing work done by a tree. Counters are atomic so a
// metrics scraper may read them while the single writer keeps mutating.
// A Stats must not be copied after first use.
type Stats struct {
	inserts        atomic.Int64
	deletes        atomic.Int64
	duplicates     atomic.Int64
	rotations      atomic.Int64
	insertRecolors atomic.Int64
	straightLines  atomic.Int64
	zigZags        atomic.Int64
	deleteCases    [6]atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Inserts       int64
	Deletes       int64
	DuplicateKeys int64
	Rotations     int64

	// InsertRecolors counts red-uncle color flips during insert fix-up.
	InsertRecolors int64
	// InsertStraightLine and InsertZigZag count the two black-uncle shapes.
	InsertStraightLine int64
	InsertZigZag       int64

	// DeleteCases[i] counts how often delete fix-up case i+1 applied.
	DeleteCases [6]int64
}

// Snapshot copies the current counter values. It is safe on a nil Stats.
func (s *Stats) Snapshot() StatsSnapshot {
	if s == nil {
		return StatsSnapshot{}
	}

	snap := StatsSnapshot{
		Inserts:            s.inserts.Load(),
		Deletes:            s.deletes.Load(),
		DuplicateKeys:      s.duplicates.Load(),
		Rotations:          s.rotations.Load(),
		InsertRecolors:     s.insertRecolors.Load(),
		InsertStraightLine: s.straightLines.Load(),
		InsertZigZag:       s.zigZags.Load(),
	}

	for i := range s.deleteCases {
		snap.DeleteCases[i] = s.deleteCases[i].Load()
	}

	return snap
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	if s == nil {
		return
	}

	for _, c := range []*atomic.Int64{
		&s.inserts, &s.deletes, &s.duplicates, &s.rotations,
		&s.insertRecolors, &s.straightLines, &s.zigZags,
	} {
		c.Store(0)
	}

	for i := range s.deleteCases {
		s.deleteCases[i].Store(0)
	}
}

// The recorders below are no-ops on a nil Stats, which is what the bare-root
// functions use.

func (s *Stats) inserted() {
	if s != nil {
		s.inserts.Inc()
	}
}

func (s *Stats) deleted() {
	if s != nil {
		s.deletes.Inc()
	}
}

func (s *Stats) duplicate() {
	if s != nil {
		s.duplicates.Inc()
	}
}

func (s *Stats) rotated() {
	if s != nil {
		s.rotations.Inc()
	}
}

func (s *Stats) recolored() {
	if s != nil {
		s.insertRecolors.Inc()
	}
}

func (s *Stats) straightLine() {
	if s != nil {
		s.straightLines.Inc()
	}
}

func (s *Stats) zigZag() {
	if s != nil {
		s.zigZags.Inc()
	}
}

func (s *Stats) deleteCase(n int) {
	if s != nil {
		s.deleteCases[n-1].Inc()
	}
}

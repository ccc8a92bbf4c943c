// Package metrics exports red-black tree shape and rebalancing counters to
// Prometheus.
package metrics

import (
	"strconv"

	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/prometheus/client_golang/prometheus"
)

// Source is the read side of a tree the collector scrapes. Every
// *rbtree.Tree satisfies it regardless of key type.
type Source interface {
	Len() int
	Height() int
	BlackHeight() int
	Stats() *rbtree.Stats
}

// Collector is a prometheus.Collector over one tree. Size and height are read
// from the tree itself, so scrapes must not overlap a mutation; the counters
// are atomic and can be read at any time.
type Collector struct {
	source Source

	size        *prometheus.Desc
	height      *prometheus.Desc
	blackHeight *prometheus.Desc
	inserts     *prometheus.Desc
	deletes     *prometheus.Desc
	duplicates  *prometheus.Desc
	rotations   *prometheus.Desc
	recolors    *prometheus.Desc
	insertShape *prometheus.Desc
	deleteCase  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector builds a collector for source. The tree label tells several
// trees apart in the same registry.
func NewCollector(source Source, tree string) *Collector {
	labels := prometheus.Labels{"tree": tree}

	desc := func(name, help string, variable ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("rbtree", "", name), help, variable, labels)
	}

	return &Collector{
		source:      source,
		size:        desc("size", "Number of keys in the tree"),
		height:      desc("height", "Nodes on the longest root-to-leaf path"),
		blackHeight: desc("black_height", "Black nodes on any path from the root to a leaf"),
		inserts:     desc("inserts_total", "Keys inserted"),
		deletes:     desc("deletes_total", "Keys deleted"),
		duplicates:  desc("duplicate_keys_total", "Inserts rejected because the key was present"),
		rotations:   desc("rotations_total", "Rotations performed while rebalancing"),
		recolors:    desc("insert_recolors_total", "Red-uncle recolorings during insert fix-up"),
		insertShape: desc("insert_rotations_total", "Insert fix-ups that rotated, by shape", "shape"),
		deleteCase:  desc("delete_fixup_cases_total", "Double-black fix-up cases applied during delete", "case"),
	}
}

// Describe sends the descriptor of every tree metric.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		c.size, c.height, c.blackHeight,
		c.inserts, c.deletes, c.duplicates, c.rotations, c.recolors,
		c.insertShape, c.deleteCase,
	} {
		ch <- d
	}
}

// Collect reads the source once and emits a const metric per series.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	gauge := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}

	counter := func(d *prometheus.Desc, v int64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v), labels...)
	}

	gauge(c.size, c.source.Len())
	gauge(c.height, c.source.Height())
	gauge(c.blackHeight, c.source.BlackHeight())

	snap := c.source.Stats().Snapshot()

	counter(c.inserts, snap.Inserts)
	counter(c.deletes, snap.Deletes)
	counter(c.duplicates, snap.DuplicateKeys)
	counter(c.rotations, snap.Rotations)
	counter(c.recolors, snap.InsertRecolors)
	counter(c.insertShape, snap.InsertStraightLine, "straight")
	counter(c.insertShape, snap.InsertZigZag, "zigzag")

	for i, n := range snap.DeleteCases {
		counter(c.deleteCase, n, strconv.Itoa(i+1))
	}
}

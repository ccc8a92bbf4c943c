package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteText gathers g and writes it in the Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("writing %s: %w", family.GetName(), err)
		}
	}

	return nil
}

// Registry returns a fresh registry holding a collector for each named tree.
func Registry(trees map[string]Source) (*prometheus.Registry, error) {
	reg := prometheus.NewPedanticRegistry()

	for name, source := range trees {
		if err := reg.Register(NewCollector(source, name)); err != nil {
			return nil, fmt.Errorf("registering tree %q: %w", name, err)
		}
	}

	return reg, nil
}

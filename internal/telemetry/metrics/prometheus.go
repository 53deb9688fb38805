package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
)

// SetupPrometheus returns the registry served on the metrics listener: build info,
// go runtime and process collectors plus the given ones (e.g. the pgx pool collector).
func SetupPrometheus(extraCollectors ...prometheus.Collector) (*prometheus.Registry, error) {
	promRegistry := prometheus.NewRegistry()

	all := append([]prometheus.Collector{
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}, extraCollectors...)

	var err error
	for i, c := range all {
		if regErr := promRegistry.Register(c); regErr != nil {
			err = multierr.Append(err, fmt.Errorf("register collector %d: %w", i, regErr))
		}
	}
	if err != nil {
		return nil, err
	}

	return promRegistry, nil
}

// Package prometheus exposes the process metrics of a short lived command:
// a logrus hook counting log entries, and a writer for the text exposition
// format read by the node exporter textfile collector.
package prometheus

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile writes every metric registered with the default registry to
// path, replacing the file atomically.
func WriteTextfile(path string) error {
	return WriteTextfileFrom(prometheus.DefaultGatherer, path)
}

// WriteTextfileFrom writes the metrics gathered from g to path.
func WriteTextfileFrom(g prometheus.Gatherer, path string) error {
	if path == "" {
		return errors.New("empty metrics file path")
	}
	if err := prometheus.WriteToTextfile(filepath.Clean(path), g); err != nil {
		return errors.Wrap(err, "could not write metrics file")
	}
	return nil
}

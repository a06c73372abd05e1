package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

const (
	prefixKey     = "prefix"
	defaultPrefix = "global"
)

var logEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "buildersig",
	Name:      "log_entries_total",
	Help:      "Number of log entries written, by level and package prefix.",
}, []string{"level", "prefix"})

// LogrusCollector is a logrus hook counting log entries by level and prefix.
type LogrusCollector struct {
	counterVec *prometheus.CounterVec
	levels     []logrus.Level
}

// NewLogrusCollector returns a hook for the given levels, or for info and
// above when none are given.
func NewLogrusCollector(levels ...logrus.Level) *LogrusCollector {
	if len(levels) == 0 {
		levels = []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel, logrus.InfoLevel}
	}
	return &LogrusCollector{
		counterVec: logEntriesTotal,
		levels:     levels,
	}
}

// Fire is called on every log call.
func (hook *LogrusCollector) Fire(entry *logrus.Entry) error {
	prefix := defaultPrefix
	if v, ok := entry.Data[prefixKey]; ok {
		prefix = fmt.Sprint(v)
	}
	hook.counterVec.WithLabelValues(entry.Level.String(), prefix).Inc()
	return nil
}

// Levels returns the levels this hook fires for.
func (hook *LogrusCollector) Levels() []logrus.Level {
	return hook.levels
}

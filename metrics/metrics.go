package metrics

/*
Query and outcome metrics for a diff run, written once at the end of the run
as a node-exporter textfile.
*/

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	LabelSource = "source"
	LabelQuery  = "query"
	LabelKind   = "kind"

	QueryTableNames    = "table_names"
	QueryPrimaryKeys   = "primary_keys"
	QueryTableCount    = "table_count"
	QueryHashData      = "hash_data"
	QuerySequenceNames = "sequence_names"
	QueryLastValue     = "last_value"
	QueryColumns       = "columns"
)

var (
	Registry = prometheus.NewRegistry()

	queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pgdatadiff",
		Name:      "query_duration_seconds",
		Help:      "Duration of queries against each database, in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // top bucket ~= 4 minutes
	}, []string{LabelSource, LabelQuery})

	queryErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pgdatadiff",
		Name:      "query_errors_total",
		Help:      "Number of failed queries against each database.",
	}, []string{LabelSource, LabelQuery})

	outcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pgdatadiff",
		Name:      "outcomes_total",
		Help:      "Number of table and sequence results by kind.",
	}, []string{LabelKind})
)

func init() {
	Registry.MustRegister(queryDuration, queryErrors, outcomes)
}

// ObserveQuery records one query round trip on one side.
func ObserveQuery(source, query string, begin time.Time, err error) {
	queryDuration.WithLabelValues(source, query).Observe(time.Since(begin).Seconds())
	if err != nil {
		queryErrors.WithLabelValues(source, query).Inc()
	}
}

func ObserveOutcome(kind string) {
	outcomes.WithLabelValues(kind).Inc()
}

func WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, Registry)
}

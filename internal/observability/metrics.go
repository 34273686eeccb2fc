package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Datagram results recorded against the counter below.
const (
	ResultDecoded     = "decoded"
	ResultMalformed   = "malformed"
	ResultReplied     = "replied"
	ResultHandlerFail = "handler_failed"
)

var (
	registerOnce sync.Once

	datagrams = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dhcpwire",
			Subsystem: "udp",
			Name:      "datagrams_total",
			Help:      "UDP datagrams processed, by outcome.",
		},
		[]string{"node", "result"},
	)
	decodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dhcpwire",
			Subsystem: "codec",
			Name:      "decode_duration_seconds",
			Help:      "Frame decode duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"node"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(datagrams, decodeDuration)
	})
}

func RecordDatagram(node, result string) {
	RegisterMetrics()
	datagrams.WithLabelValues(node, result).Inc()
}

func RecordDecode(node string, duration time.Duration) {
	RegisterMetrics()
	decodeDuration.WithLabelValues(node).Observe(duration.Seconds())
}

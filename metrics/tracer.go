// Package metrics provides a Prometheus-backed Tracer for the front door.
package metrics

import (
	"errors"
	"net"

	"github.com/quicgate/quicgate"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "quicgate"

func getIPVersion(addr net.Addr) string {
	udpAddr, ok := addr.(*net.UDPAddr)
	if !ok {
		return ""
	}
	if udpAddr.IP.To4() != nil {
		return "ipv4"
	}
	return "ipv6"
}

var (
	repliesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_stateless_replies_sent_total",
			Help:      "Version negotiation and Retry replies sent",
		},
		[]string{"ip_version", "type"},
	)
	packetDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_received_packets_dropped_total",
			Help:      "Packets dropped without a reply",
		},
		[]string{"ip_version", "reason"},
	)
	connsAccepted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_connections_accepted_total",
			Help:      "Connections accepted",
		},
		[]string{"ip_version"},
	)
)

// NewTracer creates a new tracer using the default Prometheus registerer.
// The Tracer returned from this function can be set on the Tracer field of
// quicgate.Config to collect metrics for events happening before the
// establishment of a connection.
func NewTracer() *quicgate.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
func NewTracerWithRegisterer(registerer prometheus.Registerer) *quicgate.Tracer {
	for _, c := range [...]prometheus.Collector{
		repliesSent,
		packetDropped,
		connsAccepted,
	} {
		if err := registerer.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				panic(err)
			}
		}
	}

	return &quicgate.Tracer{
		SentVersionNegotiation: func(addr net.Addr) {
			repliesSent.WithLabelValues(getIPVersion(addr), "version_negotiation").Inc()
		},
		SentRetry: func(addr net.Addr) {
			repliesSent.WithLabelValues(getIPVersion(addr), "retry").Inc()
		},
		DroppedPacket: func(addr net.Addr, reason quicgate.DropReason) {
			packetDropped.WithLabelValues(getIPVersion(addr), reason.String()).Inc()
		},
		AcceptedConnection: func(addr net.Addr) {
			connsAccepted.WithLabelValues(getIPVersion(addr)).Inc()
		},
	}
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ScannerMetrics records scan session activity.
type ScannerMetrics struct {
	scanDelay *prometheus.HistogramVec
	scans     *prometheus.CounterVec
	sessions  *prometheus.CounterVec
}

// NewScannerMetrics registers the scanner metrics on the provided registerer.
func NewScannerMetrics(reg prometheus.Registerer) *ScannerMetrics {
	if reg == nil {
		return &ScannerMetrics{}
	}
	scanDelay := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scanner_scan_delay_seconds",
		Help:    "Simulated delay before a scan lands.",
		Buckets: []float64{0.5, 1, 1.5, 2, 2.5, 3, 4},
	}, []string{"mode"})
	scans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scanner_scans_total",
		Help: "Barcode scans, by outcome.",
	}, []string{"outcome"})
	sessions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scanner_sessions_total",
		Help: "Scan sessions, by terminal state.",
	}, []string{"state"})
	reg.MustRegister(scanDelay, scans, sessions)
	return &ScannerMetrics{scanDelay: scanDelay, scans: scans, sessions: sessions}
}

// ObserveScanDelay records how long a simulated scan waited.
func (s *ScannerMetrics) ObserveScanDelay(mode string, delay time.Duration) {
	if s == nil || s.scanDelay == nil {
		return
	}
	s.scanDelay.WithLabelValues(normalizeLabel(mode)).Observe(delay.Seconds())
}

// IncScan counts one scan with the given outcome.
func (s *ScannerMetrics) IncScan(outcome string) {
	if s == nil || s.scans == nil {
		return
	}
	s.scans.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncSession counts a session reaching the given terminal state.
func (s *ScannerMetrics) IncSession(state string) {
	if s == nil || s.sessions == nil {
		return
	}
	s.sessions.WithLabelValues(normalizeLabel(state)).Inc()
}

// Package metrics exposes engine activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"affiliate-escrow/internal/core/domain"
)

const namespace = "affiliate_escrow"

// Recorder implements port.Recorder.
type Recorder struct {
	campaignsCreated prometheus.Counter
	linksCreated     prometheus.Counter
	salesSettled     prometheus.Counter
	volume           *prometheus.CounterVec
	salePrice        prometheus.Histogram
	failures         *prometheus.CounterVec
}

// NewRecorder registers the engine metrics with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		campaignsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_created_total",
			Help:      "Number of campaigns created.",
		}),
		linksCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "affiliate_links_created_total",
			Help:      "Number of affiliate links created.",
		}),
		salesSettled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_settled_total",
			Help:      "Number of sales settled.",
		}),
		volume: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settled_volume_total",
			Help:      "Native units paid out by settlements, by recipient.",
		}, []string{"recipient"}),
		salePrice: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sale_price",
			Help:      "Price of settled sales in native units.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 12),
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_failed_total",
			Help:      "Failed engine operations by operation and error code.",
		}, []string{"operation", "code"}),
	}
}

func (r *Recorder) CampaignCreated() {
	r.campaignsCreated.Inc()
}

func (r *Recorder) AffiliateLinkCreated() {
	r.linksCreated.Inc()
}

func (r *Recorder) SaleSettled(s domain.Split) {
	r.salesSettled.Inc()
	r.volume.WithLabelValues("affiliate").Add(float64(s.Commission))
	r.volume.WithLabelValues("seller").Add(float64(s.SellerShare))
	r.salePrice.Observe(float64(s.Price))
}

// OperationFailed counts a failure. Uncoded errors are labelled INTERNAL.
func (r *Recorder) OperationFailed(op string, code domain.Code) {
	if code == "" {
		code = "INTERNAL"
	}
	r.failures.WithLabelValues(op, string(code)).Inc()
}

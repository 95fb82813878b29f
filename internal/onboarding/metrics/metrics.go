package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the onboarding module.
// Tracks submission volume, review outcomes, and image pipeline throughput.
type Metrics struct {
	Submissions      prometheus.Counter
	Approvals        prometheus.Counter
	Rejections       prometheus.Counter
	Deletions        prometheus.Counter
	ImagesProcessed  *prometheus.CounterVec
	PipelineDuration prometheus.Histogram
	ApprovalDuration prometheus.Histogram
}

// New creates a Metrics instance with all onboarding module metrics registered.
func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "innflow_onboarding_submissions_total",
			Help: "Total number of registration requests submitted",
		}),
		Approvals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "innflow_onboarding_approvals_total",
			Help: "Total number of registration requests approved",
		}),
		Rejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "innflow_onboarding_rejections_total",
			Help: "Total number of registration requests rejected",
		}),
		Deletions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "innflow_onboarding_deletions_total",
			Help: "Total number of registration requests deleted",
		}),
		ImagesProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "innflow_onboarding_images_processed_total",
			Help: "Images handled by the ingestion pipeline, by outcome",
		}, []string{"outcome"}),
		PipelineDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "innflow_onboarding_image_pipeline_duration_seconds",
			Help:    "Duration of full image ingestion batches",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		ApprovalDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "innflow_onboarding_approval_duration_seconds",
			Help:    "Duration of approval orchestrations",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementSubmissions records an accepted registration request.
func (m *Metrics) IncrementSubmissions() {
	m.Submissions.Inc()
}

// RecordImages records per-image pipeline outcomes for one batch.
func (m *Metrics) RecordImages(succeeded, failed int) {
	m.ImagesProcessed.WithLabelValues("ok").Add(float64(succeeded))
	m.ImagesProcessed.WithLabelValues("failed").Add(float64(failed))
}

// ObservePipeline records the duration of an image ingestion batch.
// Call with time.Now() at the start of the batch.
func (m *Metrics) ObservePipeline(start time.Time) {
	m.PipelineDuration.Observe(time.Since(start).Seconds())
}

// ObserveApproval records the duration of an approval orchestration.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveApproval(start time.Time) {
	m.ApprovalDuration.Observe(time.Since(start).Seconds())
}

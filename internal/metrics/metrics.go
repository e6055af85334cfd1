package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder holds the domain counters. A nil *Recorder records nothing, so
// components can be built without a registry in tests.
type Recorder struct {
	documentsAdded   prometheus.Counter
	snapshotFailures *prometheus.CounterVec
	uploads          *prometheus.CounterVec
	chatMessages     *prometheus.CounterVec
}

// New creates the domain counters and registers them on reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		documentsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studydesk_documents_added_total",
			Help: "Documents appended to the document store.",
		}),
		snapshotFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "studydesk_snapshot_failures_total",
			Help: "Snapshot load or save operations that failed.",
		}, []string{"op"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "studydesk_uploads_total",
			Help: "Upload jobs by terminal status.",
		}, []string{"status"}),
		chatMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "studydesk_chat_messages_total",
			Help: "Chat messages appended, by sender.",
		}, []string{"sender"}),
	}

	for _, c := range []prometheus.Collector{r.documentsAdded, r.snapshotFailures, r.uploads, r.chatMessages} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) DocumentAdded() {
	if r == nil {
		return
	}
	r.documentsAdded.Inc()
}

// SnapshotFailed counts a failed "load" or "save".
func (r *Recorder) SnapshotFailed(op string) {
	if r == nil {
		return
	}
	r.snapshotFailures.WithLabelValues(op).Inc()
}

func (r *Recorder) UploadFinished(status string) {
	if r == nil {
		return
	}
	r.uploads.WithLabelValues(status).Inc()
}

func (r *Recorder) ChatMessage(sender string) {
	if r == nil {
		return
	}
	r.chatMessages.WithLabelValues(sender).Inc()
}

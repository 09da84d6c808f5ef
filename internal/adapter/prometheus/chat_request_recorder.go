package prometheus

import "context"

type ChatRequestRecorder struct {
	exporter *Exporter
}

func NewChatRequestRecorder(exporter *Exporter) *ChatRequestRecorder {
	return &ChatRequestRecorder{exporter: exporter}
}

func (r *ChatRequestRecorder) Record(_ context.Context, promptBytes int) {
	m := r.exporter.metrics

	m.chatRequestsTotal.Inc()
	m.chatPromptBytes.Observe(float64(promptBytes))
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// TranslationMetrics records provider call outcomes from the pipeline.
type TranslationMetrics struct {
	calls      *prometheus.CounterVec
	characters *prometheus.CounterVec
}

// NewTranslationMetrics registers the translation metrics on the provided registerer.
func NewTranslationMetrics(reg prometheus.Registerer) *TranslationMetrics {
	if reg == nil {
		return &TranslationMetrics{}
	}
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "translation_calls_total",
		Help: "Translation provider calls by target language and result.",
	}, []string{"language", "result"})
	characters := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "translation_characters_total",
		Help: "Characters submitted for translation by target language.",
	}, []string{"language"})
	reg.MustRegister(calls, characters)
	return &TranslationMetrics{
		calls:      calls,
		characters: characters,
	}
}

// ObserveCall records one provider call for the given language.
func (m *TranslationMetrics) ObserveCall(language string, fallback bool, characters int) {
	if m == nil || m.calls == nil {
		return
	}
	result := "translated"
	if fallback {
		result = "fallback"
	}
	m.calls.WithLabelValues(normalizeLabel(language), result).Inc()
	if characters > 0 {
		m.characters.WithLabelValues(normalizeLabel(language)).Add(float64(characters))
	}
}

// OrderMetrics records order lifecycle events.
type OrderMetrics struct {
	created     prometheus.Counter
	transitions *prometheus.CounterVec
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders submitted through the public endpoint.",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_transitions_total",
		Help: "Order status transitions by target status.",
	}, []string{"status"})
	reg.MustRegister(created, transitions)
	return &OrderMetrics{
		created:     created,
		transitions: transitions,
	}
}

// IncCreated increments the created order counter.
func (m *OrderMetrics) IncCreated() {
	if m == nil || m.created == nil {
		return
	}
	m.created.Inc()
}

// IncTransition increments the transition counter for the target status.
func (m *OrderMetrics) IncTransition(status string) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(normalizeLabel(status)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

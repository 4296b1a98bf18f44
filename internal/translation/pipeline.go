package translation

import (
	"context"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/bloomandblossom/florist-backend/pkg/enums"
	"github.com/bloomandblossom/florist-backend/pkg/metrics"
	"github.com/bloomandblossom/florist-backend/pkg/translate"
)

// FieldTranslations maps a source field name to its per-language outputs.
type FieldTranslations map[string]map[enums.Language]string

// Usage describes one provider call made during a run.
type Usage struct {
	Field      string
	Language   enums.Language
	Characters int
	Fallback   bool
}

// Result is the outcome of translating a set of fields. Degraded reports
// whether any call fell back to the deterministic suffix form.
type Result struct {
	Translations FieldTranslations
	Usage        []Usage
	Degraded     bool
}

// Get returns the translation for a field/language pair, or empty string.
func (r Result) Get(field string, lang enums.Language) string {
	if langs, ok := r.Translations[field]; ok {
		return langs[lang]
	}
	return ""
}

// Pipeline fans a set of authored fields out to every target language.
// It is side-effect free: usage persistence is the caller's concern.
type Pipeline struct {
	provider translate.Provider
	metrics  *metrics.TranslationMetrics
}

// NewPipeline constructs a pipeline. Metrics may be nil.
func NewPipeline(provider translate.Provider, m *metrics.TranslationMetrics) (*Pipeline, error) {
	if provider == nil {
		return nil, fmt.Errorf("translate provider required")
	}
	return &Pipeline{provider: provider, metrics: m}, nil
}

// Run translates every non-empty field into each target language. One
// provider call per field/language pair; empty fields are skipped entirely.
func (p *Pipeline) Run(ctx context.Context, fields map[string]string) Result {
	result := Result{Translations: make(FieldTranslations, len(fields))}

	names := make([]string, 0, len(fields))
	for name, text := range fields {
		if text == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		text := fields[name]
		chars := utf8.RuneCountInString(text)
		result.Translations[name] = make(map[enums.Language]string, len(enums.TargetLanguages()))

		for _, lang := range enums.TargetLanguages() {
			translated, fallback := p.provider.Translate(ctx, text, lang)
			result.Translations[name][lang] = translated
			result.Usage = append(result.Usage, Usage{
				Field:      name,
				Language:   lang,
				Characters: chars,
				Fallback:   fallback,
			})
			if fallback {
				result.Degraded = true
			}
			p.metrics.ObserveCall(lang.String(), fallback, chars)
		}
	}

	return result
}

package translation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomandblossom/florist-backend/pkg/enums"
	"github.com/bloomandblossom/florist-backend/pkg/translate"
)

type stubProvider struct {
	calls    int
	failLang enums.Language
}

func (s *stubProvider) Translate(ctx context.Context, text string, lang enums.Language) (string, bool) {
	s.calls++
	if lang == s.failLang {
		return translate.Fallback(text, lang), true
	}
	return text + " [" + lang.String() + "]", false
}

func TestPipelineTranslatesEveryFieldAndLanguage(t *testing.T) {
	provider := &stubProvider{}
	pipeline, err := NewPipeline(provider, nil)
	require.NoError(t, err)

	result := pipeline.Run(context.Background(), map[string]string{
		"name":        "Gül",
		"description": "Kırmızı gül buketi",
	})

	assert.Equal(t, 6, provider.calls)
	assert.False(t, result.Degraded)
	assert.Equal(t, "Gül [en]", result.Get("name", enums.LanguageEnglish))
	assert.Equal(t, "Gül [az]", result.Get("name", enums.LanguageAzerbaijani))
	assert.Equal(t, "Kırmızı gül buketi [ru]", result.Get("description", enums.LanguageRussian))

	assert.Len(t, result.Usage, 6)
	for _, usage := range result.Usage {
		assert.False(t, usage.Fallback)
		assert.Positive(t, usage.Characters)
	}
}

func TestPipelineSkipsEmptyFields(t *testing.T) {
	provider := &stubProvider{}
	pipeline, err := NewPipeline(provider, nil)
	require.NoError(t, err)

	result := pipeline.Run(context.Background(), map[string]string{
		"name":              "Orkide",
		"care_instructions": "",
	})

	assert.Equal(t, 3, provider.calls)
	assert.Empty(t, result.Get("care_instructions", enums.LanguageEnglish))
	assert.Len(t, result.Usage, 3)
}

func TestPipelineReportsDegradedRuns(t *testing.T) {
	provider := &stubProvider{failLang: enums.LanguageRussian}
	pipeline, err := NewPipeline(provider, nil)
	require.NoError(t, err)

	result := pipeline.Run(context.Background(), map[string]string{"name": "Kaktüs"})

	assert.True(t, result.Degraded)
	assert.Equal(t, "Kaktüs (RU)", result.Get("name", enums.LanguageRussian))

	fallbacks := 0
	for _, usage := range result.Usage {
		if usage.Fallback {
			fallbacks++
		}
	}
	assert.Equal(t, 1, fallbacks)
}

func TestNewPipelineRequiresProvider(t *testing.T) {
	_, err := NewPipeline(nil, nil)
	assert.Error(t, err)
}

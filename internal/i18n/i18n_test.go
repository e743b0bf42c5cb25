package i18n

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("returns a bundle for every supported language", func(t *testing.T) {
		for _, lang := range []Language{English, German, French} {
			tr := Lookup(lang)
			require.NotNil(t, tr, "language %s", lang)
			assert.NotEmpty(t, tr.Title)
			assert.Len(t, tr.StepsNav, 4)
		}
	})

	t.Run("returns nil for an unknown language", func(t *testing.T) {
		assert.Nil(t, Lookup("it"))
	})

	t.Run("bundles differ per language", func(t *testing.T) {
		assert.Equal(t, "Request Proposal", Lookup(English).Title)
		assert.Equal(t, "Angebot anfordern", Lookup(German).Title)
		assert.Equal(t, "Demander une Offre", Lookup(French).Title)
	})
}

func TestLanguageIsValid(t *testing.T) {
	assert.True(t, Language("en").IsValid())
	assert.True(t, Language("de").IsValid())
	assert.True(t, Language("fr").IsValid())
	assert.False(t, Language("es").IsValid())
	assert.False(t, Language("").IsValid())
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Language
	}{
		{"empty header falls back to english", "", English},
		{"exact german", "de", German},
		{"swiss german maps to german", "de-CH", German},
		{"french with region", "fr-FR", French},
		{"quality ordering wins", "fr;q=0.8, de;q=0.9", German},
		{"unsupported language falls back", "it-IT", English},
		{"unsupported then supported", "it, fr;q=0.7", French},
		{"garbage header falls back", ";;;", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.header))
		})
	}
}

func TestTranslationJSONShape(t *testing.T) {
	raw, err := json.Marshal(Lookup(English))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	for _, key := range []string{"subtitle", "title", "steps_nav", "buttons", "step1", "step2", "step3", "step4"} {
		assert.Contains(t, doc, key)
	}

	step2, ok := doc["step2"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "External Lift Needed", step2["lift_needed"])
	assert.Equal(t, "Street (> 20m)", step2["parking_far"])
}

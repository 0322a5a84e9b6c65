package rubric

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aihelper/screening-backend/internal/entity"
)

func TestDefaultStoreCoversAllSubscales(t *testing.T) {
	s := Default()

	want := map[entity.Category][]string{
		entity.CategoryCDI: {
			"academic_achievement", "sleep_problems", "crying", "fatigue",
			"friendship", "social_interaction", "adult_interaction",
			"loneliness", "depression", "concentration", "appetite",
		},
		entity.CategoryRCMAS: {
			"anxiety", "anger", "physical_symptoms", "social_anxiety",
			"self_esteem", "worry", "family_relationship", "stress", "mood_swings",
		},
		entity.CategoryBDI: {
			"sleep_pattern", "weight_change", "appearance",
			"self_harm", "suicidal_thoughts",
		},
	}

	total := 0
	for c, subs := range want {
		for _, sub := range subs {
			r, ok := s.Get(c, sub)
			require.True(t, ok, "missing rubric %s/%s", c, sub)
			assert.NotEmpty(t, r.Tiers[entity.TierPositive])
			assert.NotEmpty(t, r.Tiers[entity.TierNegative])
			total++
		}
	}
	assert.Equal(t, total, s.Len())
}

func TestBinaryRubricsHaveNoModerateTier(t *testing.T) {
	s := Default()

	for _, sub := range []string{"anxiety", "anger", "physical_symptoms", "social_anxiety"} {
		r, ok := s.Get(entity.CategoryRCMAS, sub)
		require.True(t, ok)
		assert.Empty(t, r.Tiers[entity.TierModerate], "rcmas/%s should be binary", sub)
		assert.Equal(t, []entity.Tier{entity.TierPositive, entity.TierNegative}, r.TierOrder())
	}
}

func TestGetMissesAreNotErrors(t *testing.T) {
	s := Default()

	_, ok := s.Get(entity.CategoryCDI, "unknown_subscale")
	assert.False(t, ok)
	_, ok = s.Get(entity.Category("phq9"), "depression")
	assert.False(t, ok)
}

func TestNewStoreValidation(t *testing.T) {
	_, err := NewStore([]entity.Rubric{{
		Category:    entity.Category("phq9"),
		Subcategory: "depression",
		Tiers:       map[entity.Tier][]string{entity.TierPositive: {"괜찮다"}},
	}})
	assert.Error(t, err)

	_, err = NewStore([]entity.Rubric{{
		Category: entity.CategoryCDI,
		Tiers:    map[entity.Tier][]string{entity.TierPositive: {"괜찮다"}},
	}})
	assert.ErrorIs(t, err, entity.ErrMissingField)

	_, err = NewStore([]entity.Rubric{{
		Category:    entity.CategoryCDI,
		Subcategory: "depression",
	}})
	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubrics.json")
	data := `[
		{
			"category": "cdi",
			"subcategory": "depression",
			"tiers": {"positive": ["밝다"], "negative": ["어둡다"]}
		},
		{
			"category": "bdi",
			"subcategory": "guilt",
			"tiers": {"positive": ["괜찮다"], "moderate": ["가끔"], "negative": ["항상 미안하다"]}
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	// Override replaces the built-in rubric.
	r, ok := s.Get(entity.CategoryCDI, "depression")
	require.True(t, ok)
	assert.Equal(t, []string{"밝다"}, r.Tiers[entity.TierPositive])
	assert.Empty(t, r.Tiers[entity.TierModerate])

	// New subscale is added on top of the defaults.
	_, ok = s.Get(entity.CategoryBDI, "guilt")
	assert.True(t, ok)
	assert.Equal(t, Default().Len()+1, s.Len())
}

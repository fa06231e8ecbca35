package dailytips

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitalink/wellness-backend/internal/domain/vitals"
)

func TestFallbackForKnownRiskLevels(t *testing.T) {
	for _, risk := range []vitals.RiskLevel{vitals.RiskLow, vitals.RiskModerate, vitals.RiskHigh} {
		tips := FallbackFor(risk)
		require.NotEmpty(t, tips, "risk %s", risk)
		for category, list := range tips {
			require.LessOrEqual(t, len(list), MaxTipsPerCategory)
			for _, tip := range list {
				require.Equal(t, category, tip.Category)
				require.NotEmpty(t, tip.Title)
				require.NotEmpty(t, tip.ShortDescription)
				require.NotEmpty(t, tip.LongDescription)
			}
		}
	}
}

func TestFallbackForCoversAllCategories(t *testing.T) {
	tips := FallbackFor(vitals.RiskHigh)
	for _, category := range []string{CategoryDiet, CategoryExercise, CategorySleep, CategoryStress} {
		require.NotEmpty(t, tips[category], "category %s", category)
	}
}

func TestFallbackForUnknownRisk(t *testing.T) {
	require.Empty(t, FallbackFor(""))
	require.Empty(t, FallbackFor("CRITICAL"))
}

func TestByRiskLevelReturnsCopy(t *testing.T) {
	first := ByRiskLevel(vitals.RiskLow)
	require.NotEmpty(t, first)
	first[0].Title = "mutated"
	second := ByRiskLevel(vitals.RiskLow)
	require.NotEqual(t, "mutated", second[0].Title)
}

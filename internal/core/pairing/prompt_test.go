package pairing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPromptDeterministic(t *testing.T) {
	first := BuildPrompt("삼겹살", FoodToDrink)
	second := BuildPrompt("삼겹살", FoodToDrink)
	require.Equal(t, first, second)
}

func TestBuildPromptDrinkDirection(t *testing.T) {
	prompt := BuildPrompt("삼겹살", FoodToDrink)

	require.Contains(t, prompt, "선택한 요리: 삼겹살")
	require.Contains(t, prompt, "입력하신 값은 음식이 아닙니다.")
	require.Contains(t, prompt, "A+, A, A-, B+, B")
	require.Contains(t, prompt, "rank, category, name, grade, emoji, explanation, imagePlaceholder")
	// the drink catalog is embedded as "category | name" lines
	require.Contains(t, prompt, "맥주 | IPA")
	require.Contains(t, prompt, "위스키")
}

func TestBuildPromptFoodDirection(t *testing.T) {
	prompt := BuildPrompt("소주", DrinkToFood)

	require.Contains(t, prompt, "선택한 술: 소주")
	require.Contains(t, prompt, "입력하신 값은 술이 아닙니다.")
	require.Contains(t, prompt, "구이 | 삼겹살")
	require.NotContains(t, prompt, "선택한 요리:")
}

func TestBuildPromptDirectionsDiffer(t *testing.T) {
	drink := BuildPrompt("떡볶이", FoodToDrink)
	food := BuildPrompt("떡볶이", DrinkToFood)
	require.NotEqual(t, drink, food)

	// only the drink prompt carries the wine/whiskey tie-break rule
	require.Contains(t, drink, "와인이나 위스키 카테고리를 우선")
	require.NotContains(t, food, "와인이나 위스키 카테고리를 우선")
}

func TestCatalogFormat(t *testing.T) {
	formatted := formatCatalog(drinkCatalog)
	lines := strings.Split(formatted, "\n")
	require.Equal(t, len(drinkCatalog), len(lines))
	for _, line := range lines {
		require.Contains(t, line, " | ")
	}
}

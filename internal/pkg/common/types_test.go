package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionTag(t *testing.T) {
	require.Equal(t, "drink", FoodToDrink.Tag())
	require.Equal(t, "food", DrinkToFood.Tag())
}

func TestDirectionValid(t *testing.T) {
	require.True(t, FoodToDrink.Valid())
	require.True(t, DrinkToFood.Valid())
	require.False(t, Direction("").Valid())
	require.False(t, Direction("sideways").Valid())
}

func TestValidGrade(t *testing.T) {
	for _, g := range Grades {
		require.True(t, ValidGrade(g), g)
	}
	require.False(t, ValidGrade("S"))
	require.False(t, ValidGrade("a+"))
	require.False(t, ValidGrade(""))
}

func TestNormalizeSubject(t *testing.T) {
	require.Equal(t, "삼겹살", NormalizeSubject("  삼겹살 "))
	require.Equal(t, "ipa", NormalizeSubject("IPA"))
	require.Equal(t, "", NormalizeSubject("   "))
}

func TestAsValidationError(t *testing.T) {
	ve, ok := AsValidationError(NewValidationError("입력하신 값은 음식이 아닙니다."))
	require.True(t, ok)
	require.Equal(t, "입력하신 값은 음식이 아닙니다.", ve.Message)

	_, ok = AsValidationError(ErrInvalidSubject)
	require.False(t, ok)
}

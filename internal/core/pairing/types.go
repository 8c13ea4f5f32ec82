package pairing

import (
	"pairing-generator/internal/pkg/common"
)

// Direction selects the pairing being requested.
type Direction = common.Direction

const (
	// FoodToDrink recommends drinks for a food subject.
	FoodToDrink = common.FoodToDrink
	// DrinkToFood recommends foods for a drink subject.
	DrinkToFood = common.DrinkToFood
)

// Recommendation is one ranked pairing suggestion.
type Recommendation = common.Recommendation

// ValidationError signals the subject is not valid for the direction.
type ValidationError = common.ValidationError

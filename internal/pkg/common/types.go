package common

import "strings"

// Direction selects which pairing is requested: drinks for a food, or
// foods for a drink.
type Direction string

const (
	// FoodToDrink asks for drinks that pair with a food subject.
	FoodToDrink Direction = "food_to_drink"
	// DrinkToFood asks for foods that pair with a drink subject.
	DrinkToFood Direction = "drink_to_food"
)

// Tag names the recommended side of the pairing, used as the cache key
// namespace so drink-for-X and food-for-X never collide.
func (d Direction) Tag() string {
	if d == DrinkToFood {
		return "food"
	}
	return "drink"
}

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == FoodToDrink || d == DrinkToFood
}

// Recommendation is one ranked pairing suggestion produced by the model.
// Field names follow the JSON contract the prompt dictates.
type Recommendation struct {
	Rank             int    `json:"rank"`
	Category         string `json:"category"`
	Name             string `json:"name"`
	Grade            string `json:"grade"`
	Emoji            string `json:"emoji"`
	Explanation      string `json:"explanation"`
	ImagePlaceholder string `json:"imagePlaceholder"`
}

// RecommendationCount is the exact number of items a successful response
// carries. A response is either this many items or a single error record,
// never anything in between.
const RecommendationCount = 3

// Grades the model may assign, ordered from most to least desirable.
var Grades = []string{"A+", "A", "A-", "B+", "B"}

var gradeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Grades))
	for _, g := range Grades {
		set[g] = struct{}{}
	}
	return set
}()

// ValidGrade reports whether g belongs to the fixed grade scale.
func ValidGrade(g string) bool {
	_, ok := gradeSet[g]
	return ok
}

// NormalizeSubject canonicalizes a user-entered subject for cache keying:
// surrounding whitespace and letter case must not produce distinct entries.
func NormalizeSubject(subject string) string {
	return strings.ToLower(strings.TrimSpace(subject))
}

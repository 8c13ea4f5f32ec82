package pairing

import (
	"fmt"

	"pairing-generator/internal/pkg/common"
)

// BuildPrompt assembles the instruction string for one resolution. Pure and
// deterministic: the same subject and direction always produce the same
// prompt, so cached responses stay comparable. Any randomness in item
// selection is up to the model, not the builder.
func BuildPrompt(subject string, direction common.Direction) string {
	if direction == DrinkToFood {
		return buildFoodPrompt(subject)
	}
	return buildDrinkPrompt(subject)
}

// buildDrinkPrompt asks for 3 drinks that pair with a food subject.
func buildDrinkPrompt(foodItem string) string {
	return fmt.Sprintf(`다음은 한국 요리에 어울리는 술 페어링 추천 요청입니다. 한국 문화를 이해하고, 맛 조합에 대한 감각이 있는 전문가처럼 행동해주세요.
사용자가 고른 음식에 대해 아래 조건을 지켜서 술 3가지를 추천해주세요.

선택한 요리: %s

조건:

1. 모든 대답은 **한국어**로 작성해주세요.
2. 아래의 **술 목록을 최우선 기준으로 참고**하여 추천해주세요.
   - 반드시 목록 내에서만 선택할 필요는 없지만, **가능한 한 목록 안에서 추천**해주세요.
   - 목록 밖의 술을 사용할 경우에는, 왜 그 술이 더 적절한지 간단히 설명해주세요.
   - 매번 같은 술만 추천하지 말고, 카테고리가 겹치지 않도록 다양하게 추천해주세요.
3. 추천하는 술 3가지는 rank, category, name, grade, emoji, explanation, imagePlaceholder 키를 가진 JSON 객체 3개로 작성하고, 하나의 JSON 배열로만 출력해주세요.
4. rank는 1, 2, 3을 각각 한 번씩 사용하고, 배열은 rank 오름차순으로 정렬해주세요.
5. 등급(grade)은 A+, A, A-, B+, B 중에서 하나를 선택해주세요.
6. 여러 후보의 어울림이 비슷하다면 와인이나 위스키 카테고리를 우선해주세요. 단, 그 이유로 등급을 올리지는 마세요.
7. 각 술의 설명(explanation)은 **2~3문장**으로, 해당 요리와의 어울림 이유를 **친근하고 재밌는 톤**으로 적어주세요.
   - 예: "매콤한 돼지갈비라면, 홉의 쌉쌀함이 기름기를 잡아주고 괜찮은 조합이 될 수 있어요."
8. 입력값이 음식이 아니라고 판단되면 (사소한 오타는 음식으로 너그럽게 인정해주세요), 추천 대신 아래 형태의 객체 1개만 담은 JSON 배열을 출력해주세요.
   [{"error": true, "message": "입력하신 값은 음식이 아닙니다."}]
9. 최종 결과는 **JSON 배열만 출력**해주세요. 추가 설명이나 마크다운 없이 JSON만 출력해주세요.

성공 응답의 객체 예시 (내용은 직접 작성해주세요):

{
  "rank": 1,
  "category": "맥주",
  "name": "IPA",
  "grade": "A+",
  "emoji": "🍺",
  "explanation": "돼지갈비의 단짠 양념이 IPA의 홉 쌉싸름함과 잘 어울려요. 탄산감이 기름기를 정리해줘서 깔끔하게 즐길 수 있어요.",
  "imagePlaceholder": "🍺"
}

참고 술 목록 (카테고리 | 이름):

%s

**이제 JSON 배열로만 응답해주세요.**`, foodItem, formatCatalog(drinkCatalog))
}

// buildFoodPrompt asks for 3 foods that pair with a drink subject.
func buildFoodPrompt(drinkItem string) string {
	return fmt.Sprintf(`다음은 술에 어울리는 안주/음식 페어링 추천 요청입니다. 한국 문화를 이해하고, 맛 조합에 대한 감각이 있는 전문가처럼 행동해주세요.
사용자가 고른 술에 대해 아래 조건을 지켜서 음식 3가지를 추천해주세요.

선택한 술: %s

조건:

1. 모든 대답은 **한국어**로 작성해주세요.
2. 아래의 **음식 목록을 최우선 기준으로 참고**하여 추천해주세요.
   - 반드시 목록 내에서만 선택할 필요는 없지만, **가능한 한 목록 안에서 추천**해주세요.
   - 목록 밖의 음식을 사용할 경우에는, 왜 그 음식이 더 적절한지 간단히 설명해주세요.
   - 매번 같은 음식만 추천하지 말고, 카테고리가 겹치지 않도록 다양하게 추천해주세요.
3. 추천하는 음식 3가지는 rank, category, name, grade, emoji, explanation, imagePlaceholder 키를 가진 JSON 객체 3개로 작성하고, 하나의 JSON 배열로만 출력해주세요.
4. rank는 1, 2, 3을 각각 한 번씩 사용하고, 배열은 rank 오름차순으로 정렬해주세요.
5. 등급(grade)은 A+, A, A-, B+, B 중에서 하나를 선택해주세요.
6. 각 음식의 설명(explanation)은 **2~3문장**으로, 해당 술과의 어울림 이유를 **친근하고 재밌는 톤**으로 적어주세요.
   - 예: "피트 위스키라면, 훈연향이 홍어삼합의 강한 풍미와 정면승부를 벌이는 재밌는 조합이에요."
7. 입력값이 술(알코올 음료)이 아니라고 판단되면 (사소한 오타는 술로 너그럽게 인정해주세요), 추천 대신 아래 형태의 객체 1개만 담은 JSON 배열을 출력해주세요.
   [{"error": true, "message": "입력하신 값은 술이 아닙니다."}]
8. 최종 결과는 **JSON 배열만 출력**해주세요. 추가 설명이나 마크다운 없이 JSON만 출력해주세요.

성공 응답의 객체 예시 (내용은 직접 작성해주세요):

{
  "rank": 1,
  "category": "구이",
  "name": "삼겹살",
  "grade": "A+",
  "emoji": "🥓",
  "explanation": "소주의 깔끔한 맛이 삼겹살의 고소한 기름기를 씻어내 줘요. 한 점 먹고 한 잔 마시면 멈출 수 없는 조합이에요.",
  "imagePlaceholder": "🥓"
}

참고 음식 목록 (카테고리 | 이름):

%s

**이제 JSON 배열로만 응답해주세요.**`, drinkItem, formatCatalog(foodCatalog))
}

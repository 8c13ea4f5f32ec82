package pairing

import "strings"

// catalogItem is one category|name pair from the reference catalogs the
// prompts embed. The catalogs bias the model toward a known-good menu
// without forbidding answers outside of them.
type catalogItem struct {
	Category string
	Name     string
}

// drinkCatalog is the drink reference list for food→drink prompts.
var drinkCatalog = []catalogItem{
	{"레드 와인", "피노 누아"},
	{"레드 와인", "쉬라즈"},
	{"레드 와인", "카베르네 소비뇽"},
	{"레드 와인", "메를로"},
	{"레드 와인", "진판델"},
	{"레드 와인", "말벡"},
	{"화이트 와인", "소비뇽 블랑"},
	{"화이트 와인", "샤르도네"},
	{"화이트 와인", "리슬링"},
	{"화이트 와인", "피노 그리"},
	{"로제 와인", "드라이 로제"},
	{"로제 와인", "스파클링 로제"},
	{"스파클링 와인", "프로세코"},
	{"스파클링 와인", "샴페인"},
	{"스파클링 와인", "카바"},
	{"스파클링 와인", "모스카토 다스티"},
	{"막걸리", "탄산감 있는 막걸리"},
	{"막걸리", "전통 생막걸리"},
	{"막걸리", "달콤한 막걸리"},
	{"소주", "소주"},
	{"소주", "과일 소주"},
	{"소주", "증류식 소주"},
	{"맥주", "IPA"},
	{"맥주", "라거"},
	{"맥주", "필스너"},
	{"맥주", "스타우트"},
	{"맥주", "페일 에일"},
	{"맥주", "바이젠 (밀맥주)"},
	{"맥주", "흑맥주"},
	{"사케", "달콤한 사케"},
	{"사케", "드라이한 사케"},
	{"사케", "감칠맛 사케"},
	{"위스키", "버번"},
	{"위스키", "쉐리"},
	{"위스키", "피트"},
	{"위스키", "저연산 부드러운 위스키"},
	{"기타", "고량주"},
	{"기타", "우메슈"},
	{"기타", "매실주"},
	{"기타", "청하"},
}

// foodCatalog is the food reference list for drink→food prompts.
var foodCatalog = []catalogItem{
	{"구이", "삼겹살"},
	{"구이", "소갈비"},
	{"구이", "불고기"},
	{"구이", "닭갈비"},
	{"구이", "돼지갈비"},
	{"구이", "스테이크"},
	{"구이", "항정살"},
	{"구이", "곱창구이"},
	{"구이", "막창구이"},
	{"찌개/탕", "김치찌개"},
	{"찌개/탕", "된장찌개"},
	{"찌개/탕", "순두부찌개"},
	{"찌개/탕", "감자탕"},
	{"찌개/탕", "부대찌개"},
	{"찌개/탕", "갈비탕"},
	{"찌개/탕", "육개장"},
	{"밥류", "비빔밥"},
	{"밥류", "김치볶음밥"},
	{"밥류", "제육덮밥"},
	{"밥류", "알밥"},
	{"면류", "냉면"},
	{"면류", "칼국수"},
	{"면류", "라면"},
	{"면류", "우동"},
	{"면류", "비빔국수"},
	{"중식", "짜장면"},
	{"중식", "짬뽕"},
	{"중식", "탕수육"},
	{"중식", "깐풍기"},
	{"중식", "마라탕"},
	{"분식", "떡볶이"},
	{"분식", "김밥"},
	{"분식", "순대"},
	{"분식", "튀김"},
	{"분식", "오뎅"},
	{"전", "김치전"},
	{"전", "파전"},
	{"전", "해물파전"},
	{"전", "감자전"},
	{"해산물", "회"},
	{"해산물", "초밥"},
	{"해산물", "문어숙회"},
	{"해산물", "낙지볶음"},
	{"해산물", "조개구이"},
	{"치킨/튀김", "후라이드 치킨"},
	{"치킨/튀김", "양념 치킨"},
	{"치킨/튀김", "간장 치킨"},
	{"치킨/튀김", "닭강정"},
	{"수육/족발", "족발"},
	{"수육/족발", "보쌈"},
	{"수육/족발", "편육"},
	{"양식", "까르보나라"},
	{"양식", "토마토 파스타"},
	{"양식", "마르게리타 피자"},
	{"양식", "치즈버거"},
	{"안주", "골뱅이무침"},
	{"안주", "육회"},
	{"안주", "홍어삼합"},
	{"안주", "계란말이"},
	{"안주", "잡채"},
	{"안주", "만두"},
}

// formatCatalog renders a catalog as "category | name" lines for prompts.
func formatCatalog(items []catalogItem) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(item.Category)
		b.WriteString(" | ")
		b.WriteString(item.Name)
	}
	return b.String()
}

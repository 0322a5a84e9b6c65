package plan

import "github.com/aihelper/screening-backend/internal/entity"

// Default is the canonical short battery: one question per instrument.
func Default() *Plan {
	p, _ := New("default", []entity.QuestionDefinition{
		{Index: 0, Prompt: "안녕! 오늘 기분은 어때? 몇 가지 질문으로 이야기해볼까?"},
		{Index: 1, Prompt: "요즘 우울하거나 슬픈 기분이 자주 들어?", Category: entity.CategoryCDI, Subcategory: "depression"},
		{Index: 2, Prompt: "새로운 상황에 들어갈 때 얼마나 긴장돼?", Category: entity.CategoryRCMAS, Subcategory: "anxiety"},
		{Index: 3, Prompt: "요즘 잠은 잘 자? 잠자리는 어때?", Category: entity.CategoryBDI, Subcategory: "sleep_pattern"},
		{Index: 4, Prompt: "이야기해줘서 고마워. 오늘 대화로 느낀 점들을 정리해줄게."},
	})
	return p
}

// Extended is the full 19-question battery covering every instrument
// subscale.
func Extended() *Plan {
	p, _ := New("extended", []entity.QuestionDefinition{
		{Index: 0, Prompt: "안녕! 오늘 기분은 어때? 몇 가지 질문으로 이야기해볼까?"},
		{Index: 1, Prompt: "야, 요즘 공부는 어때? 어떤 기분이야?", Category: entity.CategoryCDI, Subcategory: "academic_achievement"},
		{Index: 2, Prompt: "친구들이나 다른 애들이랑 있을 때 어떤 느낌이야?", Category: entity.CategoryCDI, Subcategory: "social_interaction"},
		{Index: 3, Prompt: "요즘 잠은 잘 자? 잠자리는 어때?", Category: entity.CategoryCDI, Subcategory: "sleep_problems"},
		{Index: 4, Prompt: "학교에서 선생님이나 어른들과 이야기할 때는 어때?", Category: entity.CategoryCDI, Subcategory: "adult_interaction"},
		{Index: 5, Prompt: "혼자 있을 때 어떤 기분이야? 외롭지 않아?", Category: entity.CategoryCDI, Subcategory: "loneliness"},
		{Index: 6, Prompt: "요즘 우울하거나 슬픈 기분이 자주 들어?", Category: entity.CategoryCDI, Subcategory: "depression"},
		{Index: 7, Prompt: "친구들과 놀 때 재미있어? 아니면 힘들어?", Category: entity.CategoryCDI, Subcategory: "friendship"},
		{Index: 8, Prompt: "공부할 때 집중이 잘 돼? 아니면 어려워?", Category: entity.CategoryCDI, Subcategory: "concentration"},
		{Index: 9, Prompt: "요즘 많이 울어? 눈물이 자주 나와?", Category: entity.CategoryCDI, Subcategory: "crying"},
		{Index: 10, Prompt: "밥은 잘 먹어? 식욕은 어때?", Category: entity.CategoryCDI, Subcategory: "appetite"},
		{Index: 11, Prompt: "몸이 피곤하거나 아픈 곳 있어?", Category: entity.CategoryCDI, Subcategory: "fatigue"},
		{Index: 12, Prompt: "새로운 상황에 들어갈 때 얼마나 긴장돼?", Category: entity.CategoryRCMAS, Subcategory: "anxiety"},
		{Index: 13, Prompt: "다른 애들보다 못한다고 생각한 적 있어?", Category: entity.CategoryRCMAS, Subcategory: "self_esteem"},
		{Index: 14, Prompt: "실패할까봐 걱정되거나 불안한 적 많아?", Category: entity.CategoryRCMAS, Subcategory: "worry"},
		{Index: 15, Prompt: "가족들과는 잘 지내? 집에서는 편해?", Category: entity.CategoryRCMAS, Subcategory: "family_relationship"},
		{Index: 16, Prompt: "요즘 스트레스 받는 일이 많아?", Category: entity.CategoryRCMAS, Subcategory: "stress"},
		{Index: 17, Prompt: "기분이 자주 바뀌는 편이야? 갑자기 화가 나기도 해?", Category: entity.CategoryRCMAS, Subcategory: "mood_swings"},
		{Index: 18, Prompt: "혹시 스스로를 다치게 하고 싶다는 생각을 한 적 있어?", Category: entity.CategoryBDI, Subcategory: "self_harm"},
		{Index: 19, Prompt: "살기 싫다거나 사라지고 싶다는 생각을 해본 적 있어?", Category: entity.CategoryBDI, Subcategory: "suicidal_thoughts"},
		{Index: 20, Prompt: "이야기해줘서 고마워. 오늘 대화로 느낀 점들을 정리해줄게."},
	})
	return p
}

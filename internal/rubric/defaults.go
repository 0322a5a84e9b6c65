package rubric

import "github.com/aihelper/screening-backend/internal/entity"

func threeTier(c entity.Category, sub string, positive, moderate, negative []string) entity.Rubric {
	return entity.Rubric{
		Category:    c,
		Subcategory: sub,
		Tiers: map[entity.Tier][]string{
			entity.TierPositive: positive,
			entity.TierModerate: moderate,
			entity.TierNegative: negative,
		},
	}
}

func binary(c entity.Category, sub string, positive, negative []string) entity.Rubric {
	return entity.Rubric{
		Category:    c,
		Subcategory: sub,
		Tiers: map[entity.Tier][]string{
			entity.TierPositive: positive,
			entity.TierNegative: negative,
		},
	}
}

// defaultRubrics returns the built-in evaluation criteria for all
// three instruments.
func defaultRubrics() []entity.Rubric {
	return []entity.Rubric{
		threeTier(entity.CategoryCDI, "academic_achievement",
			[]string{"어렵지 않다", "쉽다", "잘하다", "괜찮다", "문제없다", "좋다", "재미있다", "성공하다"},
			[]string{"노력하다", "어렵다", "힘들다", "조금 어렵다", "보통이다", "그럭저럭이다"},
			[]string{"매우 어렵다", "전혀 못하다", "포기하다", "실패하다", "나쁘다", "싫다", "지겹다"}),
		threeTier(entity.CategoryCDI, "sleep_problems",
			[]string{"잘 잔다", "편안하다", "문제없다", "좋다", "괜찮다"},
			[]string{"가끔 어렵다", "보통이다", "조금 어렵다", "힘들다"},
			[]string{"매우 어렵다", "전혀 못한다", "불면증", "잠들기 어렵다", "자주 깬다"}),
		threeTier(entity.CategoryCDI, "crying",
			[]string{"울지 않는다", "평소와 같다", "문제없다", "괜찮다"},
			[]string{"가끔 운다", "조금 더 운다", "보통이다"},
			[]string{"자주 운다", "항상 운다", "울고 싶다", "눈물이 난다"}),
		threeTier(entity.CategoryCDI, "fatigue",
			[]string{"피곤하지 않다", "활력있다", "에너지가 있다", "괜찮다"},
			[]string{"가끔 피곤하다", "보통이다", "조금 피곤하다"},
			[]string{"항상 피곤하다", "매우 피곤하다", "기력이 없다", "무기력하다"}),
		threeTier(entity.CategoryCDI, "friendship",
			[]string{"친구가 많다", "사람들과 잘 지낸다", "인기가 있다", "좋다"},
			[]string{"친구가 조금 있다", "보통이다", "적당하다"},
			[]string{"친구가 없다", "외롭다", "사람들과 어렵다", "고립감"}),
		threeTier(entity.CategoryCDI, "social_interaction",
			[]string{"잘 지낸다", "편하다", "재미있다", "좋다"},
			[]string{"보통이다", "그럭저럭이다", "가끔 어렵다"},
			[]string{"어렵다", "힘들다", "불편하다", "싫다"}),
		threeTier(entity.CategoryCDI, "adult_interaction",
			[]string{"편하다", "좋다", "괜찮다", "이해해준다"},
			[]string{"보통이다", "그럭저럭이다", "가끔 어렵다"},
			[]string{"어렵다", "힘들다", "무서워", "싫다"}),
		threeTier(entity.CategoryCDI, "loneliness",
			[]string{"외롭지 않다", "괜찮다", "편하다", "좋다"},
			[]string{"가끔 외롭다", "보통이다", "그럭저럭이다"},
			[]string{"매우 외롭다", "항상 외롭다", "고독하다", "쓸쓸하다"}),
		threeTier(entity.CategoryCDI, "depression",
			[]string{"우울하지 않다", "기분 좋다", "괜찮다", "밝다"},
			[]string{"가끔 우울하다", "보통이다", "그럭저럭이다"},
			[]string{"매우 우울하다", "항상 슬프다", "절망적이다", "어둡다"}),
		threeTier(entity.CategoryCDI, "concentration",
			[]string{"잘 집중한다", "문제없다", "좋다", "괜찮다"},
			[]string{"가끔 어렵다", "보통이다", "그럭저럭이다"},
			[]string{"전혀 집중 못한다", "매우 어렵다", "산만하다", "힘들다"}),
		threeTier(entity.CategoryCDI, "appetite",
			[]string{"잘 먹는다", "맛있다", "좋다", "괜찮다"},
			[]string{"보통이다", "그럭저럭이다", "가끔 안 먹는다"},
			[]string{"전혀 안 먹는다", "맛없다", "싫다", "토할 것 같다"}),

		binary(entity.CategoryRCMAS, "anxiety",
			[]string{"걱정하지 않는다", "평온하다", "안정적이다", "괜찮다"},
			[]string{"걱정이 많다", "불안하다", "초조하다", "긴장된다", "두렵다"}),
		binary(entity.CategoryRCMAS, "anger",
			[]string{"화를 내지 않는다", "차분하다", "침착하다", "평온하다"},
			[]string{"화가 많다", "짜증이 난다", "성질이 급하다", "화를 잘 낸다"}),
		binary(entity.CategoryRCMAS, "physical_symptoms",
			[]string{"건강하다", "문제없다", "괜찮다", "편안하다"},
			[]string{"속이 메슥거린다", "숨이 차다", "가슴이 답답하다", "몸이 아프다"}),
		binary(entity.CategoryRCMAS, "social_anxiety",
			[]string{"편안하다", "자연스럽다", "괜찮다", "문제없다", "편하다"},
			[]string{"불안하다", "긴장된다", "신경쓰인다", "부담스럽다", "어색하다", "두렵다", "무서워한다", "걱정된다"}),
		threeTier(entity.CategoryRCMAS, "self_esteem",
			[]string{"자신있다", "잘한다", "괜찮다", "좋다", "만족한다"},
			[]string{"보통이다", "그럭저럭이다", "가끔 자신없다"},
			[]string{"자신없다", "못한다", "부족하다", "열등감", "비교된다"}),
		threeTier(entity.CategoryRCMAS, "worry",
			[]string{"걱정없다", "평온하다", "괜찮다", "안정적이다"},
			[]string{"가끔 걱정된다", "보통이다", "그럭저럭이다"},
			[]string{"걱정이 많다", "불안하다", "초조하다", "스트레스받는다"}),
		threeTier(entity.CategoryRCMAS, "family_relationship",
			[]string{"잘 지낸다", "편하다", "좋다", "괜찮다", "사랑한다"},
			[]string{"보통이다", "그럭저럭이다", "가끔 어렵다"},
			[]string{"어렵다", "힘들다", "싫다", "갈등", "불편하다"}),
		threeTier(entity.CategoryRCMAS, "stress",
			[]string{"스트레스없다", "편안하다", "괜찮다", "여유있다"},
			[]string{"가끔 스트레스받는다", "보통이다", "그럭저럭이다"},
			[]string{"스트레스가 많다", "힘들다", "압박받는다", "부담된다"}),
		threeTier(entity.CategoryRCMAS, "mood_swings",
			[]string{"기분이 안정적이다", "괜찮다", "편안하다", "일정하다"},
			[]string{"가끔 변한다", "보통이다", "그럭저럭이다"},
			[]string{"기분이 자주 변한다", "갑자기 화난다", "불안정하다", "예측불가능하다"}),

		threeTier(entity.CategoryBDI, "sleep_pattern",
			[]string{"잘 잔다", "편안하다", "문제없다", "괜찮다"},
			[]string{"조금 어렵다", "가끔 어렵다", "보통이다"},
			[]string{"매우 어렵다", "전혀 못한다", "불면증", "자주 깬다"}),
		threeTier(entity.CategoryBDI, "weight_change",
			[]string{"변화없다", "안정적이다", "괜찮다"},
			[]string{"조금 줄었다", "조금 늘었다", "보통이다"},
			[]string{"많이 줄었다", "많이 늘었다", "급격한 변화"}),
		threeTier(entity.CategoryBDI, "appearance",
			[]string{"괜찮다", "만족한다", "좋다", "문제없다"},
			[]string{"보통이다", "그럭저럭이다"},
			[]string{"못생겼다", "싫다", "부끄럽다", "자신없다"}),
		threeTier(entity.CategoryBDI, "self_harm",
			[]string{"그런 생각 없다", "전혀 없다", "괜찮다", "한 적 없다"},
			[]string{"가끔 생각한다", "스쳐간 적 있다", "아주 가끔"},
			[]string{"자주 생각한다", "하고 싶다", "해본 적 있다", "다치게 하고 싶다"}),
		threeTier(entity.CategoryBDI, "suicidal_thoughts",
			[]string{"그런 생각 없다", "전혀 없다", "살고 싶다", "한 적 없다"},
			[]string{"가끔 생각한다", "스쳐간 적 있다", "아주 가끔"},
			[]string{"자주 생각한다", "사라지고 싶다", "죽고 싶다", "살기 싫다"}),
	}
}

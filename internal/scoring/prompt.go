package scoring

import (
	"fmt"
	"strings"

	"github.com/aihelper/screening-backend/internal/entity"
)

const scoreSystemPrompt = "당신은 아동 및 청소년의 정서 상태를 평가하는 전문가입니다. 주어진 답변을 분석하여 적절한 점수를 매겨주세요."

var tierNames = map[entity.Tier]string{
	entity.TierPositive: "긍정적/정상",
	entity.TierModerate: "보통/중간",
	entity.TierNegative: "부정적/문제",
}

var subcategoryNames = map[string]string{
	"academic_achievement": "학업 성취",
	"social_interaction":   "또래 관계",
	"sleep_problems":       "수면 문제",
	"adult_interaction":    "어른과의 관계",
	"loneliness":           "외로움",
	"depression":           "우울감",
	"friendship":           "친구 관계",
	"concentration":        "집중력",
	"crying":               "울음",
	"appetite":             "식욕",
	"fatigue":              "피곤함",
	"anxiety":              "불안",
	"anger":                "화",
	"physical_symptoms":    "신체 증상",
	"social_anxiety":       "사회 불안",
	"self_esteem":          "자존감",
	"worry":                "걱정",
	"family_relationship":  "가족 관계",
	"stress":               "스트레스",
	"mood_swings":          "감정 기복",
	"sleep_pattern":        "수면 패턴",
	"weight_change":        "체중 변화",
	"appearance":           "외모",
	"self_harm":            "자해 충동",
	"suicidal_thoughts":    "자살 사고",
}

func subcategoryName(sub string) string {
	if name, ok := subcategoryNames[sub]; ok {
		return name
	}
	return sub
}

// BuildScorePrompt renders the evaluation prompt for one answer. The
// rubric's exemplar phrases are embedded per tier so the oracle anchors
// its score on the same criteria the keyword fallback uses.
func BuildScorePrompt(utterance string, r entity.Rubric) string {
	var criteria strings.Builder
	for _, tier := range r.TierOrder() {
		criteria.WriteString(fmt.Sprintf("- %s: %s\n", tierNames[tier], strings.Join(r.Tiers[tier], ", ")))
	}

	severeBound := fmt.Sprintf("- %d점: 문제/부정적 상태", r.Category.MaxScore())

	return fmt.Sprintf(`다음은 %s의 '%s' 항목에 대한 평가입니다.

평가 기준:
%s
사용자 답변: %q

위 답변을 분석하여 다음 점수를 매겨주세요:
- 0점: 정상/긍정적 상태
- 1점: 보통/중간 상태
%s

한국어의 어간과 어미를 고려하여 의미를 정확히 파악해주세요.
답변은 반드시 숫자만 출력해주세요 (0부터 %d까지).`,
		r.Category.DisplayName(), subcategoryName(r.Subcategory),
		criteria.String(), utterance, severeBound, r.Category.MaxScore())
}

package intent

import "fmt"

const intentSystemPrompt = "당신은 사용자의 의도를 분석하는 전문가입니다. 주어진 응답을 분석하여 적절한 의도를 분류해주세요."

// buildIntentPrompt renders the classification prompt, embedding the
// preceding system question when one exists.
func buildIntentPrompt(utterance, lastPrompt string) string {
	if lastPrompt != "" {
		return fmt.Sprintf(`다음 대화를 분석하여 사용자의 의도를 파악해주세요.

시스템 질문: %q
사용자 응답: %q

다음 중 하나로 분류해주세요:
1. "ready" - 질문에 답할 준비가 되었음
2. "answer" - 질문에 대한 구체적인 답변을 제공함
3. "greeting" - 인사말
4. "confused" - 혼란스러워함
5. "refuse" - 거부함

답변은 반드시 위의 키워드 중 하나만 출력해주세요.`, lastPrompt, utterance)
	}

	return fmt.Sprintf(`사용자의 응답을 분석하여 의도를 파악해주세요.

사용자 응답: %q

다음 중 하나로 분류해주세요:
1. "ready" - 질문에 답할 준비가 되었음
2. "answer" - 질문에 대한 구체적인 답변을 제공함
3. "greeting" - 인사말
4. "confused" - 혼란스러워함
5. "refuse" - 거부함

답변은 반드시 위의 키워드 중 하나만 출력해주세요.`, utterance)
}

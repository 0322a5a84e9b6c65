package screening

import (
	"fmt"
	"strings"

	"github.com/aihelper/screening-backend/internal/entity"
)

// buildReport interprets the session totals into per-category results
// and a rendered summary. Categories never scored keep a nil total and
// the not-evaluated label.
func buildReport(s *entity.ScreeningSession) *entity.Report {
	results := make([]entity.CategoryResult, 0, len(entity.Categories))
	for _, c := range entity.Categories {
		var total *int
		if t := s.Total(c); t != nil {
			v := *t
			total = &v
		}
		results = append(results, entity.CategoryResult{
			Category: c,
			Total:    total,
			Label:    entity.InterpretScore(c, total),
		})
	}

	return &entity.Report{
		Results:  results,
		Rendered: renderReport(results),
	}
}

func renderReport(results []entity.CategoryResult) string {
	var sb strings.Builder
	sb.WriteString("오늘 이야기 결과를 정리했어.\n")
	for _, r := range results {
		if r.Total == nil {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", r.Category.DisplayName(), r.Label))
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s: %d점 (%s)\n", r.Category.DisplayName(), *r.Total, r.Label))
	}
	return sb.String()
}

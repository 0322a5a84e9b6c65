package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aihelper/screening-backend/internal/entity"
)

const maxUtteranceLength = 2000

// Validator validates incoming API requests
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStartSession validates StartSessionRequest
func (v *Validator) ValidateStartSession(req *entity.StartSessionRequest) error {
	if utf8.RuneCountInString(req.UserID) > 128 {
		return fmt.Errorf("%w: user_id too long", entity.ErrInvalidFormat)
	}

	return nil
}

// ValidateTurn validates TurnRequest
func (v *Validator) ValidateTurn(req *entity.TurnRequest) error {
	if strings.TrimSpace(req.Utterance) == "" {
		return fmt.Errorf("%w: utterance", entity.ErrMissingField)
	}

	if utf8.RuneCountInString(req.Utterance) > maxUtteranceLength {
		return fmt.Errorf("%w: utterance exceeds %d characters", entity.ErrInvalidFormat, maxUtteranceLength)
	}

	return nil
}

// ValidateResultFormat validates the report download format
func (v *Validator) ValidateResultFormat(format string) (entity.ResultFormat, error) {
	switch entity.ResultFormat(format) {
	case entity.FormatMarkdown, entity.FormatPDF, entity.FormatDOCX:
		return entity.ResultFormat(format), nil
	case "":
		return entity.FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: format must be one of md, pdf, docx", entity.ErrInvalidFormat)
	}
}

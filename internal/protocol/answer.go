package protocol

import (
	"strings"

	"github.com/quizwire/quizwire/internal/models"
)

// NormalizeAnswer maps a raw answer token to yes, no, or invalid.
// Y/T/1 mean yes and N/F/0 mean no, case-insensitively; anything else is
// invalid and scores as incorrect. The yes/no results are themselves valid
// tokens, so normalization is idempotent.
func NormalizeAnswer(token string) models.Answer {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "Y", "T", "1":
		return models.AnswerYes
	case "N", "F", "0":
		return models.AnswerNo
	default:
		return models.AnswerInvalid
	}
}

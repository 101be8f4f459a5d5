// SPDX-License-Identifier: ice License 1.0

package opentdb

import (
	"github.com/pkg/errors"
)

func AllQuestionTypes() []QuestionType {
	return []QuestionType{QuestionTypeMultiple, QuestionTypeBoolean}
}

func AllQuestionDifficulties() []QuestionDifficulty {
	return []QuestionDifficulty{QuestionDifficultyEasy, QuestionDifficultyMedium, QuestionDifficultyHard}
}

// Label is the human readable name.
func (t QuestionType) Label() string {
	switch t {
	case QuestionTypeMultiple:
		return "Multiple Choice"
	case QuestionTypeBoolean:
		return "True / False"
	default:
		return ""
	}
}

// WireName is the value used by the remote API, both in filters and in results.
func (t QuestionType) WireName() string {
	switch t {
	case QuestionTypeMultiple:
		return "multiple"
	case QuestionTypeBoolean:
		return "boolean"
	default:
		return ""
	}
}

func (t QuestionType) String() string {
	return t.Label()
}

func ParseQuestionType(wireName string) (QuestionType, error) {
	switch wireName {
	case "multiple":
		return QuestionTypeMultiple, nil
	case "boolean":
		return QuestionTypeBoolean, nil
	default:
		return 0, errors.Wrapf(ErrUnknownQuestionType, "%q", wireName)
	}
}

func (d QuestionDifficulty) Label() string {
	switch d {
	case QuestionDifficultyEasy:
		return "Easy"
	case QuestionDifficultyMedium:
		return "Medium"
	case QuestionDifficultyHard:
		return "Hard"
	default:
		return ""
	}
}

func (d QuestionDifficulty) WireName() string {
	switch d {
	case QuestionDifficultyEasy:
		return "easy"
	case QuestionDifficultyMedium:
		return "medium"
	case QuestionDifficultyHard:
		return "hard"
	default:
		return ""
	}
}

func (d QuestionDifficulty) String() string {
	return d.Label()
}

func ParseQuestionDifficulty(wireName string) (QuestionDifficulty, error) {
	switch wireName {
	case "easy":
		return QuestionDifficultyEasy, nil
	case "medium":
		return QuestionDifficultyMedium, nil
	case "hard":
		return QuestionDifficultyHard, nil
	default:
		return 0, errors.Wrapf(ErrUnknownQuestionDifficulty, "%q", wireName)
	}
}

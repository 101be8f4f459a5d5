// SPDX-License-Identifier: ice License 1.0

package opentdb

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

func (q *Question) String() string {
	return fmt.Sprintf("%v:\n%v", q.CategoryName, q.Text)
}

// CorrectAnswer returns nil only for questions that were not built by FetchQuestions.
func (q *Question) CorrectAnswer() *Answer {
	for _, answer := range q.Answers {
		if answer.Correct {
			return answer
		}
	}

	return nil
}

func (r *rawQuestion) parse() (*Question, error) {
	answers := make([]*Answer, 0, 1+len(r.IncorrectAnswers))
	answers = append(answers, &Answer{Text: unescape(r.CorrectAnswer), Correct: true})
	for _, text := range r.IncorrectAnswers {
		answers = append(answers, &Answer{Text: unescape(text), Correct: false})
	}
	questionType, err := ParseQuestionType(r.Type)
	if err != nil {
		return nil, err
	}
	difficulty, err := ParseQuestionDifficulty(r.Difficulty)
	if err != nil {
		return nil, err
	}
	const booleanAnswers, minAnswers = 2, 2
	if (questionType == QuestionTypeBoolean && len(answers) != booleanAnswers) || len(answers) < minAnswers {
		return nil, errors.Wrapf(ErrInvalidQuestion, "%v question with %v answers", questionType.WireName(), len(answers))
	}

	return &Question{
		CategoryName: unescape(r.Category),
		Text:         unescape(r.Question),
		Type:         questionType,
		Difficulty:   difficulty,
		Answers:      answers,
	}, nil
}

func unescape(text string) string {
	return html.UnescapeString(text)
}

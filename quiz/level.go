// SPDX-License-Identifier: ice License 1.0

package quiz

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/inquisitive/opentdb"
)

func NewLevel(difficulty opentdb.QuestionDifficulty, questions []*opentdb.Question) *Level {
	return &Level{
		Difficulty: difficulty,
		questions:  append(make([]*opentdb.Question, 0, len(questions)), questions...),
	}
}

func (l *Level) Remaining() int {
	return len(l.questions)
}

// Current is nil before the first Next and after every guess.
func (l *Level) Current() (*opentdb.Question, *AnswerSet) {
	return l.current, l.answers
}

func (l *Level) Next() (*opentdb.Question, *AnswerSet, error) {
	if len(l.questions) == 0 {
		l.current, l.answers = nil, nil

		return nil, nil, ErrNoMoreQuestions
	}
	last := len(l.questions) - 1
	l.current, l.questions = l.questions[last], l.questions[:last]
	l.answers = NewAnswerSet(l.current.Answers)
	l.Asked++

	return l.current, l.answers, nil
}

// Guess closes the current question; call Next to move on.
func (l *Level) Guess(index int) (*GuessResult, error) {
	if l.current == nil {
		return nil, ErrNoActiveQuestion
	}
	if index < 0 || index >= l.answers.Len() {
		return nil, errors.Wrapf(ErrInvalidGuess, "%v of %v answers", index, l.answers.Len())
	}
	res := &GuessResult{
		Guessed: l.answers.Answers[index],
		Answer:  l.answers.Correct(),
		Letter:  Letter(l.answers.CorrectIndex()),
		Correct: l.answers.IsCorrect(index),
	}
	if res.Correct {
		l.Score++
	}
	l.current, l.answers = nil, nil

	return res, nil
}

func (l *Level) GuessLetter(letter string) (*GuessResult, error) {
	for i := range letters {
		if strings.EqualFold(strings.TrimSpace(letter), letters[i]) {
			return l.Guess(i)
		}
	}

	return nil, errors.Wrapf(ErrInvalidGuess, "%q", letter)
}

// QuestionText is what is spoken for a question; true/false questions get a prefix.
func QuestionText(q *opentdb.Question) string {
	if q.Type == opentdb.QuestionTypeBoolean {
		return "True or false: " + q.Text
	}

	return q.Text
}

// Prompt renders the current question with its lettered answers.
func (l *Level) Prompt() string {
	if l.current == nil {
		return ""
	}
	options := make([]string, 0, l.answers.Len()+1)
	for i, answer := range l.answers.Answers {
		options = append(options, fmt.Sprintf("%v: %v", Letter(i), answer.Text))
	}
	if len(options) > 1 {
		options = append(options[:len(options)-1], "or "+options[len(options)-1])
	}

	return fmt.Sprintf("%v: %v\n\n%v", l.current.CategoryName, QuestionText(l.current), strings.Join(options, ", "))
}

func (r *GuessResult) String() string {
	prefix := "Sorry, but"
	if r.Correct {
		prefix = "Correct!"
	}

	return fmt.Sprintf("%v the answer was %v: %v", prefix, r.Letter, r.Answer.Text)
}

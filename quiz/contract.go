// SPDX-License-Identifier: ice License 1.0

package quiz

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/inquisitive/opentdb"
)

// Public API.

var (
	ErrNoMoreQuestions  = errors.New("no more questions")
	ErrNoActiveQuestion = errors.New("no active question")
	ErrInvalidGuess     = errors.New("invalid guess")
)

type (
	QuestionSource interface {
		GenerateToken(ctx context.Context) error
		GetQuestions(ctx context.Context, filter *opentdb.QuestionFilter) ([]*opentdb.Question, error)
	}

	// AnswerSet holds answers in presentation order and remembers which one is correct.
	AnswerSet struct {
		Answers []*opentdb.Answer
		correct int
	}

	// Level is a headless quiz level: it serves questions from the end of its list and scores guesses.
	Level struct {
		current    *opentdb.Question
		answers    *AnswerSet
		questions  []*opentdb.Question
		Difficulty opentdb.QuestionDifficulty
		Asked      int
		Score      int
	}

	GuessResult struct {
		Guessed *opentdb.Answer
		Answer  *opentdb.Answer
		Letter  string
		Correct bool
	}

	Levels struct {
		Easy   *Level
		Medium *Level
		Hard   *Level
	}
)

// Private API.

const (
	booleanAnswers = 2
)

type (
	shuffleFunc func(n int, swap func(i, j int))
)

//nolint:gochecknoglobals // Constant lookup.
var letters = [...]string{"A", "B", "C", "D"}

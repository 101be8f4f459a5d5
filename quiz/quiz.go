// SPDX-License-Identifier: ice License 1.0

package quiz

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/inquisitive/opentdb"
	"github.com/ice-blockchain/wintr/log"
)

// LoadLevels generates a fresh token and loads one batch per difficulty.
// An exhausted token is regenerated once per batch; any other failure aborts the whole load.
func LoadLevels(ctx context.Context, source QuestionSource) (*Levels, error) {
	if err := source.GenerateToken(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}
	levels := new(Levels)
	for _, target := range []struct {
		level      **Level
		difficulty opentdb.QuestionDifficulty
	}{
		{&levels.Easy, opentdb.QuestionDifficultyEasy},
		{&levels.Medium, opentdb.QuestionDifficultyMedium},
		{&levels.Hard, opentdb.QuestionDifficultyHard},
	} {
		questions, err := GetQuestions(ctx, source, &opentdb.QuestionFilter{Difficulty: target.difficulty})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %v level", target.difficulty.WireName())
		}
		*target.level = NewLevel(target.difficulty, questions)
	}

	return levels, nil
}

// GetQuestions regenerates the token and retries once when it is exhausted.
func GetQuestions(ctx context.Context, source QuestionSource, filter *opentdb.QuestionFilter) ([]*opentdb.Question, error) {
	questions, err := source.GetQuestions(ctx, filter)
	if err == nil || !errors.Is(err, opentdb.ErrTokenEmpty) {
		return questions, err //nolint:wrapcheck // .
	}
	log.Info("quiz: session token exhausted, regenerating")
	if err = source.GenerateToken(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to regenerate exhausted token")
	}

	return source.GetQuestions(ctx, filter) //nolint:wrapcheck // .
}

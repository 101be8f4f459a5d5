// SPDX-License-Identifier: ice License 1.0

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/inquisitive/opentdb"
	"github.com/ice-blockchain/inquisitive/quiz"
	"github.com/ice-blockchain/inquisitive/speech"
	"github.com/ice-blockchain/wintr/log"
)

//nolint:gochecknoglobals // Because those are flags
var (
	number = flag.Int("number", 1000, "the number of questions to gather") //nolint:gomnd // .
)

func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Panic(errors.Wrap(err, "failed to load .env"))
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Panic(run(ctx, opentdb.NewQuestionFactory(opentdb.New()), speech.New(), *number)) //nolint:revive // .
}

const maxFailedBatches = 3

func run(ctx context.Context, factory quiz.QuestionSource, renderer *speech.Renderer, target int) error {
	log.Info("generating token...")
	if err := factory.GenerateToken(ctx); err != nil {
		return errors.Wrap(err, "failed to generate token")
	}
	rendered, failedBatches := 0, 0
	for rendered < target {
		log.Info("getting more questions...", "rendered", rendered, "target", target)
		questions, err := quiz.GetQuestions(ctx, factory, nil)
		if err != nil {
			return errors.Wrap(err, "failed to get questions")
		}
		n, err := renderer.Render(ctx, questions, target-rendered)
		rendered += n
		if err == nil {
			failedBatches = 0

			continue
		}
		if ctx.Err() != nil {
			return errors.Wrapf(err, "stopped after %v questions", rendered)
		}
		failedBatches++
		if n > 0 {
			failedBatches = 0
		}
		if failedBatches >= maxFailedBatches {
			return errors.Wrapf(err, "gave up after %v batches without a rendered question, stopped after %v questions", failedBatches, rendered)
		}
		log.Error(err, "some questions were skipped")
	}
	log.Info("done", "rendered", rendered)

	return nil
}

// SPDX-License-Identifier: ice License 1.0

package speech

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	stdlibtime "time"

	"dario.cat/mergo"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"

	"github.com/ice-blockchain/inquisitive/opentdb"
	"github.com/ice-blockchain/inquisitive/quiz"
	appcfg "github.com/ice-blockchain/wintr/config"
	"github.com/ice-blockchain/wintr/log"
)

func loadConfig() *config {
	var cfg config

	appcfg.MustLoadFromKey(applicationYAMLKey, &cfg)

	if env := os.Getenv("SPEECH_TTS_URL"); env != "" {
		cfg.TTSURL = env
	}
	log.Panic(errors.Wrap(mergo.Merge(&cfg, &config{ //nolint:revive // .
		OutputDir:             "sounds",
		RequestTimeoutSeconds: 120, //nolint:gomnd // Synthesis is slow.
	}), "failed to apply speech config defaults"))

	return &cfg
}

// New builds a Renderer backed by the TTS server from the `speech` application config key.
func New() *Renderer {
	cfg := loadConfig()

	return NewRenderer(cfg.OutputDir, NewHTTPSynthesizer(cfg.TTSURL, stdlibtime.Duration(cfg.RequestTimeoutSeconds)*stdlibtime.Second))
}

func NewRenderer(dir string, synthesizer Synthesizer) *Renderer {
	if dir == "" || synthesizer == nil {
		log.Panic("speech: invalid renderer config")
	}

	return &Renderer{Dir: dir, Synthesizer: synthesizer, seen: make(map[uint64]struct{})}
}

// Render stops once limit questions are rendered; limit <= 0 renders everything.
// Questions that fail are removed from disk and skipped; their errors are returned together with the rendered count.
// Only context errors abort the batch.
func (r *Renderer) Render(ctx context.Context, questions []*opentdb.Question, limit int) (rendered int, err error) {
	for _, dir := range []string{r.Dir, filepath.Join(r.Dir, questionsDir), filepath.Join(r.Dir, categoriesDir), filepath.Join(r.Dir, difficultiesDir)} {
		if mErr := os.MkdirAll(dir, dirPerm); mErr != nil {
			return 0, multierror.Append(ErrWriteFailed, errors.Wrapf(mErr, "failed to create %v", dir))
		}
	}
	var skipped *multierror.Error
	for _, q := range questions {
		if limit > 0 && rendered >= limit {
			break
		}
		if ctx.Err() != nil {
			return rendered, errors.Wrap(ctx.Err(), "rendering interrupted")
		}
		started := stdlibtime.Now()
		done, qErr := r.RenderQuestion(ctx, q)
		if qErr != nil {
			if ctx.Err() != nil {
				return rendered, errors.Wrap(qErr, "rendering interrupted")
			}
			log.Error(qErr, "speech: skipping question", "question", q.Text)
			skipped = multierror.Append(skipped, qErr)

			continue
		}
		if !done {
			log.Info("speech: skipping duplicate question", "question", q.Text)

			continue
		}
		rendered++
		log.Info("speech: rendered question", "number", rendered, "took", stdlibtime.Since(started).String())
	}

	return rendered, skipped.ErrorOrNil()
}

// RenderQuestion reports false when the question was already rendered.
func (r *Renderer) RenderQuestion(ctx context.Context, q *opentdb.Question) (bool, error) {
	hash := xxh3.HashString(q.CategoryName + "\x00" + q.Difficulty.WireName() + "\x00" + q.Text)
	if _, found := r.seen[hash]; found {
		return false, nil
	}
	categorySlug, difficulty := Slugify(q.CategoryName), q.Difficulty.WireName()
	if err := r.speak(ctx, filepath.Join(r.Dir, categoriesDir), categorySlug, strings.ReplaceAll(q.CategoryName, ":", " and")); err != nil {
		return false, errors.Wrapf(err, "category %q", q.CategoryName)
	}
	if err := r.speak(ctx, filepath.Join(r.Dir, difficultiesDir), Slugify(difficulty), difficulty); err != nil {
		return false, errors.Wrapf(err, "difficulty %q", difficulty)
	}
	dir := filepath.Join(r.Dir, questionsDir, categorySlug, difficulty, Slugify(q.Text))
	if questionDirComplete(dir, q) {
		r.seen[hash] = struct{}{}

		return false, nil
	}
	if err := r.renderQuestionDir(ctx, dir, q); err != nil {
		if rErr := os.RemoveAll(dir); rErr != nil {
			err = multierror.Append(err, errors.Wrapf(rErr, "failed to remove %v", dir))
		}

		return false, errors.Wrapf(err, "question %q", q.Text)
	}
	r.seen[hash] = struct{}{}

	return true, nil
}

// questionDirComplete is false for directories left half-written by an interrupted run; those get resumed.
func questionDirComplete(dir string, q *opentdb.Question) bool {
	if !fileExists(filepath.Join(dir, questionFilename+wavExt)) {
		return false
	}
	for i, answer := range q.Answers {
		wavFile := filepath.Join(dir, answersDir, strconv.Itoa(i)+wavExt)
		if answer.Correct {
			wavFile = filepath.Join(dir, correctFilename+wavExt)
		}
		if !fileExists(wavFile) {
			return false
		}
	}

	return true
}

func (r *Renderer) renderQuestionDir(ctx context.Context, dir string, q *opentdb.Question) error {
	if err := os.MkdirAll(filepath.Join(dir, answersDir), dirPerm); err != nil {
		return multierror.Append(ErrWriteFailed, errors.Wrapf(err, "failed to create %v", dir))
	}
	if err := r.speak(ctx, dir, questionFilename, quiz.QuestionText(q)); err != nil {
		return err
	}
	for i, answer := range q.Answers {
		target, filename := filepath.Join(dir, answersDir), strconv.Itoa(i)
		if answer.Correct {
			target, filename = dir, correctFilename
		}
		if err := r.speak(ctx, target, filename, answer.Text); err != nil {
			return errors.Wrapf(err, "answer %q", answer.Text)
		}
	}

	return nil
}

// speak writes the text next to its audio; either file is only produced when missing.
func (r *Renderer) speak(ctx context.Context, dir, filename, text string) error {
	txtFile := filepath.Join(dir, filename+txtExt)
	if !fileExists(txtFile) {
		if err := os.WriteFile(txtFile, []byte(text), filePerm); err != nil {
			return multierror.Append(ErrWriteFailed, err)
		}
	}
	wavFile := filepath.Join(dir, filename+wavExt)
	if fileExists(wavFile) {
		return nil
	}
	audio, err := r.Synthesizer.Synthesize(ctx, text)
	if err != nil {
		return errors.Wrapf(err, "failed to synthesize %v", wavFile)
	}
	if err = os.WriteFile(wavFile, audio, filePerm); err != nil {
		return multierror.Append(ErrWriteFailed, err)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// SPDX-License-Identifier: ice License 1.0

package speech

import (
	"context"
	"sync"

	"github.com/imroc/req/v3"
	"github.com/pkg/errors"
)

// Public API.

var (
	ErrSynthesisFailed = errors.New("speech synthesis failed")
	ErrWriteFailed     = errors.New("cannot write speech file")
)

type (
	// Synthesizer turns text into WAV audio.
	Synthesizer interface {
		Synthesize(ctx context.Context, text string) ([]byte, error)
	}

	// Renderer pre-renders question speech under a directory tree:
	//
	//	categories/{category}.txt|.wav
	//	difficulties/{difficulty}.txt|.wav
	//	questions/{category}/{difficulty}/{question}/question.txt|.wav
	//	questions/{category}/{difficulty}/{question}/correct.txt|.wav
	//	questions/{category}/{difficulty}/{question}/answers/{i}.txt|.wav
	//
	// Files that already exist are never rewritten. It is not safe for concurrent use.
	Renderer struct {
		Synthesizer Synthesizer
		seen        map[uint64]struct{}
		Dir         string
	}
)

// Private API.

const (
	applicationYAMLKey = "speech"

	wavExt = ".wav"
	txtExt = ".txt"

	questionsDir    = "questions"
	categoriesDir   = "categories"
	difficultiesDir = "difficulties"
	answersDir      = "answers"

	questionFilename = "question"
	correctFilename  = "correct"

	ttsPath = "/api/tts"

	dirPerm  = 0o755
	filePerm = 0o644
)

type (
	httpSynthesizer struct {
		http *req.Client
		mx   sync.Mutex
	}

	config struct {
		TTSURL                string `yaml:"ttsURL" mapstructure:"ttsURL"`
		OutputDir             string `yaml:"outputDir" mapstructure:"outputDir"`
		RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds" mapstructure:"requestTimeoutSeconds"`
	}
)

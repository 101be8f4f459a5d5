// SPDX-License-Identifier: ice License 1.0

package speech

import (
	"context"
	"net/http"
	stdlibtime "time"

	"github.com/hashicorp/go-multierror"
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/wintr/log"
)

// NewHTTPSynthesizer talks to a TTS server exposing `GET /api/tts?text=...` that answers with WAV bytes.
func NewHTTPSynthesizer(baseURL string, timeout stdlibtime.Duration) Synthesizer {
	if baseURL == "" {
		log.Panic("speech: TTS URL is not set")
	}

	return &httpSynthesizer{
		http: req.C().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetCommonHeader("Accept", "audio/wav"),
	}
}

// Synthesize calls are serialized, the TTS server renders one text at a time.
func (s *httpSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("text", text).
		Get(ttsPath)
	if err != nil {
		return nil, multierror.Append(ErrSynthesisFailed, errors.Wrapf(err, "text %q", text))
	}
	if resp.GetStatusCode() != http.StatusOK {
		return nil, errors.Wrapf(ErrSynthesisFailed, "unexpected status code: %v, text %q", resp.GetStatusCode(), text)
	}
	data, err := resp.ToBytes()
	if err != nil {
		return nil, multierror.Append(ErrSynthesisFailed, errors.Wrap(err, "failed to read audio"))
	}
	if len(data) == 0 {
		return nil, errors.Wrapf(ErrSynthesisFailed, "empty audio for text %q", text)
	}

	return data, nil
}

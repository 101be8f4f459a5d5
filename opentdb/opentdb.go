// SPDX-License-Identifier: ice License 1.0

package opentdb

import (
	"context"
	"net/http"
	"os"
	stdlibtime "time"

	"dario.cat/mergo"
	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"

	appcfg "github.com/ice-blockchain/wintr/config"
	"github.com/ice-blockchain/wintr/log"
)

func defaultConfig() *config {
	return &config{
		BaseURL:               "https://opentdb.com",
		UserAgent:             "inquisitive",
		RequestTimeoutSeconds: 30, //nolint:gomnd // .
	}
}

func loadConfig() *config {
	var cfg config

	appcfg.MustLoadFromKey(applicationYAMLKey, &cfg)

	if env := os.Getenv("OPENTDB_BASE_URL"); env != "" {
		cfg.BaseURL = env
	}
	log.Panic(errors.Wrap(mergo.Merge(&cfg, defaultConfig()), "failed to apply opentdb config defaults")) //nolint:revive // .

	return &cfg
}

// New builds a Client from the `opentdb` application config key.
func New() Client {
	return newClient(loadConfig())
}

// FetchCategories is a one-off lookup that does not need a session token.
func FetchCategories(ctx context.Context) ([]*Category, error) {
	return New().FetchCategories(ctx) //nolint:wrapcheck // .
}

// FetchQuestionCount is a one-off lookup that does not need a session token.
func FetchQuestionCount(ctx context.Context, category *Category) (*QuestionCount, error) {
	return New().FetchQuestionCount(ctx, category) //nolint:wrapcheck // .
}

func newClient(cfg *config) *client {
	if cfg.BaseURL == "" {
		log.Panic("opentdb: base URL is not set")
	}
	httpClient := req.C().
		SetBaseURL(cfg.BaseURL).
		SetUserAgent(cfg.UserAgent).
		SetTimeout(stdlibtime.Duration(cfg.RequestTimeoutSeconds) * stdlibtime.Second).
		SetJsonMarshal(json.Marshal).
		SetJsonUnmarshal(json.Unmarshal)
	if cfg.RetryCount > 0 {
		httpClient.
			SetCommonRetryCount(cfg.RetryCount).
			SetCommonRetryBackoffInterval(10*stdlibtime.Millisecond, stdlibtime.Second). //nolint:gomnd // Nope.
			SetCommonRetryHook(func(resp *req.Response, err error) {
				if err != nil {
					log.Error(err, "opentdb: fetch failed, retrying...")
				} else {
					log.Warn("opentdb: fetch failed: unexpected status code: " + resp.Status)
				}
			}).
			SetCommonRetryCondition(func(resp *req.Response, err error) bool {
				return err != nil || resp.GetStatusCode() == http.StatusTooManyRequests || resp.GetStatusCode() >= http.StatusInternalServerError
			})
	}

	return &client{http: httpClient, cfg: cfg}
}

// get fails on a non-zero response_code before dest is decoded.
func (c *client) get(ctx context.Context, path string, params map[string]string, dest any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return multierror.Append(ErrFetchFailed, errors.Wrapf(err, "GET %v", path))
	}
	if resp.GetStatusCode() != http.StatusOK {
		return errors.Wrapf(ErrFetchFailed, "GET %v: unexpected status code: %v", path, resp.GetStatusCode())
	}
	data, err := resp.ToBytes()
	if err != nil {
		return multierror.Append(ErrFetchReadFailed, errors.Wrapf(err, "GET %v", path))
	}
	var env envelope
	if err = json.UnmarshalContext(ctx, data, &env); err != nil {
		return multierror.Append(ErrDecodeFailed, errors.Wrapf(err, "GET %v, data: %v", path, string(data)))
	}
	if err = checkResponseCode(env.ResponseCode); err != nil {
		return err
	}
	if err = json.UnmarshalContext(ctx, data, dest); err != nil {
		return multierror.Append(ErrDecodeFailed, errors.Wrapf(err, "failed to unmarshal into %T, data: %v", dest, string(data)))
	}

	return nil
}

// SPDX-License-Identifier: ice License 1.0

package opentdb

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/wintr/log"
	"github.com/ice-blockchain/wintr/time"
)

func NewQuestionFactory(client Client) *QuestionFactory {
	if client == nil {
		log.Panic("opentdb: client is not set")
	}

	return &QuestionFactory{client: client}
}

// Token is empty until GenerateToken succeeds.
func (f *QuestionFactory) Token() string {
	return f.token
}

func (f *QuestionFactory) TokenIssuedAt() *time.Time {
	return f.tokenIssuedAt
}

// GenerateToken replaces any previously stored token.
func (f *QuestionFactory) GenerateToken(ctx context.Context) error {
	token, err := f.client.FetchToken(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to generate token")
	}
	f.token, f.tokenIssuedAt = token, time.Now()
	log.Debug("opentdb: session token generated")

	return nil
}

func (f *QuestionFactory) ResetToken(ctx context.Context) error {
	if f.token == "" {
		return ErrInvalidToken
	}
	token, err := f.client.ResetToken(ctx, f.token)
	if err != nil {
		return errors.Wrap(err, "failed to reset token")
	}
	if token != "" {
		f.token = token
	}
	f.tokenIssuedAt = time.Now()

	return nil
}

// GetQuestions fails with ErrInvalidToken, without calling the remote service, until a token is generated.
// A nil filter asks for DefaultAmount questions of any category, difficulty and type.
func (f *QuestionFactory) GetQuestions(ctx context.Context, filter *QuestionFilter) ([]*Question, error) {
	if f.token == "" {
		return nil, ErrInvalidToken
	}

	return f.client.FetchQuestions(ctx, f.token, filter) //nolint:wrapcheck // Propagated unchanged.
}

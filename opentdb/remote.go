// SPDX-License-Identifier: ice License 1.0

package opentdb

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
)

func (c *client) FetchToken(ctx context.Context) (string, error) {
	var resp tokenResponse
	if err := c.get(ctx, tokenPath, map[string]string{"command": "request"}, &resp); err != nil {
		return "", errors.Wrap(err, "failed to request token")
	}

	return resp.Token, nil
}

func (c *client) ResetToken(ctx context.Context, token string) (string, error) {
	var resp tokenResponse
	if err := c.get(ctx, tokenPath, map[string]string{"command": "reset", "token": token}, &resp); err != nil {
		return "", errors.Wrapf(err, "failed to reset token %v", token)
	}

	return resp.Token, nil
}

func (c *client) FetchCategories(ctx context.Context) ([]*Category, error) {
	var resp categoriesResponse
	if err := c.get(ctx, categoryPath, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch categories")
	}
	categories := make([]*Category, 0, len(resp.Categories))
	for _, category := range resp.Categories {
		if category == nil {
			continue
		}
		categories = append(categories, &Category{ID: category.ID, Name: unescape(category.Name)})
	}

	return categories, nil
}

func (c *client) FetchQuestionCount(ctx context.Context, category *Category) (*QuestionCount, error) {
	if category == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "category is not set")
	}
	var resp countResponse
	if err := c.get(ctx, countPath, map[string]string{"category": strconv.Itoa(category.ID)}, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch question count for category %v", category)
	}

	return &QuestionCount{
		Category: category,
		Total:    resp.Count.Total,
		Easy:     resp.Count.Easy,
		Medium:   resp.Count.Medium,
		Hard:     resp.Count.Hard,
	}, nil
}

func (c *client) FetchQuestions(ctx context.Context, token string, filter *QuestionFilter) ([]*Question, error) {
	var resp questionsResponse
	if err := c.get(ctx, questionsPath, filter.params(token), &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch questions")
	}
	questions := make([]*Question, 0, len(resp.Results))
	for i, raw := range resp.Results {
		question, err := raw.parse()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse question #%v", i)
		}
		questions = append(questions, question)
	}

	return questions, nil
}

func (f *QuestionFilter) params(token string) map[string]string {
	amount := uint(DefaultAmount)
	if f != nil && f.Amount > 0 {
		amount = f.Amount
	}
	params := map[string]string{
		"token":  token,
		"amount": strconv.FormatUint(uint64(amount), 10),
	}
	if f == nil {
		return params
	}
	if f.Category != nil {
		params["category"] = strconv.Itoa(f.Category.ID)
	}
	if wireName := f.Difficulty.WireName(); wireName != "" {
		params["difficulty"] = wireName
	}
	if wireName := f.Type.WireName(); wireName != "" {
		params["type"] = wireName
	}

	return params
}

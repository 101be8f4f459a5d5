// SPDX-License-Identifier: ice License 1.0

package opentdb

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/wintr/time"
)

// Public API.

const (
	QuestionTypeMultiple QuestionType = iota + 1
	QuestionTypeBoolean
)

const (
	QuestionDifficultyEasy QuestionDifficulty = iota + 1
	QuestionDifficultyMedium
	QuestionDifficultyHard
)

const (
	ResponseCodeSuccess ResponseCode = iota
	ResponseCodeNoResults
	ResponseCodeInvalidParameter
	ResponseCodeTokenNotFound
	ResponseCodeTokenEmpty
)

const (
	DefaultAmount = 10
)

var (
	ErrNoResults           = errors.New("no results")
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrTokenNotFound       = errors.New("token not found")
	ErrTokenEmpty          = errors.New("token empty")
	ErrUnknownResponseCode = errors.New("unknown api error")

	ErrInvalidToken              = errors.New("invalid token")
	ErrInvalidQuestion           = errors.New("invalid question")
	ErrUnknownQuestionType       = errors.New("unknown question type")
	ErrUnknownQuestionDifficulty = errors.New("unknown question difficulty")

	ErrFetchFailed     = errors.New("cannot fetch")
	ErrFetchReadFailed = errors.New("cannot read fetched response")
	ErrDecodeFailed    = errors.New("cannot decode response")
)

type (
	ResponseCode       int
	QuestionType       uint8
	QuestionDifficulty uint8

	// Category is compared by value; instances are never reused between responses.
	Category struct {
		Name string `json:"name"`
		ID   int    `json:"id"`
	}
	QuestionCount struct {
		Category *Category `json:"category"`
		Total    int       `json:"total"`
		Easy     int       `json:"easy"`
		Medium   int       `json:"medium"`
		Hard     int       `json:"hard"`
	}
	Answer struct {
		Text    string `json:"text"`
		Correct bool   `json:"correct"`
	}
	// Question answers are in construction order: the correct one first, then the incorrect ones in server order.
	Question struct {
		CategoryName string             `json:"categoryName"`
		Text         string             `json:"text"`
		Answers      []*Answer          `json:"answers"`
		Type         QuestionType       `json:"type"`
		Difficulty   QuestionDifficulty `json:"difficulty"`
	}
	// QuestionFilter narrows a questions batch. Zero values mean "no filter"; Amount defaults to DefaultAmount.
	QuestionFilter struct {
		Category   *Category
		Amount     uint
		Difficulty QuestionDifficulty
		Type       QuestionType
	}

	// APIError is a non-zero response_code reported by the remote service.
	APIError struct {
		kind error
		Raw  string
		Code ResponseCode
	}

	Client interface {
		FetchToken(ctx context.Context) (string, error)
		ResetToken(ctx context.Context, token string) (string, error)
		FetchCategories(ctx context.Context) ([]*Category, error)
		FetchQuestionCount(ctx context.Context, category *Category) (*QuestionCount, error)
		FetchQuestions(ctx context.Context, token string, filter *QuestionFilter) ([]*Question, error)
	}

	// QuestionFactory owns one session token. It is not safe for concurrent use.
	QuestionFactory struct {
		client        Client
		tokenIssuedAt *time.Time
		token         string
	}
)

// Private API.

const (
	applicationYAMLKey = "opentdb"

	tokenPath     = "/api_token.php"
	categoryPath  = "/api_category.php"
	countPath     = "/api_count.php"
	questionsPath = "/api.php"
)

//nolint:gochecknoglobals // Ordered like the remote contract, index is the response code.
var apiErrors = [...]error{
	ResponseCodeSuccess:          nil,
	ResponseCodeNoResults:        ErrNoResults,
	ResponseCodeInvalidParameter: ErrInvalidParameter,
	ResponseCodeTokenNotFound:    ErrTokenNotFound,
	ResponseCodeTokenEmpty:       ErrTokenEmpty,
}

type (
	client struct {
		http *req.Client
		cfg  *config
	}

	config struct {
		BaseURL               string `yaml:"baseURL" mapstructure:"baseURL"`
		UserAgent             string `yaml:"userAgent" mapstructure:"userAgent"`
		RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds" mapstructure:"requestTimeoutSeconds"`
		RetryCount            int    `yaml:"retryCount" mapstructure:"retryCount"`
	}

	envelope struct {
		ResponseCode json.RawMessage `json:"response_code"` //nolint:tagliatelle // Nope.
	}

	tokenResponse struct {
		Token string `json:"token"`
	}

	categoriesResponse struct {
		Categories []*Category `json:"trivia_categories"` //nolint:tagliatelle // Nope.
	}

	countResponse struct {
		Count struct {
			Total  int `json:"total_question_count"`        //nolint:tagliatelle // Nope.
			Easy   int `json:"total_easy_question_count"`   //nolint:tagliatelle // Nope.
			Medium int `json:"total_medium_question_count"` //nolint:tagliatelle // Nope.
			Hard   int `json:"total_hard_question_count"`   //nolint:tagliatelle // Nope.
		} `json:"category_question_count"` //nolint:tagliatelle // Nope.
	}

	questionsResponse struct {
		Results []*rawQuestion `json:"results"`
	}

	rawQuestion struct {
		Category         string   `json:"category"`
		Type             string   `json:"type"`
		Difficulty       string   `json:"difficulty"`
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`    //nolint:tagliatelle // Nope.
		IncorrectAnswers []string `json:"incorrect_answers"` //nolint:tagliatelle // Nope.
	}
)

func (c *Category) String() string {
	return fmt.Sprintf("%v (%v)", c.Name, c.ID)
}

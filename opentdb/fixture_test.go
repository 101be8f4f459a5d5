// SPDX-License-Identifier: ice License 1.0

package opentdb

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals // Test data.
var testCategories = []*Category{
	{ID: 9, Name: "General Knowledge"},
	{ID: 10, Name: "Entertainment: Books"},
	{ID: 11, Name: "Entertainment: Film"},
	{ID: 12, Name: "Entertainment: Music"},
	{ID: 31, Name: "Entertainment: Japanese Anime & Manga"},
	{ID: 17, Name: "Science & Nature"},
}

type (
	fakeOpenTDB struct {
		*httptest.Server
		tokens map[string]int
		// Override, when set, replaces every response body.
		Override map[string]any
		// Pool is how many questions a token can see before it is exhausted; 0 is unlimited.
		Pool  int
		Calls atomic.Int64
		mx    sync.Mutex
	}
)

func newFakeOpenTDB(t *testing.T) *fakeOpenTDB {
	t.Helper()

	fake := &fakeOpenTDB{tokens: make(map[string]int)}
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, fake.handleToken)
	mux.HandleFunc(categoryPath, fake.handleCategories)
	mux.HandleFunc(countPath, fake.handleCount)
	mux.HandleFunc(questionsPath, fake.handleQuestions)
	fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.Calls.Add(1)
		fake.mx.Lock()
		override := fake.Override
		fake.mx.Unlock()
		if override != nil {
			writeJSON(w, override)

			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(fake.Close)

	return fake
}

func (f *fakeOpenTDB) NewClient() *client {
	return newClient(&config{BaseURL: f.URL, UserAgent: "test", RequestTimeoutSeconds: 5})
}

func (f *fakeOpenTDB) SetOverride(body map[string]any) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.Override = body
}

func writeJSON(w http.ResponseWriter, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data) //nolint:errcheck // Test server.
}

func (f *fakeOpenTDB) handleToken(w http.ResponseWriter, r *http.Request) {
	f.mx.Lock()
	defer f.mx.Unlock()
	switch r.URL.Query().Get("command") {
	case "request":
		token := uuid.NewString()
		f.tokens[token] = 0
		writeJSON(w, map[string]any{"response_code": 0, "response_message": "Token Generated Successfully!", "token": token})
	case "reset":
		token := r.URL.Query().Get("token")
		if _, found := f.tokens[token]; !found {
			writeJSON(w, map[string]any{"response_code": ResponseCodeTokenNotFound, "token": ""})

			return
		}
		f.tokens[token] = 0
		writeJSON(w, map[string]any{"response_code": 0, "token": token})
	default:
		writeJSON(w, map[string]any{"response_code": ResponseCodeInvalidParameter})
	}
}

func (*fakeOpenTDB) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{"trivia_categories": testCategories})
}

func (*fakeOpenTDB) handleCount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("category"))
	if err != nil {
		writeJSON(w, map[string]any{"response_code": ResponseCodeInvalidParameter})

		return
	}
	easy, medium, hard := id*3, id*2, id
	writeJSON(w, map[string]any{
		"category_id": id,
		"category_question_count": map[string]int{
			"total_question_count":        easy + medium + hard,
			"total_easy_question_count":   easy,
			"total_medium_question_count": medium,
			"total_hard_question_count":   hard,
		},
	})
}

func (f *fakeOpenTDB) handleQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	f.mx.Lock()
	seen, found := f.tokens[query.Get("token")]
	if !found {
		f.mx.Unlock()
		writeJSON(w, map[string]any{"response_code": ResponseCodeTokenNotFound, "results": []any{}})

		return
	}
	amount, err := strconv.Atoi(query.Get("amount"))
	if err != nil || amount <= 0 {
		f.mx.Unlock()
		writeJSON(w, map[string]any{"response_code": ResponseCodeInvalidParameter, "results": []any{}})

		return
	}
	if f.Pool > 0 && seen+amount > f.Pool {
		f.mx.Unlock()
		writeJSON(w, map[string]any{"response_code": ResponseCodeTokenEmpty, "results": []any{}})

		return
	}
	f.tokens[query.Get("token")] = seen + amount
	f.mx.Unlock()

	category := "General Knowledge"
	if id := query.Get("category"); id != "" {
		for _, c := range testCategories {
			if strconv.Itoa(c.ID) == id {
				category = c.Name
			}
		}
	}
	results := make([]map[string]any, 0, amount)
	for i := 0; i < amount; i++ {
		results = append(results, fakeResult(seen+i, category, query.Get("difficulty"), query.Get("type")))
	}
	writeJSON(w, map[string]any{"response_code": 0, "results": results})
}

func fakeResult(n int, category, difficulty, questionType string) map[string]any {
	if difficulty == "" {
		difficulty = AllQuestionDifficulties()[n%3].WireName()
	}
	if questionType == "" {
		questionType = AllQuestionTypes()[n%2].WireName()
	}
	result := map[string]any{
		"category":   escapeForTest(category),
		"type":       questionType,
		"difficulty": difficulty,
		"question":   fmt.Sprintf("What&#039;s &quot;question&quot; #%v?", n),
	}
	if questionType == "boolean" {
		result["correct_answer"] = "True"
		result["incorrect_answers"] = []string{"False"}
	} else {
		result["correct_answer"] = "Tom &amp; Jerry"
		result["incorrect_answers"] = []string{"Wrong &lt;1&gt;", "Wrong 2", "Wrong 3"}
	}

	return result
}

func escapeForTest(text string) string {
	return strings.ReplaceAll(text, "&", "&amp;")
}

func requireValidQuestion(t *testing.T, q *Question) {
	t.Helper()

	require.NotNil(t, q)
	require.NotEmpty(t, q.CategoryName)
	require.NotEmpty(t, q.Text)
	require.GreaterOrEqual(t, len(q.Answers), 2)
	require.True(t, q.Answers[0].Correct)
	correct := 0
	for _, answer := range q.Answers {
		if answer.Correct {
			correct++
		}
	}
	require.Equal(t, 1, correct)
	if q.Type == QuestionTypeBoolean {
		require.Len(t, q.Answers, 2)
	}
}

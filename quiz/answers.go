// SPDX-License-Identifier: ice License 1.0

package quiz

import (
	"math/rand"

	"github.com/ice-blockchain/inquisitive/opentdb"
	"github.com/ice-blockchain/wintr/time"
)

// NewAnswerSet expects answers in construction order, with the correct one first.
// Two answers (true/false) keep their order, anything else is shuffled.
// The given slice is not modified.
func NewAnswerSet(answers []*opentdb.Answer) *AnswerSet {
	return newAnswerSet(answers, rand.New(rand.NewSource(time.Now().UnixNano())).Shuffle) //nolint:gosec // .
}

func newAnswerSet(answers []*opentdb.Answer, shuffle shuffleFunc) *AnswerSet {
	set := &AnswerSet{Answers: append(make([]*opentdb.Answer, 0, len(answers)), answers...)}
	if len(set.Answers) == booleanAnswers {
		return set
	}
	shuffle(len(set.Answers), func(ii, jj int) {
		set.Answers[ii], set.Answers[jj] = set.Answers[jj], set.Answers[ii]
		switch set.correct {
		case ii:
			set.correct = jj
		case jj:
			set.correct = ii
		}
	})

	return set
}

func (s *AnswerSet) Correct() *opentdb.Answer {
	if len(s.Answers) == 0 {
		return nil
	}

	return s.Answers[s.correct]
}

func (s *AnswerSet) CorrectIndex() int {
	return s.correct
}

func (s *AnswerSet) IsCorrect(index int) bool {
	return index == s.correct && index < len(s.Answers)
}

func (s *AnswerSet) Len() int {
	return len(s.Answers)
}

// Letter is the label an answer is presented with: A, B, C or D.
func Letter(index int) string {
	if index < 0 || index >= len(letters) {
		return ""
	}

	return letters[index]
}

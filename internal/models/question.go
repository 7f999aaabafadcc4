package models

import (
	"fmt"
	"strings"
)

// Answer is a single selectable answer within a question. NextQuestionID
// supports branching flows; this service stores it opaquely and never
// traverses it.
type Answer struct {
	AnswerID       string  `json:"answerId" bson:"answerId"`
	AnswerText     string  `json:"answerText" bson:"answerText"`
	NextQuestionID *string `json:"nextQuestionId,omitempty" bson:"nextQuestionId,omitempty"`
}

// Question is the stored preference/question document. Identity is the
// (brandId, questionId, locale) triple, enforced through upsert filters rather
// than a unique index. The Mongo _id is excluded from every read projection
// and never serialized back to clients.
type Question struct {
	BrandID       string   `json:"brandId" bson:"brandId"`
	QuestionID    string   `json:"questionId" bson:"questionId"`
	Locale        string   `json:"locale" bson:"locale"`
	IsMultiSelect *bool    `json:"isMultiSelect" bson:"isMultiSelect"`
	QuestionText  string   `json:"questionText" bson:"questionText"`
	Answers       []Answer `json:"answers" bson:"answers"`
}

// MissingIdentityFields returns the display names of absent identity keys, in
// the order Brand ID, Question ID, Locale.
func (q *Question) MissingIdentityFields() []string {
	missing := []string{}
	if strings.TrimSpace(q.BrandID) == "" {
		missing = append(missing, "Brand ID")
	}
	if strings.TrimSpace(q.QuestionID) == "" {
		missing = append(missing, "Question ID")
	}
	if strings.TrimSpace(q.Locale) == "" {
		missing = append(missing, "Locale")
	}
	return missing
}

// ValidateDocument enforces the stored-record invariant: the identity triple,
// questionText, and isMultiSelect must be present, and every answer needs an
// answerId and answerText.
func (q *Question) ValidateDocument() error {
	if missing := q.MissingIdentityFields(); len(missing) > 0 {
		return fmt.Errorf("document is missing %s", strings.Join(missing, ", "))
	}
	if strings.TrimSpace(q.QuestionText) == "" {
		return fmt.Errorf("document is missing questionText")
	}
	if q.IsMultiSelect == nil {
		return fmt.Errorf("document is missing isMultiSelect")
	}
	for i, a := range q.Answers {
		if strings.TrimSpace(a.AnswerID) == "" {
			return fmt.Errorf("answers[%d] is missing answerId", i)
		}
		if strings.TrimSpace(a.AnswerText) == "" {
			return fmt.Errorf("answers[%d] is missing answerText", i)
		}
	}
	return nil
}

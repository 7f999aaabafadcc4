package api

import (
	"context"

	"github.com/expomadeinworld/preference-service/internal/models"
)

// QuestionStore is the persistence surface for preference/question documents.
// Methods returning (*models.Question, error) yield (nil, nil) when no
// document matched, so handlers can distinguish "not found" from store errors.
type QuestionStore interface {
	UpsertQuestion(ctx context.Context, q models.Question) (*models.Question, error)
	UpdateQuestion(ctx context.Context, q models.Question) (*models.Question, error)
	FindPreferences(ctx context.Context, brandID, locale string) ([]models.Question, error)
	PreferenceExists(ctx context.Context, brandID, locale string) (bool, error)
	DeletePreference(ctx context.Context, brandID, locale string) (*models.Question, error)
	FindQuestions(ctx context.Context, brandID, locale string) ([]models.Question, error)
	QuestionExists(ctx context.Context, brandID, locale string) (bool, error)
	AllQuestions(ctx context.Context) ([]models.Question, error)
	DeleteQuestionByBrand(ctx context.Context, brandID string) (*models.Question, error)
}

// ReferenceStore reads the brand and market reference collections.
type ReferenceStore interface {
	BrandExists(ctx context.Context, brandID string) (bool, error)
	LocaleExists(ctx context.Context, locale string) (bool, error)
}

// Store is the full document-store surface the handlers consume.
type Store interface {
	QuestionStore
	ReferenceStore
}

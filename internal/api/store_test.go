package api

import (
	"context"
	"errors"
	"sync"

	"github.com/expomadeinworld/preference-service/internal/logging"
	"github.com/expomadeinworld/preference-service/internal/models"
	"github.com/gin-gonic/gin"
)

// memoryStore is an in-memory Store used by the handler tests.
type memoryStore struct {
	mu      sync.RWMutex
	docs    []models.Question
	brands  map[string]bool
	locales map[string]bool

	// failing makes every method return an error, simulating an
	// unreachable document store.
	failing bool
}

var errStoreDown = errors.New("store unreachable")

func newMemoryStore() *memoryStore {
	return &memoryStore{
		brands:  map[string]bool{},
		locales: map[string]bool{},
	}
}

func (s *memoryStore) addBrand(id string)     { s.brands[id] = true }
func (s *memoryStore) addLocale(tag string)   { s.locales[tag] = true }
func (s *memoryStore) seed(q models.Question) { s.docs = append(s.docs, q) }

func (s *memoryStore) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func (s *memoryStore) BrandExists(_ context.Context, brandID string) (bool, error) {
	if s.failing {
		return false, errStoreDown
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brands[brandID], nil
}

func (s *memoryStore) LocaleExists(_ context.Context, locale string) (bool, error) {
	if s.failing {
		return false, errStoreDown
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locales[locale], nil
}

func (s *memoryStore) UpsertQuestion(_ context.Context, q models.Question) (*models.Question, error) {
	if s.failing {
		return nil, errStoreDown
	}
	if err := q.ValidateDocument(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.docs {
		if d.BrandID == q.BrandID && d.QuestionID == q.QuestionID && d.Locale == q.Locale {
			s.docs[i] = q
			return &q, nil
		}
	}
	s.docs = append(s.docs, q)
	return &q, nil
}

func (s *memoryStore) UpdateQuestion(_ context.Context, q models.Question) (*models.Question, error) {
	if s.failing {
		return nil, errStoreDown
	}
	if err := q.ValidateDocument(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.docs {
		if d.BrandID == q.BrandID && d.QuestionID == q.QuestionID && d.Locale == q.Locale {
			s.docs[i] = q
			return &q, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) FindPreferences(_ context.Context, brandID, locale string) ([]models.Question, error) {
	if s.failing {
		return nil, errStoreDown
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Question, 0)
	for _, d := range s.docs {
		if d.BrandID == brandID && d.Locale == locale {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *memoryStore) PreferenceExists(_ context.Context, brandID, locale string) (bool, error) {
	if s.failing {
		return false, errStoreDown
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.docs {
		if d.BrandID == brandID && d.Locale == locale {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryStore) DeletePreference(_ context.Context, brandID, locale string) (*models.Question, error) {
	if s.failing {
		return nil, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.docs {
		if d.BrandID == brandID && d.Locale == locale {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return &d, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) FindQuestions(_ context.Context, brandID, locale string) ([]models.Question, error) {
	if s.failing {
		return nil, errStoreDown
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Question, 0)
	for _, d := range s.docs {
		if d.BrandID != brandID {
			continue
		}
		if locale != "" && d.Locale != locale {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *memoryStore) QuestionExists(ctx context.Context, brandID, locale string) (bool, error) {
	return s.PreferenceExists(ctx, brandID, locale)
}

func (s *memoryStore) AllQuestions(_ context.Context) ([]models.Question, error) {
	if s.failing {
		return nil, errStoreDown
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Question, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

func (s *memoryStore) DeleteQuestionByBrand(_ context.Context, brandID string) (*models.Question, error) {
	if s.failing {
		return nil, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.docs {
		if d.BrandID == brandID {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return &d, nil
		}
	}
	return nil, nil
}

// newTestRouter builds a router with the full route table mounted at the root.
func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(store, logging.NewNewRelicForwarder("", ""), "test")
	r := gin.New()
	RegisterRoutes(r, h)
	return r
}

func boolPtr(b bool) *bool { return &b }

func sampleQuestion(brandID, questionID, locale string) models.Question {
	return models.Question{
		BrandID:       brandID,
		QuestionID:    questionID,
		Locale:        locale,
		IsMultiSelect: boolPtr(false),
		QuestionText:  "How often do you wash?",
		Answers: []models.Answer{
			{AnswerID: "A1", AnswerText: "Daily"},
			{AnswerID: "A2", AnswerText: "Weekly"},
		},
	}
}

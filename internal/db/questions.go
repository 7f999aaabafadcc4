package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/expomadeinworld/preference-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Projection for preference reads: the document identity and the legacy
// schema-version field are internal and never leave the service. Question
// reads only hide the identity, that schema never carried a version field.
var (
	preferenceProjection = bson.M{"_id": 0, "__v": 0}
	questionProjection   = bson.M{"_id": 0}
)

func identityFilter(q models.Question) bson.M {
	return bson.M{
		"brandId":    q.BrandID,
		"questionId": q.QuestionID,
		"locale":     q.Locale,
	}
}

// UpsertQuestion creates or overwrites the document keyed by the
// (brandId, questionId, locale) triple and returns the post-write value.
func (d *Database) UpsertQuestion(ctx context.Context, q models.Question) (*models.Question, error) {
	if err := q.ValidateDocument(); err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(preferenceProjection)

	var saved models.Question
	err := d.questions.FindOneAndUpdate(ctx, identityFilter(q), bson.M{"$set": q}, opts).Decode(&saved)
	if err != nil {
		return nil, fmt.Errorf("upsert question: %w", err)
	}
	return &saved, nil
}

// UpdateQuestion overwrites an existing document keyed by the identity triple.
// It returns (nil, nil) when no document matched; there is no upsert here.
func (d *Database) UpdateQuestion(ctx context.Context, q models.Question) (*models.Question, error) {
	if err := q.ValidateDocument(); err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(preferenceProjection)

	var saved models.Question
	err := d.questions.FindOneAndUpdate(ctx, identityFilter(q), bson.M{"$set": q}, opts).Decode(&saved)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	return &saved, nil
}

// FindPreferences returns every document for the (brandId, locale) pair with
// internal fields stripped.
func (d *Database) FindPreferences(ctx context.Context, brandID, locale string) ([]models.Question, error) {
	filter := bson.M{"brandId": brandID, "locale": locale}
	cursor, err := d.questions.Find(ctx, filter, options.Find().SetProjection(preferenceProjection))
	if err != nil {
		return nil, fmt.Errorf("find preferences: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]models.Question, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return records, nil
}

// PreferenceExists probes for at least one document matching the pair.
func (d *Database) PreferenceExists(ctx context.Context, brandID, locale string) (bool, error) {
	n, err := d.questions.CountDocuments(ctx,
		bson.M{"brandId": brandID, "locale": locale},
		options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("preference existence probe: %w", err)
	}
	return n > 0, nil
}

// DeletePreference removes one document matching the (brandId, locale) pair
// and returns it, or (nil, nil) when nothing matched.
func (d *Database) DeletePreference(ctx context.Context, brandID, locale string) (*models.Question, error) {
	opts := options.FindOneAndDelete().SetProjection(preferenceProjection)

	var deleted models.Question
	err := d.questions.FindOneAndDelete(ctx, bson.M{"brandId": brandID, "locale": locale}, opts).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete preference: %w", err)
	}
	return &deleted, nil
}

// FindQuestions returns documents filtered by brandId, and additionally by
// locale when it is non-empty.
func (d *Database) FindQuestions(ctx context.Context, brandID, locale string) ([]models.Question, error) {
	filter := bson.M{"brandId": brandID}
	if locale != "" {
		filter["locale"] = locale
	}
	cursor, err := d.questions.Find(ctx, filter, options.Find().SetProjection(questionProjection))
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]models.Question, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return records, nil
}

// QuestionExists probes for at least one document with the given brandId and
// locale.
func (d *Database) QuestionExists(ctx context.Context, brandID, locale string) (bool, error) {
	n, err := d.questions.CountDocuments(ctx,
		bson.M{"brandId": brandID, "locale": locale},
		options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("question existence probe: %w", err)
	}
	return n > 0, nil
}

// AllQuestions returns the entire collection with identity stripped.
func (d *Database) AllQuestions(ctx context.Context) ([]models.Question, error) {
	cursor, err := d.questions.Find(ctx, bson.M{}, options.Find().SetProjection(questionProjection))
	if err != nil {
		return nil, fmt.Errorf("find all questions: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]models.Question, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode all questions: %w", err)
	}
	return records, nil
}

// DeleteQuestionByBrand removes a single document matching the brandId, even
// when several locales share it, and returns the removed document or
// (nil, nil) when nothing matched.
func (d *Database) DeleteQuestionByBrand(ctx context.Context, brandID string) (*models.Question, error) {
	opts := options.FindOneAndDelete().SetProjection(questionProjection)

	var deleted models.Question
	err := d.questions.FindOneAndDelete(ctx, bson.M{"brandId": brandID}, opts).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete question: %w", err)
	}
	return &deleted, nil
}

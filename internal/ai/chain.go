package ai

import (
	"context"
	"errors"
	"fmt"

	"outreach-server/internal/observability"
)

// NamedGenerator pairs a generator with the name used in logs
type NamedGenerator struct {
	Name      string
	Generator ContentGenerator
}

// NamedClassifier pairs a classifier with the name used in logs
type NamedClassifier struct {
	Name       string
	Classifier Classifier
}

// GeneratorChain tries each generator in order and returns the first success
type GeneratorChain struct {
	logger     *observability.Logger
	generators []NamedGenerator
}

func NewGeneratorChain(logger *observability.Logger, generators ...NamedGenerator) *GeneratorChain {
	return &GeneratorChain{logger: logger, generators: generators}
}

func (c *GeneratorChain) GenerateApplication(ctx context.Context, req ApplicationRequest) (Content, error) {
	if len(c.generators) == 0 {
		return Content{}, ErrNoProvider
	}
	var errs []error
	for _, g := range c.generators {
		content, err := g.Generator.GenerateApplication(ctx, req)
		if err == nil {
			return content, nil
		}
		pctx := observability.WithFields(ctx, observability.Field{Key: "provider", Value: g.Name})
		c.logger.WarnWithError(pctx, "content provider failed, trying next", err)
		errs = append(errs, fmt.Errorf("%s: %w", g.Name, err))
		if ctx.Err() != nil {
			break
		}
	}
	return Content{}, errors.Join(errs...)
}

// ClassifierChain tries each classifier in order and returns the first success
type ClassifierChain struct {
	logger      *observability.Logger
	classifiers []NamedClassifier
}

func NewClassifierChain(logger *observability.Logger, classifiers ...NamedClassifier) *ClassifierChain {
	return &ClassifierChain{logger: logger, classifiers: classifiers}
}

func (c *ClassifierChain) Classify(ctx context.Context, req ClassificationRequest) (Classification, error) {
	if len(c.classifiers) == 0 {
		return Classification{}, ErrNoProvider
	}
	var errs []error
	for _, cl := range c.classifiers {
		result, err := cl.Classifier.Classify(ctx, req)
		if err == nil {
			return result, nil
		}
		pctx := observability.WithFields(ctx, observability.Field{Key: "provider", Value: cl.Name})
		c.logger.WarnWithError(pctx, "classifier failed, trying next", err)
		errs = append(errs, fmt.Errorf("%s: %w", cl.Name, err))
		if ctx.Err() != nil {
			break
		}
	}
	return Classification{}, errors.Join(errs...)
}

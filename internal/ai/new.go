package ai

import (
	"outreach-server/internal/config"
	"outreach-server/internal/observability"
)

// NewContentGenerator builds the provider chain for application content.
// Providers without an API key are left out; the chain may be empty, in which
// case callers fall back to FallbackTemplate.
func NewContentGenerator(logger *observability.Logger, cfg config.AIConfig) *GeneratorChain {
	var generators []NamedGenerator
	if cfg.GoogleAIAPIKey != "" {
		generators = append(generators, NamedGenerator{Name: "gemini", Generator: NewGemini(logger, cfg.GoogleAIAPIKey, cfg.GeminiModel)})
	}
	if cfg.OpenAIAPIKey != "" {
		generators = append(generators, NamedGenerator{Name: "openai", Generator: NewOpenAI(logger, cfg.OpenAIAPIKey, cfg.OpenAIModel)})
	}
	return NewGeneratorChain(logger, generators...)
}

// NewClassifier builds the reply classifier chain ending with the keyword heuristic
func NewClassifier(logger *observability.Logger, cfg config.AIConfig) *ClassifierChain {
	var classifiers []NamedClassifier
	if cfg.GoogleAIAPIKey != "" {
		classifiers = append(classifiers, NamedClassifier{Name: "gemini", Classifier: NewGemini(logger, cfg.GoogleAIAPIKey, cfg.GeminiModel)})
	}
	if cfg.OpenAIAPIKey != "" {
		classifiers = append(classifiers, NamedClassifier{Name: "openai", Classifier: NewOpenAI(logger, cfg.OpenAIAPIKey, cfg.OpenAIModel)})
	}
	classifiers = append(classifiers, NamedClassifier{Name: "keyword", Classifier: KeywordClassifier{}})
	return NewClassifierChain(logger, classifiers...)
}

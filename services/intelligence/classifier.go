package intelligence

import (
	"context"
	"errors"
	"time"

	"jeevanrakshak/models"

	"go.uber.org/zap"
)

// DefaultClassifierTimeout bounds a single classification call.
const DefaultClassifierTimeout = 8 * time.Second

var errUnparseable = errors.New("no priority token in model response")

// PriorityClassifier labels new complaints. The model call is best effort:
// every failure path ends in the urgency fallback, so Classify always returns
// a usable priority.
type PriorityClassifier struct {
	gen     TextGenerator
	timeout time.Duration
	logger  *zap.Logger
}

// NewPriorityClassifier returns a classifier. A nil gen disables the model
// call; a non-positive timeout selects DefaultClassifierTimeout.
func NewPriorityClassifier(gen TextGenerator, timeout time.Duration, logger *zap.Logger) *PriorityClassifier {
	if timeout <= 0 {
		timeout = DefaultClassifierTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriorityClassifier{gen: gen, timeout: timeout, logger: logger}
}

// Classify makes one attempt against the model and falls back on any error,
// timeout or answer without a priority token.
func (c *PriorityClassifier) Classify(ctx context.Context, in models.ComplaintInput) models.ClassificationResult {
	priority, err := c.fromModel(ctx, in)
	if err == nil {
		return models.ClassificationResult{Priority: priority, Source: models.SourceModel}
	}

	fallback := FallbackPriority(in.UserUrgency)
	c.logger.Warn("priority classification unavailable, using fallback",
		zap.Error(err),
		zap.String("userUrgency", string(in.UserUrgency)),
		zap.String("priority", string(fallback)),
	)
	return models.ClassificationResult{Priority: fallback, Source: models.SourceFallback}
}

func (c *PriorityClassifier) fromModel(ctx context.Context, in models.ComplaintInput) (models.Priority, error) {
	if c.gen == nil {
		return "", errors.New("text generator not configured")
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.gen.GenerateContent(callCtx, BuildPriorityPrompt(in))
	if err != nil {
		return "", err
	}
	// Some clients ignore cancellation and answer late; a late answer is a timeout.
	if err := callCtx.Err(); err != nil {
		return "", err
	}

	priority, ok := ParsePriority(text)
	if !ok {
		return "", errUnparseable
	}
	return priority, nil
}

package sentiment

import (
	"context"
	"fmt"

	"tweet-sentiment/internal/model"

	"golang.org/x/sync/errgroup"
)

// ClassifyBatch classifies texts concurrently with at most workers in flight.
// Results keep the input order; the first failure cancels the rest.
func ClassifyBatch(ctx context.Context, c TextClassifier, texts []string, workers int) ([]model.ClassificationResult, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}
	results := make([]model.ClassificationResult, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, text := range texts {
		g.Go(func() error {
			res, err := c.Classify(ctx, text)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

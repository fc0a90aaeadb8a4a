package mock

import (
	"context"

	"github.com/artmark/artmark"
)

var _ artmark.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of artmark.DocumentStore.
type DocumentStore struct {
	SaveFn func(ctx context.Context, doc *artmark.Document, prompt string) (*artmark.SaveResult, error)
}

func (s *DocumentStore) Save(ctx context.Context, doc *artmark.Document, prompt string) (*artmark.SaveResult, error) {
	return s.SaveFn(ctx, doc, prompt)
}

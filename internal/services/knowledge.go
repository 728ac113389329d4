package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/evalai/evalai-backend/internal/domain"
)

// Extractor converts an uploaded document into plain text. The filename's
// extension selects the decoder.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// KnowledgeStore is the record-store contract required by KnowledgeService.
type KnowledgeStore interface {
	Knowledge(ctx context.Context) ([]domain.KnowledgeItem, error)
	SaveKnowledge(ctx context.Context, items []domain.KnowledgeItem) error
}

// KnowledgeService manages the reference-document collection.
type KnowledgeService struct {
	Store     KnowledgeStore
	Extractor Extractor
}

// NewKnowledgeService constructs a KnowledgeService.
func NewKnowledgeService(store KnowledgeStore, ex Extractor) *KnowledgeService {
	return &KnowledgeService{Store: store, Extractor: ex}
}

// NewKnowledge carries the metadata and raw upload for item creation.
type NewKnowledge struct {
	Name        string
	Description string
	Tags        []string
	CompanyID   string
	FileName    string
	Data        []byte
}

// Create extracts text from the upload and prepends the resulting item to the
// collection, newest first. An empty CompanyID defaults to the GLOBAL scope.
// Extraction failures abort the operation; nothing is stored.
func (s *KnowledgeService) Create(ctx context.Context, in NewKnowledge) (*domain.KnowledgeItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: knowledge item name is required", ErrValidation)
	}
	if len(in.Data) == 0 {
		return nil, fmt.Errorf("%w: a document file is required", ErrValidation)
	}
	if in.CompanyID == "" {
		in.CompanyID = domain.CompanyGlobal
	}

	content, err := s.Extractor.Extract(in.FileName, in.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: document yielded no text", ErrExtraction)
	}

	items, err := s.Store.Knowledge(ctx)
	if err != nil {
		return nil, err
	}
	item := domain.KnowledgeItem{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Tags:        normalizeTags(in.Tags),
		CompanyID:   in.CompanyID,
		Content:     content,
		FileName:    in.FileName,
	}
	if err := s.Store.SaveKnowledge(ctx, append([]domain.KnowledgeItem{item}, items...)); err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns the whole collection in stored (newest-first) order.
func (s *KnowledgeService) List(ctx context.Context) ([]domain.KnowledgeItem, error) {
	return s.Store.Knowledge(ctx)
}

// Get returns one knowledge item by id.
func (s *KnowledgeService) Get(ctx context.Context, id string) (*domain.KnowledgeItem, error) {
	items, err := s.Store.Knowledge(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, ErrKnowledgeNotFound
}

// Delete removes one item. Evaluations generated from it keep their
// knowledgeItemId and continue to work; only new generation is affected.
func (s *KnowledgeService) Delete(ctx context.Context, id string) error {
	items, err := s.Store.Knowledge(ctx)
	if err != nil {
		return err
	}
	kept := items[:0:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrKnowledgeNotFound
	}
	return s.Store.SaveKnowledge(ctx, kept)
}

// normalizeTags trims entries and drops empties, preserving order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

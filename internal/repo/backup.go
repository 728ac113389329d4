// Package repo implements the record store. This file provides whole-database
// backup export and import.
//
// The export is a single JSON object mapping each present storage key to its
// stored document. Import parses such an object and writes every key back
// verbatim: no shape validation, no merge, straight overwrite. That mirrors
// the original client's behavior, where a backup restore replaces whatever is
// in storage.
package repo

import (
	"context"
	"encoding/json"
)

// ExportAll serializes every present storage key into one pretty-printed JSON
// object. Keys with no stored value are omitted, like the original export.
func (s *Store) ExportAll(ctx context.Context) ([]byte, error) {
	backup := make(map[string]json.RawMessage, len(CollectionKeys))
	for _, key := range CollectionKeys {
		raw, ok, err := s.GetRaw(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			backup[key] = json.RawMessage(raw)
		}
	}
	return json.MarshalIndent(backup, "", "  ")
}

// ImportAll parses a backup produced by ExportAll (or the original client)
// and writes each contained key back verbatim. A parse failure leaves the
// store untouched; a write failure may leave a partial import, matching the
// original's per-key overwrite loop.
func (s *Store) ImportAll(ctx context.Context, data []byte) error {
	var backup map[string]json.RawMessage
	if err := json.Unmarshal(data, &backup); err != nil {
		return err
	}
	for key, raw := range backup {
		if err := s.PutRaw(ctx, key, string(raw)); err != nil {
			return err
		}
	}
	return nil
}

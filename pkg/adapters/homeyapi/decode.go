package homeyapi

import (
	"encoding/json"
	"fmt"
	"io"
)

// decodeCollection reads either a JSON array or an id-keyed JSON object into
// a slice, keeping document order. The controller answers list endpoints with
// objects keyed by id, and a plain map would lose that order.
func decodeCollection[T any](r io.Reader) ([]T, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}

	out := make([]T, 0)
	switch tok {
	case json.Delim('['):
		for dec.More() {
			var v T
			if err := dec.Decode(&v); err != nil {
				return nil, fmt.Errorf("decode collection item: %w", err)
			}
			out = append(out, v)
		}
	case json.Delim('{'):
		for dec.More() {
			if _, err := dec.Token(); err != nil { // key
				return nil, fmt.Errorf("decode collection key: %w", err)
			}
			var v T
			if err := dec.Decode(&v); err != nil {
				return nil, fmt.Errorf("decode collection item: %w", err)
			}
			out = append(out, v)
		}
	case nil:
		return out, nil
	default:
		return nil, fmt.Errorf("decode collection: unexpected token %v", tok)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	return out, nil
}

package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
)

// DecodeJSON reads sample records from JSON.
// The document is either an array of objects or a single object.
// Key order is preserved.
func DecodeJSON(r io.Reader) (models.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return models.Dataset{}, nil
	}

	switch data[0] {
	case '{':
		var rec models.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
		return models.Dataset{rec}, nil
	case '[':
		var ds models.Dataset
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, err
		}
		return compact(ds), nil
	}
	return nil, fmt.Errorf("expected a JSON array or object, got %q", data[0])
}

// compact drops null entries so every record is a usable field template.
func compact(ds models.Dataset) models.Dataset {
	out := make(models.Dataset, 0, len(ds))
	for _, rec := range ds {
		if rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

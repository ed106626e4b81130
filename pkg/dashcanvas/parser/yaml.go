package parser

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
)

// DecodeYAML reads sample records from YAML.
// The document is either a sequence of mappings or a single mapping.
// Key order is preserved.
func DecodeYAML(r io.Reader) (models.Dataset, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Dataset{}, nil
		}
		return nil, err
	}
	if len(doc.Content) == 0 {
		return models.Dataset{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		var rec models.Record
		if err := root.Decode(&rec); err != nil {
			return nil, err
		}
		return models.Dataset{rec}, nil
	case yaml.SequenceNode:
		var ds models.Dataset
		if err := root.Decode(&ds); err != nil {
			return nil, err
		}
		return compact(ds), nil
	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return models.Dataset{}, nil
		}
	}
	return nil, fmt.Errorf("line %d: expected a YAML sequence or mapping", root.Line)
}

package database

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Rana718/nitrix/internal/types"
)

// LoadFile parses a schema document. JSON is accepted as a subset of YAML.
//
//	tables:
//	  - name: users
//	    columns:
//	      - {name: id, type: INTEGER, nullable: false}
//	    rows:
//	      - {id: 1}
func LoadFile(path string) (*types.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return ParseSchema(data)
}

func ParseSchema(data []byte) (*types.Schema, error) {
	var schema types.Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}
	for i, table := range schema.Tables {
		if table.Name == "" {
			return nil, fmt.Errorf("failed to parse schema file: table %d has no name", i)
		}
	}
	return &schema, nil
}

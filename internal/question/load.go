package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSeed reads, parses, and validates a question seed file.
func LoadSeed(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read question seed: %w", err)
	}
	seed, err := parseSeed(data, path)
	if err != nil {
		return Seed{}, err
	}
	normalized, err := NormalizeSeed(seed)
	if err != nil {
		return Seed{}, err
	}
	return normalized, nil
}

func parseSeed(data []byte, path string) (Seed, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONSeed(data)
	}
	return parseYAMLSeed(data)
}

func parseJSONSeed(data []byte) (Seed, error) {
	var seed Seed
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&seed); err != nil {
		return Seed{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Seed{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Seed{}, fmt.Errorf("parse json: %w", err)
	}
	return seed, nil
}

func parseYAMLSeed(data []byte) (Seed, error) {
	var seed Seed
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		return Seed{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Seed{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Seed{}, fmt.Errorf("parse yaml: %w", err)
	}
	return seed, nil
}

package pokemon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoRecords is returned when a file holds an empty array.
var ErrNoRecords = errors.New("no pokemon records")

// Decode reads a single Pokémon JSON object.
func Decode(r io.Reader) (*Pokemon, error) {
	var p Pokemon
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode pokemon: %w", err)
	}
	return &p, nil
}

// Parse decodes either a single Pokémon object or an array of them.
func Parse(data []byte) ([]Pokemon, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []Pokemon
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("decode pokemon list: %w", err)
		}
		if len(list) == 0 {
			return nil, ErrNoRecords
		}
		return list, nil
	}

	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return []Pokemon{*p}, nil
}

// LoadFile reads Pokémon records from a JSON file on disk.
func LoadFile(path string) ([]Pokemon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

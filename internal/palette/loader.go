package palette

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// Load decodes a JSON table from the embedded files.
func Load[T any](filename string) (T, error) {
	return loadFrom[T](dataFS, filename)
}

// MustLoad is Load for tables the program cannot draw without.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

func loadFrom[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}
	return result, nil
}

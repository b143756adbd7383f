package board

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlBoardFile is the top-level YAML structure for board files.
type yamlBoardFile struct {
	Board yamlBoard `yaml:"board"`
}

// yamlBoard is the YAML representation of a board.
type yamlBoard struct {
	Name        string     `yaml:"name"`
	FinalSquare int        `yaml:"final_square"`
	Jumps       []yamlJump `yaml:"jumps"`
}

// yamlJump is the YAML representation of a ladder or snake.
type yamlJump struct {
	Square int `yaml:"square"`
	Offset int `yaml:"offset"`
}

// LoadFromFile reads and validates a single board YAML file.
//
// Precondition: path must point to a valid YAML board file.
// Postcondition: Returns a validated Board or a non-nil error.
func LoadFromFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a board from YAML bytes.
//
// Postcondition: Returns a validated Board or a non-nil error.
func LoadFromBytes(data []byte) (*Board, error) {
	var file yamlBoardFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing board YAML: %w", err)
	}

	jumps := make([]Jump, 0, len(file.Board.Jumps))
	for _, yj := range file.Board.Jumps {
		jumps = append(jumps, Jump{Square: yj.Square, Offset: yj.Offset})
	}
	b, err := New(file.Board.Name, file.Board.FinalSquare, jumps)
	if err != nil {
		return nil, fmt.Errorf("validating board: %w", err)
	}
	return b, nil
}

// LoadFromDir loads every YAML file in dir, keyed by board name.
//
// Postcondition: Returns all validated boards or the first error encountered.
func LoadFromDir(dir string) (map[string]*Board, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading board directory %s: %w", dir, err)
	}

	boards := make(map[string]*Board)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		b, err := LoadFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading board from %s: %w", name, err)
		}
		if _, dup := boards[b.Name]; dup {
			return nil, fmt.Errorf("loading board from %s: duplicate board name %q", name, b.Name)
		}
		boards[b.Name] = b
	}

	if len(boards) == 0 {
		return nil, fmt.Errorf("no board files found in %s", dir)
	}
	return boards, nil
}

package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrclaudee/quizz-app/internal/models"

	"gopkg.in/yaml.v2"
)

// Entry is one question in a seed file. The options list holds up to four
// choices.
type Entry struct {
	Title      string   `yaml:"title" json:"title"`
	Category   string   `yaml:"category" json:"category"`
	Options    []string `yaml:"options" json:"options"`
	Answer     string   `yaml:"answer" json:"answer"`
	Difficulty string   `yaml:"difficulty" json:"difficulty"`
}

type File struct {
	Questions []Entry `yaml:"questions" json:"questions"`
}

// Saver is the subset of the question service the importer needs.
type Saver interface {
	Save(ctx context.Context, q *models.Question) error
}

// Load reads a .yaml/.yml, .json or .csv seed file.
func Load(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(path, raw)
}

// Parse decodes data according to the extension of name.
func Parse(name string, data []byte) ([]Entry, error) {
	var (
		f   File
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		err = json.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".csv":
		return ParseCSV(data)
	default:
		return nil, fmt.Errorf("unsupported seed file type %q", filepath.Ext(name))
	}
	if err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return f.Questions, nil
}

func (e Entry) toQuestion() (models.Question, error) {
	if e.Title == "" || e.Category == "" || e.Answer == "" {
		return models.Question{}, fmt.Errorf("title, category and answer are required")
	}
	if len(e.Options) > 4 {
		return models.Question{}, fmt.Errorf("at most 4 options, got %d", len(e.Options))
	}
	opts := make([]string, 4)
	copy(opts, e.Options)
	return models.Question{
		QuestionTitle:   e.Title,
		Category:        e.Category,
		Option1:         opts[0],
		Option2:         opts[1],
		Option3:         opts[2],
		Option4:         opts[3],
		RightAnswer:     e.Answer,
		DifficultyLevel: e.Difficulty,
	}, nil
}

// Import saves every entry and returns how many were stored. It stops at
// the first invalid entry or storage error.
func Import(ctx context.Context, s Saver, entries []Entry) (int, error) {
	for i, e := range entries {
		q, err := e.toQuestion()
		if err != nil {
			return i, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := s.Save(ctx, &q); err != nil {
			return i, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return len(entries), nil
}

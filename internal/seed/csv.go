package seed

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mrclaudee/quizz-app/internal/models"
)

var csvHeader = []string{"category", "question", "option1", "option2", "option3", "option4", "answer", "difficulty"}

// ParseCSV reads rows in csvHeader order. The header row is required and
// every data row needs at least the seven columns up to answer.
func ParseCSV(data []byte) ([]Entry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV must have header + at least 1 row")
	}

	var entries []Entry
	for i, row := range records[1:] {
		if len(row) < 7 {
			// line numbers count the header
			return nil, fmt.Errorf("CSV row %d: want at least 7 columns, got %d", i+2, len(row))
		}
		e := Entry{
			Category: strings.TrimSpace(row[0]),
			Title:    strings.TrimSpace(row[1]),
			Answer:   strings.TrimSpace(row[6]),
		}
		for _, o := range row[2:6] {
			e.Options = append(e.Options, strings.TrimSpace(o))
		}
		if len(row) > 7 {
			e.Difficulty = strings.TrimSpace(row[7])
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func WriteCSV(w io.Writer, questions []models.Question) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, q := range questions {
		row := []string{
			q.Category, q.QuestionTitle,
			q.Option1, q.Option2, q.Option3, q.Option4,
			q.RightAnswer, q.DifficultyLevel,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FromQuestions is the inverse of Import's conversion, used for JSON export.
func FromQuestions(questions []models.Question) File {
	f := File{Questions: make([]Entry, 0, len(questions))}
	for _, q := range questions {
		f.Questions = append(f.Questions, Entry{
			Title:      q.QuestionTitle,
			Category:   q.Category,
			Options:    []string{q.Option1, q.Option2, q.Option3, q.Option4},
			Answer:     q.RightAnswer,
			Difficulty: q.DifficultyLevel,
		})
	}
	return f
}

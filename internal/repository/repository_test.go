package repository_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mrclaudee/quizz-app/internal/config"
	"github.com/mrclaudee/quizz-app/internal/database"
	"github.com/mrclaudee/quizz-app/internal/models"
	"github.com/mrclaudee/quizz-app/internal/repository"

	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seed(t *testing.T, repo *repository.GormQuestionRepository, category string, n int) []models.Question {
	t.Helper()
	out := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		q := models.Question{
			QuestionTitle:   fmt.Sprintf("%s q%d", category, i),
			Category:        category,
			Option1:         "A",
			Option2:         "B",
			Option3:         "C",
			Option4:         "D",
			RightAnswer:     "A",
			DifficultyLevel: "easy",
		}
		if err := repo.Save(context.Background(), &q); err != nil {
			t.Fatalf("save: %v", err)
		}
		out = append(out, q)
	}
	return out
}

func TestSaveAndFindByCategory(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(openDB(t))
	seed(t, repo, "history", 2)

	q := models.Question{QuestionTitle: "Speed of light?", Category: "science", RightAnswer: "c"}
	if err := repo.Save(ctx, &q); err != nil {
		t.Fatalf("save: %v", err)
	}
	if q.ID == 0 {
		t.Fatal("expected id to be assigned")
	}

	got, err := repo.FindByCategory(ctx, "science")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 1 || got[0].ID != q.ID {
		t.Fatalf("got %+v, want exactly question %d", got, q.ID)
	}

	none, err := repo.FindByCategory(ctx, "Science")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("category match must be exact, got %d rows", len(none))
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(openDB(t))
	qs := seed(t, repo, "math", 1)

	updated := qs[0]
	updated.QuestionTitle = "changed"
	if err := repo.Save(ctx, &updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != qs[0].ID {
		t.Fatalf("id changed from %d to %d", qs[0].ID, updated.ID)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 1 || all[0].QuestionTitle != "changed" {
		t.Fatalf("unexpected rows: %+v", all)
	}
}

func TestSaveUnknownIDInsertsUnderNewKey(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(openDB(t))
	qs := seed(t, repo, "math", 2)

	ghost := models.Question{ID: qs[1].ID + 1, QuestionTitle: "update of missing row", Category: "math", RightAnswer: "B"}
	if err := repo.Save(ctx, &ghost); err != nil {
		t.Fatalf("update of unknown id: %v", err)
	}
	if ghost.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	added := models.Question{QuestionTitle: "added later", Category: "math", RightAnswer: "C"}
	if err := repo.Save(ctx, &added); err != nil {
		t.Fatalf("add after update of unknown id: %v", err)
	}
	if added.ID == ghost.ID {
		t.Fatalf("add reused id %d", added.ID)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d questions, want 4", len(all))
	}
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(openDB(t))
	qs := seed(t, repo, "art", 2)

	if err := repo.DeleteByID(ctx, qs[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteByID(ctx, 9999); err != nil {
		t.Fatalf("deleting a missing id should be a no-op, got %v", err)
	}

	all, _ := repo.FindAll(ctx)
	if len(all) != 1 || all[0].ID != qs[1].ID {
		t.Fatalf("unexpected rows after delete: %+v", all)
	}
}

func TestDeleteReferencedQuestionFails(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	questions := repository.NewQuestionRepository(db)
	quizzes := repository.NewQuizRepository(db)
	qs := seed(t, questions, "geo", 2)

	if err := quizzes.Create(ctx, &models.Quiz{Title: "Geo"}, qs); err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	err := questions.DeleteByID(ctx, qs[0].ID)
	if !errors.Is(err, repository.ErrInUse) {
		t.Fatalf("got %v, want ErrInUse", err)
	}
}

func TestFindRandomByCategory(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(openDB(t))
	seed(t, repo, "science", 8)
	seed(t, repo, "sport", 3)

	got, err := repo.FindRandomByCategory(ctx, "science", 5)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d questions, want 5", len(got))
	}
	seen := map[uint]bool{}
	for _, q := range got {
		if q.Category != "science" {
			t.Errorf("question %d has category %q", q.ID, q.Category)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question %d", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestFindRandomByCategoryShortCategory(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(openDB(t))
	seed(t, repo, "sport", 3)

	got, err := repo.FindRandomByCategory(ctx, "sport", 10)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d, want all 3 available", len(got))
	}

	empty, err := repo.FindRandomByCategory(ctx, "nothing", 4)
	if err != nil || len(empty) != 0 {
		t.Fatalf("got %v, %v; want empty", empty, err)
	}
}

func TestFindRandomByCategoryKeepsShuffledOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(openDB(t))
	qs := seed(t, repo, "music", 4)

	// reverse instead of shuffling
	repo.WithShuffle(func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	})

	got, err := repo.FindRandomByCategory(ctx, "music", 3)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	want := []uint{qs[3].ID, qs[2].ID, qs[1].ID}
	for i, q := range got {
		if q.ID != want[i] {
			t.Fatalf("position %d: got %d, want %d", i, q.ID, want[i])
		}
	}
}

func TestQuizCreateAndFindByIDPreservesOrder(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	questions := repository.NewQuestionRepository(db)
	quizzes := repository.NewQuizRepository(db)
	qs := seed(t, questions, "film", 3)

	ordered := []models.Question{qs[2], qs[0], qs[1]}
	quiz := &models.Quiz{Title: "Films"}
	if err := quizzes.Create(ctx, quiz, ordered); err != nil {
		t.Fatalf("create: %v", err)
	}
	if quiz.ID == 0 {
		t.Fatal("expected quiz id")
	}

	loaded, err := quizzes.FindByID(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if loaded.Title != "Films" {
		t.Errorf("title = %q", loaded.Title)
	}
	got := loaded.Questions()
	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}
	for i := range ordered {
		if got[i].ID != ordered[i].ID || got[i].RightAnswer != "A" {
			t.Fatalf("position %d: got %+v, want id %d", i, got[i], ordered[i].ID)
		}
	}
}

func TestQuizFindByIDMissing(t *testing.T) {
	quizzes := repository.NewQuizRepository(openDB(t))
	if _, err := quizzes.FindByID(context.Background(), 42); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

package database

import (
	"testing"

	"github.com/mrclaudee/quizz-app/internal/config"
	"github.com/mrclaudee/quizz-app/internal/models"
)

func TestSQLiteDSN(t *testing.T) {
	cases := []struct{ in, want string }{
		{"quiz.db", "quiz.db?_pragma=foreign_keys(1)"},
		{"file:x?mode=memory&cache=shared", "file:x?mode=memory&cache=shared&_pragma=foreign_keys(1)"},
	}
	for _, tc := range cases {
		if got := SQLiteDSN(tc.in); got != tc.want {
			t.Errorf("SQLiteDSN(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConnectAndMigrateSQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", DBPath: "file:dbtest?mode=memory&cache=shared"}
	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	if err := Ping(db); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	for _, m := range []interface{}{&models.Question{}, &models.Quiz{}, &models.QuizQuestion{}} {
		if !db.Migrator().HasTable(m) {
			t.Errorf("missing table for %T", m)
		}
	}
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	if _, err := Connect(&config.Config{DBDriver: "oracle"}); err == nil {
		t.Fatal("expected error")
	}
}

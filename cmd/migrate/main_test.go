package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitSQLBreaksOnSemicolons(t *testing.T) {
	statements := splitSQL("CREATE TABLE a (\n  id bigint\n);\n-- a comment\nINSERT INTO a VALUES (1);\n")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(statements))
	}
	if !strings.Contains(statements[0], "CREATE TABLE a") {
		t.Errorf("first statement = %q", statements[0])
	}
	if strings.Contains(statements[1], "comment") {
		t.Errorf("comment lines should be dropped, got %q", statements[1])
	}
}

func TestInitMigrationTimestampDefault(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	sqlText := string(content)

	// occurred_at must be assigned at INSERT time, while the account row lock
	// is held. now() is captured at BEGIN, before the lock wait, and would let
	// occurred_at run backwards relative to seq under contention.
	if !strings.Contains(sqlText, "occurred_at timestamptz NOT NULL DEFAULT clock_timestamp()") {
		t.Fatal("occurred_at must default to clock_timestamp()")
	}
	if strings.Contains(sqlText, "occurred_at timestamptz NOT NULL DEFAULT now()") {
		t.Fatal("occurred_at must not default to now()")
	}
}

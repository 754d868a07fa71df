package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApply(t *testing.T) {
	db := openTestDB(t)
	migrationFS := fstest.MapFS{
		"001_init.sql":      {Data: []byte(`CREATE TABLE notes (id TEXT PRIMARY KEY);`)},
		"002_add_title.sql": {Data: []byte(`ALTER TABLE notes ADD COLUMN title TEXT;`)},
		"ignore_me.txt":     {Data: []byte(`not a migration`)},
	}

	runner := NewRunner(db, migrationFS)
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}
	if applied != 2 {
		t.Errorf("Apply() applied %d migrations, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() unexpected error: %v", err)
	}
	if version != 2 {
		t.Errorf("CurrentVersion() = %d, want 2", version)
	}

	// Second run is a no-op
	applied, err = runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply() unexpected error: %v", err)
	}
	if applied != 0 {
		t.Errorf("second Apply() applied %d migrations, want 0", applied)
	}
}

func TestApply_RollsBackFailedMigration(t *testing.T) {
	db := openTestDB(t)
	migrationFS := fstest.MapFS{
		"001_init.sql": {Data: []byte(`CREATE TABLE notes (id TEXT PRIMARY KEY);`)},
		"002_bad.sql":  {Data: []byte(`THIS IS NOT SQL;`)},
	}

	runner := NewRunner(db, migrationFS)
	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("Apply() expected error for invalid SQL")
	}
	if applied != 1 {
		t.Errorf("Apply() applied %d migrations before failing, want 1", applied)
	}

	// The failed migration must not bump the version
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() unexpected error: %v", err)
	}
	if version != 1 {
		t.Errorf("CurrentVersion() = %d, want 1", version)
	}
}

func TestReadMigrationFiles_RejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "no version prefix", file: "init.sql"},
		{name: "non numeric version", file: "abc_init.sql"},
		{name: "zero version", file: "000_init.sql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(openTestDB(t), fstest.MapFS{
				tt.file: {Data: []byte(`SELECT 1;`)},
			})
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Errorf("ReadMigrationFiles() expected error for %s", tt.file)
			}
		})
	}
}

func TestReadMigrationFiles_RejectsDuplicateVersions(t *testing.T) {
	runner := NewRunner(openTestDB(t), fstest.MapFS{
		"001_first.sql":  {Data: []byte(`SELECT 1;`)},
		"001_second.sql": {Data: []byte(`SELECT 1;`)},
	})
	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("ReadMigrationFiles() expected error for duplicate versions")
	}
}

func TestValidateVersion_RejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)
	migrationFS := fstest.MapFS{
		"001_init.sql": {Data: []byte(`CREATE TABLE notes (id TEXT PRIMARY KEY);`)},
	}

	runner := NewRunner(db, migrationFS)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}

	// Simulate a database written by a newer build
	if _, err := db.Exec(`UPDATE schema_version SET version = 99`); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() expected error for newer schema")
	}
}

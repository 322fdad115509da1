package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fadedpez/tucojack/internal/config"
	"github.com/fadedpez/tucojack/pkg/db/migrations"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)

	migrationsDir := createCmd.String("dir", filepath.Join("pkg", "db", "migrations", "sql"), "Directory to store migrations")
	migrateDB := migrateCmd.String("db", defaultDBPath(), "Path to SQLite database")
	statusDB := statusCmd.String("db", defaultDBPath(), "Path to SQLite database")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create":
		createCmd.Parse(os.Args[2:])
		if createCmd.NArg() < 1 {
			fmt.Println("Error: Missing migration description")
			createCmd.Usage()
			os.Exit(1)
		}
		createNewMigration(*migrationsDir, createCmd.Arg(0))

	case "migrate":
		migrateCmd.Parse(os.Args[2:])
		applyMigrations(*migrateDB)

	case "status":
		statusCmd.Parse(os.Args[2:])
		showStatus(*statusDB)

	case "help":
		printUsage()

	default:
		fmt.Printf("Error: Unknown command '%s'\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// defaultDBPath follows SQLITE_PATH and DATA_DIR like the game does
func defaultDBPath() string {
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		return path
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	return filepath.Join(dataDir, "tucojack.db")
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migration create [-dir DIR] DESCRIPTION  - Create a new migration")
	fmt.Println("  go run ./cmd/migration migrate [-db PATH]             - Apply pending migrations")
	fmt.Println("  go run ./cmd/migration status [-db PATH]              - List applied migrations")
	fmt.Println("  go run ./cmd/migration help                           - Show this help")
	fmt.Println("\nExamples:")
	fmt.Println("  go run ./cmd/migration create \"add streak columns\"")
	fmt.Println("  go run ./cmd/migration migrate -db data/tucojack.db")
	fmt.Printf("\nSet STATS_BACKEND=%s to play against the migrated database.\n", config.BackendSQLite)
}

func createNewMigration(migrationsDir, description string) {
	filePath, err := migrations.CreateMigration(migrationsDir, description)
	if err != nil {
		log.Fatalf("Error creating migration: %v", err)
	}

	addSQLiteExamples(filePath)

	fmt.Printf("Created migration file: %s\n", filePath)
	fmt.Println("Edit this file, then rebuild: migrations are embedded in the binary.")
}

func addSQLiteExamples(filePath string) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("Error reading migration file: %v", err)
	}

	examples := `
-- SQLite Examples:

-- Add a column to the stats row
-- ALTER TABLE stats ADD COLUMN ties INTEGER NOT NULL DEFAULT 0;

-- Create an index
-- CREATE INDEX IF NOT EXISTS idx_table_column ON table_name(column_name);

-- Your migration SQL goes below this line:

`

	if err := os.WriteFile(filePath, []byte(string(content)+examples), 0644); err != nil {
		log.Fatalf("Error writing to migration file: %v", err)
	}
}

func openDB(dbPath string) *sql.DB {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatalf("Error creating database directory: %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	return db
}

func applyMigrations(dbPath string) {
	db := openDB(dbPath)
	defer db.Close()

	applied, err := migrations.NewMigrator(db, migrations.Embedded()).MigrateUp()
	if err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	fmt.Printf("Applied %d migration(s) to %s\n", applied, dbPath)
}

func showStatus(dbPath string) {
	db := openDB(dbPath)
	defer db.Close()

	migrator := migrations.NewMigrator(db, migrations.Embedded())
	if err := migrator.Initialize(); err != nil {
		log.Fatalf("Error initializing migrations table: %v", err)
	}

	applied, err := migrator.GetAppliedMigrations()
	if err != nil {
		log.Fatalf("Error reading applied migrations: %v", err)
	}
	available, err := migrator.LoadMigrations()
	if err != nil {
		log.Fatalf("Error loading migrations: %v", err)
	}

	for _, m := range available {
		state := "pending"
		if applied[m.Version] {
			state = "applied"
		}
		fmt.Printf("%s  %-8s %s\n", m.Version, state, m.Description)
	}
}

// cmd/migratecms/main.go
//
// One-shot cutover tool:
//
//	migrate-cms-to-db <export.json> <DB_URL> [DB_KEY]
//
// export.json is the file downloaded by the legacy browser export
// (an object keyed cms_home, cms_about, ..., cms_menu). DB_KEY is the
// service password when the URL does not already carry one.
//
// Exit code 0 on completion (even with per-item failures, which are
// logged), 1 on argument, read, parse or connection errors.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"panditku_backend/internals/features/cms/migrate"
)

func main() {
	log.SetFlags(log.LstdFlags)

	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Fprintln(os.Stderr, "usage: migrate-cms-to-db <export.json> <DB_URL> [DB_KEY]")
		os.Exit(1)
	}
	exportPath, dbURL := os.Args[1], os.Args[2]
	dbKey := ""
	if len(os.Args) == 4 {
		dbKey = os.Args[3]
	}

	raw, err := os.ReadFile(exportPath)
	if err != nil {
		log.Printf("[ERROR] ❌ cannot read export file: %v", err)
		os.Exit(1)
	}

	var export map[string]any
	if err := json.Unmarshal(raw, &export); err != nil {
		log.Printf("[ERROR] ❌ export file is not valid JSON: %v", err)
		os.Exit(1)
	}

	dsn, err := migrate.BuildDSN(dbURL, dbKey)
	if err != nil {
		log.Printf("[ERROR] ❌ %v", err)
		os.Exit(1)
	}

	db, err := migrate.Connect(dsn)
	if err != nil {
		log.Printf("[ERROR] ❌ database connection failed: %v", err)
		os.Exit(1)
	}

	sum, err := migrate.NewRunner(db).Run(export)
	if err != nil {
		log.Printf("[ERROR] ❌ migration failed: %v", err)
		os.Exit(1)
	}

	log.Printf("[INFO] ✅ migration complete: %d sections upserted, %d failed, %d menu items, settings=%t",
		sum.SectionsUpserted, sum.SectionsFailed, sum.MenuItems, sum.SettingsWritten)
}

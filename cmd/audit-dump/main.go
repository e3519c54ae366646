package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/swifttransit/bus-booking-backend/internal/config"
	"github.com/swifttransit/bus-booking-backend/internal/database"
)

// audit-dump prints recent booking audit events. Only useful when
// AUDIT_DATABASE_DSN points at a file; the default in-memory trail dies with
// the server process.
func main() {
	limit := flag.Int("limit", 50, "maximum number of events to print")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Database.DSN == ":memory:" {
		fmt.Fprintln(os.Stderr, "AUDIT_DATABASE_DSN is :memory:; there is nothing to dump")
		os.Exit(1)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open audit database: %v", err)
	}
	defer db.Close()

	repo := database.NewAuditEventRepository(db)
	events, err := repo.ListRecent(*limit)
	if err != nil {
		log.Fatalf("Failed to list audit events: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, event := range events {
		if err := enc.Encode(event); err != nil {
			log.Fatalf("Failed to encode event: %v", err)
		}
	}

	fmt.Fprintf(os.Stderr, "%d events\n", len(events))
}

// cmd/migrate/main.go
// Imports competitions, teams and drivers from the legacy MySQL portal
// database into the local PostgreSQL database. Rows run through the same
// normalizer the API uses, so loosely typed legacy values land cleanly.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/portal?parseTime=true" \
//	DB_PASS="pgpass" \
//	go run ./cmd/migrate [-dry-run]
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"github.com/padraicbc/paddock/config"
	bundb "github.com/padraicbc/paddock/db"
	"github.com/padraicbc/paddock/models"
	"github.com/padraicbc/paddock/ranking"
	"github.com/padraicbc/paddock/store"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "read and convert legacy rows without writing")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()

	// --- MySQL ---
	if cfg.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/portal?parseTime=true")
	}
	myDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		log.Fatalf("ping mysql: %v", err)
	}
	log.Println("connected to MySQL")

	var (
		comps   []*models.Competition
		teams   []*models.Team
		drivers []*models.Driver
	)
	steps := []struct {
		table string
		fn    func([]ranking.Record) int
	}{
		{"competitions", func(recs []ranking.Record) int { comps = convertAll(recs, toCompetition); return len(comps) }},
		{"teams", func(recs []ranking.Record) int { teams = convertAll(recs, toTeam); return len(teams) }},
		{"drivers", func(recs []ranking.Record) int { drivers = convertAll(recs, toDriver); return len(drivers) }},
	}
	for _, s := range steps {
		recs, err := readTable(ctx, myDB, s.table)
		if err != nil {
			log.Fatalf("read %s: %v", s.table, err)
		}
		n := s.fn(recs)
		log.Printf("%-15s  %d read, %d converted", s.table, len(recs), n)
	}

	if *dryRun {
		log.Println("dry run, nothing written")
		return
	}

	// --- PostgreSQL ---
	pgDB, err := bundb.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	if err := store.New(pgDB).Import(ctx, comps, teams, drivers); err != nil {
		log.Fatalf("import: %v", err)
	}
	log.Println("migration complete")
}

// readTable loads every row of table as a loosely typed record keyed by
// column name.
func readTable(ctx context.Context, db *sql.DB, table string) ([]ranking.Record, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []ranking.Record
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return out, err
		}
		rec := make(ranking.Record, len(cols))
		for i, col := range cols {
			rec[col] = vals[i]
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

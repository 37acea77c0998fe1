// cmd/adduser/main.go
// Creates or updates an operator account in the database.
//
// Usage:
//
//	go run ./cmd/adduser -username marta -password testing -admin
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/padraicbc/paddock/config"
	bundb "github.com/padraicbc/paddock/db"
	"github.com/padraicbc/paddock/handlers"
	"github.com/padraicbc/paddock/models"
	"github.com/padraicbc/paddock/store"
)

func main() {
	username := flag.String("username", "", "username (required)")
	password := flag.String("password", "", "plain-text password (required)")
	admin := flag.Bool("admin", false, "grant admin rights")
	flag.Parse()

	hash, err := handlers.HashPassword(*username, *password)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	cfg := config.Load()
	db, err := bundb.Setup(ctx, cfg)
	if err != nil {
		log.Fatal("db:", err)
	}
	defer db.Close()

	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatal("create tables:", err)
	}

	user := &models.User{
		Username: *username,
		Password: hash,
		Admin:    *admin,
	}
	if err := store.New(db).SaveUser(ctx, user); err != nil {
		log.Fatal("save user:", err)
	}

	fmt.Printf("user %q saved (admin=%t)\n", *username, *admin)
}

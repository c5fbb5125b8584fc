// Command admin holds maintenance helpers for the inventory API.
//
//	admin hash-password <password>   print a bcrypt hash for admin.passwordHash
//	admin token                      issue a token for the configured admin
//	admin check                      report store size and duplicate codes
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"inventory-api/internal/core/auth"
	"inventory-api/internal/core/config"
	"inventory-api/internal/core/logger"
	"inventory-api/internal/repo"
	"inventory-api/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	if len(os.Args) < 2 {
		usage()
	}
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, cleanup := logger.New("warn", false)
	defer cleanup()

	switch os.Args[1] {
	case "hash-password":
		if len(os.Args) != 3 {
			usage()
		}
		h, err := utils.HashPassword(os.Args[2])
		if err != nil {
			log.Fatal("hash password", zap.Error(err))
		}
		fmt.Println(h)

	case "token":
		gate, err := auth.NewFromConfig(cfg, log)
		if err != nil {
			log.Fatal("auth setup", zap.Error(err))
		}
		id := gate.ValidateCredentials(cfg.Admin.Username, cfg.Admin.Password)
		if id == nil {
			log.Fatal("configured admin password does not match the configured hash")
		}
		tok, err := gate.IssueToken(*id)
		if err != nil {
			log.Fatal("issue token", zap.Error(err))
		}
		fmt.Println(tok)

	case "check":
		items := repo.NewItemFileRepo(cfg.Store.Path, log).LoadAll()
		seen := make(map[string]string, len(items))
		dups := 0
		for _, it := range items {
			if prev, ok := seen[it.Code]; ok {
				dups++
				fmt.Printf("duplicate code %q: %s and %s\n", it.Code, prev, it.ID)
				continue
			}
			seen[it.Code] = it.ID
		}
		fmt.Printf("%s: %d items, %d duplicate codes\n", cfg.Store.Path, len(items), dups)
		if dups > 0 {
			os.Exit(1)
		}

	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin hash-password <password> | token | check")
	os.Exit(2)
}

// Package main provides a read-only inspector for the taxonomy blob store.
//
// Usage:
//
//	DB_PATH=~/editoria/data/db go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"

	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/store"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("resolve home dir: %v", err)
		}
		dbPath = filepath.Join(home, "editoria", "data", "db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Taxonomy Store Inspection ===")
	fmt.Println()

	var tags []*domain.Tag
	if loadBlob(db, store.KeyTags, &tags) {
		fmt.Printf("Tags: %d\n", len(tags))
		for _, t := range tags {
			fmt.Printf("  %-30s slug=%-30s usage=%d\n", t.Name, t.Slug, t.UsageCount)
		}
	}

	var categories []*domain.Category
	if loadBlob(db, store.KeyCategories, &categories) {
		fmt.Printf("\nCategories: %d\n", len(categories))
		for _, c := range categories {
			parent := c.ParentID
			if parent == "" {
				parent = "(root)"
			}
			fmt.Printf("  %-30s parent=%-30s usage=%d\n", c.Name, parent, c.UsageCount)
		}
	}

	var assignments []*domain.Assignment
	if loadBlob(db, store.KeyAssignments, &assignments) {
		fmt.Printf("\nAssignments: %d\n", len(assignments))
		for _, a := range assignments {
			fmt.Printf("  %-30s tags=%d categories=%d primary_tag=%s\n",
				a.ContentID, len(a.Tags), len(a.Categories), a.PrimaryTag)
		}
	}
}

// loadBlob reads and decodes one snapshot key, reporting whether it existed.
func loadBlob(db *badger.DB, key string, dest any) bool {
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
	if err == badger.ErrKeyNotFound {
		fmt.Printf("%s: (absent)\n", key)
		return false
	}
	if err != nil {
		log.Fatalf("read %s: %v", key, err)
	}
	return true
}

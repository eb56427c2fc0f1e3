// Package main provides a tool to seed the databases with demo editorial data.
//
// It fills the content database with a handful of pages and articles, then
// creates a starter taxonomy (tags, categories, assignments) on top of them.
//
// Usage:
//
//	DATA_PATH=~/editoria/data go run ./cmd/seed
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/editoria/editoria-server/internal/content"
	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/store"
	"github.com/editoria/editoria-server/internal/taxonomy"
)

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("resolve home dir: %v", err)
		}
		dataPath = filepath.Join(home, "editoria", "data")
	}
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	contentPath := filepath.Join(dataPath, "content.db")
	fmt.Printf("Seeding content database at: %s\n", contentPath)

	src, err := content.Open(contentPath, logger)
	if err != nil {
		log.Fatalf("open content database: %v", err)
	}
	defer src.Close()

	contents := demoContents()
	for i := range contents {
		if err := src.Upsert(ctx, &contents[i]); err != nil {
			log.Fatalf("upsert %s: %v", contents[i].ID, err)
		}
	}
	fmt.Printf("Seeded %d content items\n", len(contents))

	dbPath := filepath.Join(dataPath, "db")
	fmt.Printf("Seeding taxonomy store at: %s\n", dbPath)

	blobs, err := store.New(dbPath, logger)
	if err != nil {
		log.Fatalf("open taxonomy store: %v", err)
	}
	defer blobs.Close()

	svc := taxonomy.New(blobs, src, taxonomy.DefaultCacheTTL, logger)

	urgente, err := svc.CreateTag(ctx, taxonomy.CreateTagRequest{Name: "Urgente", Color: "#e11d48", CreatedBy: "seed"})
	if err != nil {
		log.Fatalf("create tag: %v", err)
	}
	exclusivo, err := svc.CreateTag(ctx, taxonomy.CreateTagRequest{Name: "Exclusivo", CreatedBy: "seed"})
	if err != nil {
		log.Fatalf("create tag: %v", err)
	}

	politica, err := svc.CreateCategory(ctx, taxonomy.CreateCategoryRequest{Name: "Política", CreatedBy: "seed"})
	if err != nil {
		log.Fatalf("create category: %v", err)
	}
	esportes, err := svc.CreateCategory(ctx, taxonomy.CreateCategoryRequest{Name: "Esportes", CreatedBy: "seed"})
	if err != nil {
		log.Fatalf("create category: %v", err)
	}
	_, err = svc.CreateCategory(ctx, taxonomy.CreateCategoryRequest{Name: "Futebol", ParentID: esportes.ID, CreatedBy: "seed"})
	if err != nil {
		log.Fatalf("create category: %v", err)
	}

	assignments := []taxonomy.AssignRequest{
		{ContentID: "article-eleicoes", ContentType: domain.ContentTypeArticle, Tags: []string{urgente.ID}, Categories: []string{politica.ID}, AssignedBy: "seed"},
		{ContentID: "article-brasileirao", ContentType: domain.ContentTypeArticle, Tags: []string{exclusivo.ID}, Categories: []string{esportes.ID}, AssignedBy: "seed"},
		{ContentID: "page-sobre", ContentType: domain.ContentTypePage, Categories: []string{politica.ID}, AssignedBy: "seed"},
	}
	for _, req := range assignments {
		if _, err := svc.Assign(ctx, req); err != nil {
			log.Fatalf("assign %s: %v", req.ContentID, err)
		}
	}

	fmt.Println("Seed complete")
}

func demoContents() []domain.Content {
	now := time.Now().UTC()
	return []domain.Content{
		{
			ID:          "article-eleicoes",
			Title:       "Eleições 2026: o que muda no segundo turno",
			Excerpt:     "Candidatos intensificam campanha nas capitais.",
			PublishedAt: now.AddDate(0, 0, -1),
			Status:      "published",
			Author:      "Redação",
			URL:         "/articles/eleicoes-2026",
			Type:        domain.ContentTypeArticle,
		},
		{
			ID:          "article-brasileirao",
			Title:       "Brasileirão: rodada decisiva neste domingo",
			Excerpt:     "Líder enfrenta o vice em clássico nacional.",
			PublishedAt: now.AddDate(0, 0, -3),
			Status:      "published",
			Author:      "Redação Esportes",
			URL:         "/articles/brasileirao-rodada",
			Type:        domain.ContentTypeArticle,
		},
		{
			ID:          "article-economia",
			Title:       "Inflação desacelera pelo terceiro mês",
			Excerpt:     "Índice oficial fica abaixo das projeções.",
			PublishedAt: now.AddDate(0, 0, -7),
			Status:      "published",
			Author:      "Redação Economia",
			URL:         "/articles/inflacao-desacelera",
			Type:        domain.ContentTypeArticle,
		},
		{
			ID:     "page-sobre",
			Title:  "Sobre o Editoria",
			Status: "published",
			URL:    "/sobre",
			Type:   domain.ContentTypePage,
		},
	}
}

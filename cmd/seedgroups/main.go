/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Seeds the groups table from a JSON file. Groups have no web-facing
// administration, this utility is the external process that manages them.
// Seeding is idempotent: a slug that already exists is left alone.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"os"

	"blog/internal/entity"
	"blog/internal/nlog"
	"blog/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type seedGroup struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func main() {
	dbPath := flag.String("db", "blog.db", "path of the SQLite database")
	filePath := flag.String("file", "groups.json", "JSON file holding the groups to seed")
	flag.Parse()

	logger := nlog.New("seedgroups")

	payload, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Logf("FATAL: Could not read the seed file {%v}", err)
		os.Exit(1)
	}

	var groups []seedGroup
	if err := json.Unmarshal(payload, &groups); err != nil {
		logger.Logf("FATAL: Could not parse the seed file {%v}", err)
		os.Exit(1)
	}

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		logger.Logf("FATAL: Database could not be opened correctly {%v}", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&entity.Group{}); err != nil {
		logger.Logf("FATAL: Database migration failed {%v}", err)
		os.Exit(1)
	}

	repo := repository.NewSQLiteGroupRepository(db)

	for _, g := range groups {
		if _, err := repo.GetBySlug(g.Slug); err == nil {
			logger.Logf("Group {%s} already present, skipping", g.Slug)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Logf("FATAL: Lookup of {%s} failed {%v}", g.Slug, err)
			os.Exit(1)
		}

		group := &entity.Group{Title: g.Title, Slug: g.Slug, Description: g.Description}
		if err := repo.Create(group); err != nil {
			logger.Logf("FATAL: Group {%s} could not be created {%v}", g.Slug, err)
			os.Exit(1)
		}
		logger.Logf("Group {%s} created with id {%d}", g.Slug, group.ID)
	}
}

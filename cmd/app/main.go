/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"blog/internal/config"
	"blog/internal/entity"
	"blog/internal/nlog"
	"blog/internal/repository"
	"blog/internal/service"
	"blog/internal/web"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	logger := nlog.New("app")

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		logger.Logf("FATAL: Database could not be opened correctly {%v}", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.UserSecret{},
		&entity.Group{},
		&entity.Post{},
	); err != nil {
		logger.Logf("FATAL: Database migration failed {%v}", err)
		os.Exit(1)
	}

	userRepo := repository.NewSQLiteUserRepository(db)
	groupRepo := repository.NewSQLiteGroupRepository(db)
	postRepo := repository.NewSQLitePostRepository(db)

	authService := service.NewAuthService(userRepo, nlog.New("auth"))
	postService := service.NewPostService(postRepo, nlog.New("posts"))
	feedService := service.NewFeedService(postRepo, groupRepo, userRepo)

	server := web.NewServer(cfg, nlog.New("web"), authService, postService, feedService, groupRepo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Logf("FATAL: %v", err)
		os.Exit(1)
	}

	logger.Logf("Shutting off...")
}

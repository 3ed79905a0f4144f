/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"blog/internal/entity"

	"gorm.io/gorm"
)

// This repository is used to manipulate the posts in the system.
// Every listing returns posts newest first, with the author and group records preloaded.
type PostRepository interface {
	Create(post *entity.Post) error // Inserts a post in the repository
	Update(post *entity.Post) error // Persists new text and group of an existing post. ID, author and creation time are left untouched

	GetByID(id uint) (*entity.Post, error)                 // Retrieves the post with the given id
	GetAll() ([]*entity.Post, error)                       // Retrieves all the posts, newest first
	GetByGroup(groupID uint) ([]*entity.Post, error)       // Retrieves the posts assigned to the given group, newest first
	GetByAuthor(authorUUID string) ([]*entity.Post, error) // Retrieves the posts written by the given author, newest first
	CountByAuthor(authorUUID string) (int64, error)        // Counts the posts written by the given author
}

// Implementation of the repository using a SQLite DB
type SQLitePostRepository struct {
	db *gorm.DB
}

func NewSQLitePostRepository(db *gorm.DB) PostRepository {
	return &SQLitePostRepository{db}
}

func (repo *SQLitePostRepository) Create(post *entity.Post) error {
	return repo.db.Omit("Author", "Group").Create(post).Error
}

func (repo *SQLitePostRepository) Update(post *entity.Post) error {
	return repo.db.Model(&entity.Post{ID: post.ID}).
		Select("Text", "GroupID").
		Updates(map[string]any{"text": post.Text, "group_id": post.GroupID}).Error
}

func (repo *SQLitePostRepository) GetByID(id uint) (*entity.Post, error) {
	var post entity.Post
	err := repo.db.Preload("Author").Preload("Group").First(&post, id).Error
	return &post, err
}

func (repo *SQLitePostRepository) GetAll() ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.db.Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) GetByGroup(groupID uint) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.db.Preload("Author").Preload("Group").
		Where("group_id = ?", groupID).
		Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) GetByAuthor(authorUUID string) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.db.Preload("Author").Preload("Group").
		Where("author_uuid = ?", authorUUID).
		Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) CountByAuthor(authorUUID string) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Where("author_uuid = ?", authorUUID).Count(&count).Error
	return count, err
}

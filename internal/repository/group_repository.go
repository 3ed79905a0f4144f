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

// This repository is used to manipulate the groups in the system.
// The web tier only reads groups. Create and Delete exist for the administrative seeding process.
type GroupRepository interface {
	Create(group *entity.Group) error // Inserts a group. Fails when the slug is already taken
	Delete(id uint) error             // Removes the group, clearing the group reference of every post that pointed to it

	GetByID(id uint) (*entity.Group, error)       // Retrieves the group with the given id
	GetBySlug(slug string) (*entity.Group, error) // Retrieves the group with the given slug
	GetAll() ([]*entity.Group, error)             // Retrieves all the groups, ordered by title
}

// Implementation of the repository using a SQLite DB
type SQLiteGroupRepository struct {
	db *gorm.DB
}

func NewSQLiteGroupRepository(db *gorm.DB) GroupRepository {
	return &SQLiteGroupRepository{db}
}

func (repo *SQLiteGroupRepository) Create(group *entity.Group) error {
	return repo.db.Create(group).Error
}

func (repo *SQLiteGroupRepository) Delete(id uint) error {
	// Clearing the post references runs in the same transaction as the delete,
	// so a post never points at a group that is gone.
	return repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Post{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Group{}, id).Error
	})
}

func (repo *SQLiteGroupRepository) GetByID(id uint) (*entity.Group, error) {
	var group entity.Group
	err := repo.db.First(&group, id).Error
	return &group, err
}

func (repo *SQLiteGroupRepository) GetBySlug(slug string) (*entity.Group, error) {
	var group entity.Group
	err := repo.db.Where("slug = ?", slug).First(&group).Error
	return &group, err
}

func (repo *SQLiteGroupRepository) GetAll() ([]*entity.Group, error) {
	var groups []*entity.Group
	err := repo.db.Order("title").Find(&groups).Error
	return groups, err
}

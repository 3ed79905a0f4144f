/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// A single authored text entry, optionally tagged with a group.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`             // Unique identifier, assigned on creation
	Text      string    `gorm:"not null" json:"text"`             // Body of the post, never empty after validation
	CreatedAt time.Time `gorm:"not null;index" json:"created-at"` // Time of creation, immutable afterwards

	AuthorUUID string `gorm:"not null;index" json:"author"`                   // UUID of the user that wrote the post, immutable after creation
	Author     User   `gorm:"foreignKey:AuthorUUID;references:UUID" json:"-"` // Author record, preloaded on reads

	GroupID *uint  `gorm:"index" json:"group"`                                        // Optional group the post belongs to, nil when unassigned
	Group   *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL;" json:"-"` // Group record, preloaded on reads. Deleting the group clears GroupID
}

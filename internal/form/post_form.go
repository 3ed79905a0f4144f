/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package form

import (
	"strconv"
	"strings"

	"blog/internal/entity"
)

// FieldError reports why a single input field was rejected
type FieldError struct {
	Field   string
	Message string
}

// GroupResolver checks that a group reference points at an existing group.
// It's satisfied by repository.GroupRepository.
type GroupResolver interface {
	GetByID(id uint) (*entity.Group, error)
}

// PostForm holds the untrusted input of the create and edit operations.
// The schema is declared here once: text is required, group is optional and,
// when present, must reference an existing group. Authorization is not the
// form's business.
type PostForm struct {
	Text  string // Body of the post, required
	Group string // Raw group id from the form, empty when no group was picked

	groupID *uint // Resolved group reference, set by Validate
}

// FromPost prefills a form with the current values of a persisted post,
// used when rendering the edit form
func FromPost(post *entity.Post) *PostForm {
	f := &PostForm{Text: post.Text}
	if post.GroupID != nil {
		f.Group = strconv.FormatUint(uint64(*post.GroupID), 10)
	}
	return f
}

// Validate checks the form against its schema, resolving the group reference
// through groups. It returns one FieldError per invalid field; an empty slice
// means the form is good and GroupID holds the resolved reference.
func (f *PostForm) Validate(groups GroupResolver) []FieldError {
	var errs []FieldError

	f.Text = strings.TrimSpace(f.Text)
	if f.Text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "Text is required"})
	}

	f.groupID = nil
	if raw := strings.TrimSpace(f.Group); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			errs = append(errs, FieldError{Field: "group", Message: "Unknown group"})
		} else if _, err := groups.GetByID(uint(id)); err != nil {
			errs = append(errs, FieldError{Field: "group", Message: "Unknown group"})
		} else {
			gid := uint(id)
			f.groupID = &gid
		}
	}

	return errs
}

// GroupID returns the group reference resolved by the last Validate call,
// nil when the form carries no group
func (f *PostForm) GroupID() *uint {
	return f.groupID
}

/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package form

import (
	"testing"

	"blog/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mapResolver map[uint]*entity.Group

func (m mapResolver) GetByID(id uint) (*entity.Group, error) {
	if g, ok := m[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestValidateEmptyTextFails(t *testing.T) {
	t.Parallel()

	f := &PostForm{Text: ""}
	errs := f.Validate(mapResolver{})

	require.Len(t, errs, 1)
	assert.Equal(t, "text", errs[0].Field)
}

func TestValidateWhitespaceTextFails(t *testing.T) {
	t.Parallel()

	f := &PostForm{Text: "   \n\t "}
	errs := f.Validate(mapResolver{})

	require.Len(t, errs, 1)
	assert.Equal(t, "text", errs[0].Field)
}

func TestValidateNoGroupIsFine(t *testing.T) {
	t.Parallel()

	f := &PostForm{Text: "Hello"}
	errs := f.Validate(mapResolver{})

	assert.Empty(t, errs)
	assert.Nil(t, f.GroupID())
}

func TestValidateResolvesGroup(t *testing.T) {
	t.Parallel()

	groups := mapResolver{3: &entity.Group{ID: 3, Title: "Go", Slug: "go"}}

	f := &PostForm{Text: "Hello", Group: "3"}
	errs := f.Validate(groups)

	require.Empty(t, errs)
	require.NotNil(t, f.GroupID())
	assert.Equal(t, uint(3), *f.GroupID())
}

func TestValidateUnknownGroupFails(t *testing.T) {
	t.Parallel()

	f := &PostForm{Text: "Hello", Group: "42"}
	errs := f.Validate(mapResolver{})

	require.Len(t, errs, 1)
	assert.Equal(t, "group", errs[0].Field)
	assert.Nil(t, f.GroupID())
}

func TestValidateNonNumericGroupFails(t *testing.T) {
	t.Parallel()

	f := &PostForm{Text: "Hello", Group: "golang"}
	errs := f.Validate(mapResolver{})

	require.Len(t, errs, 1)
	assert.Equal(t, "group", errs[0].Field)
}

func TestValidateReportsBothFields(t *testing.T) {
	t.Parallel()

	f := &PostForm{Text: "", Group: "42"}
	errs := f.Validate(mapResolver{})

	require.Len(t, errs, 2)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "text")
	assert.Contains(t, fields, "group")
}

func TestFromPostPrefillsCurrentValues(t *testing.T) {
	t.Parallel()

	gid := uint(5)
	post := &entity.Post{ID: 1, Text: "Old text", GroupID: &gid}

	f := FromPost(post)
	assert.Equal(t, "Old text", f.Text)
	assert.Equal(t, "5", f.Group)

	bare := FromPost(&entity.Post{ID: 2, Text: "No group"})
	assert.Equal(t, "", bare.Group)
}

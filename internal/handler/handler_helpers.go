/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"net/http"
	"strings"

	"blog/internal/entity"
	"blog/internal/middleware"
	"blog/internal/pagination"
)

// currentUser extracts the authenticated identity placed in the context by the
// session middleware. Returns nil for anonymous requests.
func currentUser(r *http.Request) *entity.User {
	if user, ok := r.Context().Value(middleware.UserKey).(entity.User); ok {
		return &user
	}
	return nil
}

// pageNumber reads the 1-based page query parameter, defaulting to the first page
func pageNumber(r *http.Request) int {
	return pagination.ParsePageNumber(r.URL.Query().Get("page"))
}

// safeNext keeps post-login redirects on this site.
// Anything that is not a local path falls back to the front page.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

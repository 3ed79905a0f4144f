/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package middleware

import (
	"context"
	"net/http"
	"net/url"

	"blog/internal/entity"

	"github.com/gorilla/sessions"
)

type contextKey string

// UserKey is the context key under which the authenticated user travels
const UserKey = contextKey("user")

// SessionName is the cookie holding the authenticated identity
const SessionName = "auth-session"

// userFromSession rebuilds the identity stored in the session cookie.
// The boolean is false when the session carries no identity.
func userFromSession(store *sessions.CookieStore, r *http.Request) (entity.User, bool) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return entity.User{}, false
	}

	uuid, ok1 := session.Values["user_uuid"].(string)
	username, ok2 := session.Values["username"].(string)
	if !(ok1 && ok2) {
		return entity.User{}, false
	}

	return entity.User{UUID: uuid, Username: username}, true
}

// RequireUser lets the request through only when a session identity exists,
// placing it in the context. Anonymous requests are redirected to the login
// page with the original target preserved in the next parameter.
func RequireUser(store *sessions.CookieStore, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromSession(store, r)
		if !ok {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next(w, r.WithContext(ctx))
	}
}

// WithUser places the session identity in the context when one exists and
// lets the request through either way. Used by the public pages, which only
// show who is logged in.
func WithUser(store *sessions.CookieStore, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if user, ok := userFromSession(store, r); ok {
			r = r.WithContext(context.WithValue(r.Context(), UserKey, user))
		}
		next(w, r)
	}
}

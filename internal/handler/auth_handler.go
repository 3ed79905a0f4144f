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

	"blog/internal/entity"
	"blog/internal/middleware"
	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/sessions"
)

// AuthHandler manages user registration and authentication
type AuthHandler struct {
	authService service.AuthService
	cookieStore *sessions.CookieStore
	renderer    *view.PageRenderer
}

func NewAuthHandler(authService service.AuthService, cookieStore *sessions.CookieStore, renderer *view.PageRenderer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieStore: cookieStore,
		renderer:    renderer,
	}
}

// AuthPage is the data behind the login and register templates
type AuthPage struct {
	Error string
	Next  string
}

// openSession stores the identity of user in the session cookie
func (h *AuthHandler) openSession(w http.ResponseWriter, r *http.Request, user *entity.User) error {
	session, _ := h.cookieStore.Get(r, middleware.SessionName)
	session.Values["user_uuid"] = user.UUID
	session.Values["username"] = user.Username
	return sessions.Save(r, w)
}

// Registers a user
// If the method is GET, a registration form is shown
// If it's POST, the new user is created and logged in right away
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.URL.Query().Get("next"))

	if r.Method == http.MethodGet {
		if err := h.renderer.RenderTemplate(w, "register.html", AuthPage{Next: next}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		if rerr := h.renderer.RenderTemplate(w, "register.html", AuthPage{Error: err.Error(), Next: next}); rerr != nil {
			http.Error(w, rerr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.openSession(w, r, user); err != nil {
		http.Error(w, "Saving cookie", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Login handles the authentication phase
// If this function got called with a GET request, it shows the login form
// Otherwise, for POST, it checks the credentials and opens the session,
// sending the user back to the page that required logging in
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.URL.Query().Get("next"))

	if r.Method == http.MethodGet {
		if err := h.renderer.RenderTemplate(w, "login.html", AuthPage{Next: next}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Login(r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		if rerr := h.renderer.RenderTemplate(w, "login.html", AuthPage{Error: err.Error(), Next: next}); rerr != nil {
			http.Error(w, rerr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.openSession(w, r, user); err != nil {
		http.Error(w, "Saving cookie", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Logout deletes the current user's session, effectively logging them out
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.cookieStore.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	if err := sessions.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

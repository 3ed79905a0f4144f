/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"blog/internal/entity"
	"blog/internal/form"
	"blog/internal/repository"
	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// PostHandler serves the authenticated create and edit pages.
// Validation failures never persist anything: the form is validated in full
// before the service is asked to write.
type PostHandler struct {
	postService service.PostService
	feedService service.FeedService
	groups      repository.GroupRepository
	renderer    *view.PageRenderer
}

func NewPostHandler(postService service.PostService, feedService service.FeedService, groups repository.GroupRepository, renderer *view.PageRenderer) *PostHandler {
	return &PostHandler{postService, feedService, groups, renderer}
}

// PostFormPage is the data behind the create/edit form template
type PostFormPage struct {
	User   *entity.User
	Form   *form.PostForm
	Errors []form.FieldError
	IsEdit bool
	PostID uint
	Groups []*entity.Group
}

func (h *PostHandler) renderForm(w http.ResponseWriter, data PostFormPage) {
	groups, err := h.groups.GetAll()
	if err != nil {
		http.Error(w, "Could not load the groups", http.StatusInternalServerError)
		return
	}
	data.Groups = groups

	if err := h.renderer.RenderTemplate(w, "post_form.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Creates a post authored by the logged-in user.
// GET shows an empty form. POST validates the input and, on success, writes the
// post and redirects to the author's profile; on failure the form is shown
// again with the field errors.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Method == http.MethodGet {
		h.renderForm(w, PostFormPage{User: user, Form: &form.PostForm{}})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	f := &form.PostForm{
		Text:  r.PostFormValue("text"),
		Group: r.PostFormValue("group"),
	}

	if errs := f.Validate(h.groups); len(errs) > 0 {
		h.renderForm(w, PostFormPage{User: user, Form: f, Errors: errs})
		return
	}

	if _, err := h.postService.CreatePost(user, f.Text, f.GroupID()); err != nil {
		http.Error(w, "The post could not be created", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s/", user.Username), http.StatusSeeOther)
}

// Edits a post in place. Only the author may edit: anyone else is sent back to
// the read-only view of the post, without an error.
// GET shows the form prefilled with the current values. POST validates and, on
// success, rewrites text and group, leaving id, author and creation time
// untouched.
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id64, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		http.Error(w, "Post was not found", http.StatusNotFound)
		return
	}
	id := uint(id64)

	post, _, err := h.feedService.PostDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Post was not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not load the post", http.StatusInternalServerError)
		return
	}

	detailURL := fmt.Sprintf("/posts/%d/", id)

	if post.AuthorUUID != user.UUID {
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		h.renderForm(w, PostFormPage{User: user, Form: form.FromPost(post), IsEdit: true, PostID: id})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	// Fields the input omits keep the values of the stored post
	f := form.FromPost(post)
	if vals, ok := r.PostForm["text"]; ok && len(vals) > 0 {
		f.Text = vals[0]
	}
	if vals, ok := r.PostForm["group"]; ok && len(vals) > 0 {
		f.Group = vals[0]
	}

	if errs := f.Validate(h.groups); len(errs) > 0 {
		h.renderForm(w, PostFormPage{User: user, Form: f, Errors: errs, IsEdit: true, PostID: id})
		return
	}

	if err := h.postService.EditPost(user, id, f.Text, f.GroupID()); err != nil {
		if errors.Is(err, service.ErrNotOwner) {
			http.Redirect(w, r, detailURL, http.StatusSeeOther)
			return
		}
		http.Error(w, "The post could not be updated", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, detailURL, http.StatusSeeOther)
}

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
	"net/http"
	"strconv"

	"blog/internal/entity"
	"blog/internal/pagination"
	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// FeedHandler serves the public, read-only pages: the global feed,
// the per-group and per-author feeds and the single-post view
type FeedHandler struct {
	feedService service.FeedService
	renderer    *view.PageRenderer
	pageSize    int
}

func NewFeedHandler(feedService service.FeedService, renderer *view.PageRenderer, pageSize int) *FeedHandler {
	return &FeedHandler{feedService, renderer, pageSize}
}

// IndexPage is the data behind the global feed template
type IndexPage struct {
	Title string
	User  *entity.User
	Page  pagination.Page[*entity.Post]
}

// GroupPage is the data behind the per-group feed template
type GroupPage struct {
	User  *entity.User
	Group *entity.Group
	Page  pagination.Page[*entity.Post]
}

// ProfilePage is the data behind the per-author feed template
type ProfilePage struct {
	User   *entity.User
	Author *entity.User
	Count  int
	Page   pagination.Page[*entity.Post]
}

// DetailPage is the data behind the single-post template
type DetailPage struct {
	User  *entity.User
	Post  *entity.Post
	Count int64
}

// Shows the global feed, paginated, newest first
func (h *FeedHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feedService.Recent()
	if err != nil {
		http.Error(w, "Could not load the feed", http.StatusInternalServerError)
		return
	}

	data := IndexPage{
		Title: "Latest updates",
		User:  currentUser(r),
		Page:  pagination.Paginate(posts, h.pageSize, pageNumber(r)),
	}

	if err := h.renderer.RenderTemplate(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Shows the feed of one group, looked up by slug
func (h *FeedHandler) GroupFeed(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	group, posts, err := h.feedService.GroupFeed(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Group was not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not load the feed", http.StatusInternalServerError)
		return
	}

	data := GroupPage{
		User:  currentUser(r),
		Group: group,
		Page:  pagination.Paginate(posts, h.pageSize, pageNumber(r)),
	}

	if err := h.renderer.RenderTemplate(w, "group_list.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Shows the feed of one author, looked up by username
func (h *FeedHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	author, posts, err := h.feedService.AuthorFeed(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "User was not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not load the feed", http.StatusInternalServerError)
		return
	}

	data := ProfilePage{
		User:   currentUser(r),
		Author: author,
		Count:  len(posts),
		Page:   pagination.Paginate(posts, h.pageSize, pageNumber(r)),
	}

	if err := h.renderer.RenderTemplate(w, "profile.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Shows a single post with the total post count of its author
func (h *FeedHandler) PostDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		http.Error(w, "Post was not found", http.StatusNotFound)
		return
	}

	post, count, err := h.feedService.PostDetail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Post was not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not load the post", http.StatusInternalServerError)
		return
	}

	data := DetailPage{
		User:  currentUser(r),
		Post:  post,
		Count: count,
	}

	if err := h.renderer.RenderTemplate(w, "post_detail.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"blog/internal/config"
	"blog/internal/entity"
	"blog/internal/nlog"
	"blog/internal/repository"
	"blog/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testApp struct {
	handler http.Handler
	posts   repository.PostRepository
	groups  repository.GroupRepository
	users   repository.UserRepository
	auth    service.AuthService
	postSvc service.PostService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.UserSecret{},
		&entity.Group{},
		&entity.Post{},
	))

	users := repository.NewSQLiteUserRepository(db)
	groups := repository.NewSQLiteGroupRepository(db)
	posts := repository.NewSQLitePostRepository(db)

	auth := service.NewAuthService(users, nlog.Nop())
	postSvc := service.NewPostService(posts, nlog.Nop())
	feed := service.NewFeedService(posts, groups, users)

	cfg := &config.Config{
		ListenAddr:   ":0",
		TemplateDir:  filepath.Join("..", "..", "web", "templates"),
		SecretKey:    "test-secret",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PageSize:     10,
	}

	server := NewServer(cfg, nlog.Nop(), auth, postSvc, feed, groups)
	h, err := server.Handler()
	require.NoError(t, err)

	return &testApp{handler: h, posts: posts, groups: groups, users: users, auth: auth, postSvc: postSvc}
}

// signUp registers a user through the HTTP surface and returns the session cookies
func (app *testApp) signUp(t *testing.T, username string) []*http.Cookie {
	t.Helper()

	rr := app.do(t, "POST", "/register", url.Values{"username": {username}, "password": {"hunter2"}}, nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func (app *testApp) do(t *testing.T, method, target string, body url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	app.handler.ServeHTTP(rr, req)
	return rr
}

func (app *testApp) seedAuthor(t *testing.T, username string) *entity.User {
	t.Helper()

	user, err := app.auth.Register(username, "hunter2")
	require.NoError(t, err)
	return user
}

func TestGlobalFeedPaginatesThirteenPosts(t *testing.T) {
	app := newTestApp(t)
	alice := app.seedAuthor(t, "alice")

	for i := 1; i <= 13; i++ {
		_, err := app.postSvc.CreatePost(alice, fmt.Sprintf("post number %d", i), nil)
		require.NoError(t, err)
	}

	first := app.do(t, "GET", "/", nil, nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 10, strings.Count(first.Body.String(), "<li>"))
	assert.Contains(t, first.Body.String(), "Page 1 of 2")

	second := app.do(t, "GET", "/?page=2", nil, nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 3, strings.Count(second.Body.String(), "<li>"))

	// A page past the end comes back as the last page, never empty
	beyond := app.do(t, "GET", "/?page=99", nil, nil)
	require.Equal(t, http.StatusOK, beyond.Code)
	assert.Equal(t, 3, strings.Count(beyond.Body.String(), "<li>"))
	assert.Contains(t, beyond.Body.String(), "Page 2 of 2")
}

func TestUnknownResourcesGive404(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusNotFound, app.do(t, "GET", "/posts/999/", nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, "GET", "/group/missing/", nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, "GET", "/profile/nobody/", nil, nil).Code)
}

func TestGroupFeedShowsOnlyGroupPosts(t *testing.T) {
	app := newTestApp(t)
	alice := app.seedAuthor(t, "alice")

	group := &entity.Group{Title: "Go", Slug: "go", Description: "All things Go"}
	require.NoError(t, app.groups.Create(group))

	_, err := app.postSvc.CreatePost(alice, "inside the group", &group.ID)
	require.NoError(t, err)
	_, err = app.postSvc.CreatePost(alice, "outside the group", nil)
	require.NoError(t, err)

	rr := app.do(t, "GET", "/group/go/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "All things Go")
	assert.Contains(t, rr.Body.String(), "inside the group")
	assert.NotContains(t, rr.Body.String(), "outside the group")
}

func TestProfileShowsAuthorPostsAndCount(t *testing.T) {
	app := newTestApp(t)
	alice := app.seedAuthor(t, "alice")
	bob := app.seedAuthor(t, "bob")

	_, err := app.postSvc.CreatePost(alice, "by alice", nil)
	require.NoError(t, err)
	_, err = app.postSvc.CreatePost(bob, "by bob", nil)
	require.NoError(t, err)

	rr := app.do(t, "GET", "/profile/alice/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "by alice")
	assert.NotContains(t, rr.Body.String(), "by bob")
	assert.Contains(t, rr.Body.String(), "1 post(s)")
}

func TestPostDetailShowsAuthorCount(t *testing.T) {
	app := newTestApp(t)
	alice := app.seedAuthor(t, "alice")

	post, err := app.postSvc.CreatePost(alice, "only one", nil)
	require.NoError(t, err)

	rr := app.do(t, "GET", fmt.Sprintf("/posts/%d/", post.ID), nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "only one")
	assert.Contains(t, rr.Body.String(), "1 post(s)")
}

func TestCreateRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, "GET", "/create/", nil, nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=%2Fcreate%2F", rr.Header().Get("Location"))
}

func TestLoginHonorsNextTarget(t *testing.T) {
	app := newTestApp(t)
	app.seedAuthor(t, "alice")

	rr := app.do(t, "POST", "/login?next=%2Fcreate%2F", url.Values{"username": {"alice"}, "password": {"hunter2"}}, nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/create/", rr.Header().Get("Location"))
}

func TestCreatePostSetsAuthorFromSession(t *testing.T) {
	app := newTestApp(t)
	cookies := app.signUp(t, "alice")

	// A forged author field in the input is ignored
	rr := app.do(t, "POST", "/create/", url.Values{"text": {"Hello"}, "author": {"mallory"}}, cookies)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/profile/alice/", rr.Header().Get("Location"))

	alice, err := app.users.GetByUsername("alice")
	require.NoError(t, err)
	posts, err := app.posts.GetByAuthor(alice.UUID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Text)
	assert.Equal(t, alice.UUID, posts[0].AuthorUUID)
}

func TestCreateWithGroupAssignsIt(t *testing.T) {
	app := newTestApp(t)
	cookies := app.signUp(t, "alice")

	group := &entity.Group{Title: "Go", Slug: "go"}
	require.NoError(t, app.groups.Create(group))

	rr := app.do(t, "POST", "/create/", url.Values{"text": {"Grouped"}, "group": {fmt.Sprintf("%d", group.ID)}}, cookies)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	alice, err := app.users.GetByUsername("alice")
	require.NoError(t, err)
	posts, err := app.posts.GetByAuthor(alice.UUID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.NotNil(t, posts[0].GroupID)
	assert.Equal(t, group.ID, *posts[0].GroupID)
}

func TestCreateEmptyTextRedisplaysFormWithoutWriting(t *testing.T) {
	app := newTestApp(t)
	cookies := app.signUp(t, "alice")

	rr := app.do(t, "POST", "/create/", url.Values{"text": {"   "}}, cookies)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Text is required")

	alice, err := app.users.GetByUsername("alice")
	require.NoError(t, err)
	count, err := app.posts.CountByAuthor(alice.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCreateUnknownGroupRedisplaysForm(t *testing.T) {
	app := newTestApp(t)
	cookies := app.signUp(t, "alice")

	rr := app.do(t, "POST", "/create/", url.Values{"text": {"Hello"}, "group": {"42"}}, cookies)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Unknown group")
}

func TestEditByNonAuthorSilentlyRedirects(t *testing.T) {
	app := newTestApp(t)
	alice := app.seedAuthor(t, "alice")
	post, err := app.postSvc.CreatePost(alice, "Original", nil)
	require.NoError(t, err)

	bobCookies := app.signUp(t, "bob")

	target := fmt.Sprintf("/posts/%d/edit/", post.ID)
	rr := app.do(t, "POST", target, url.Values{"text": {"Hijacked"}}, bobCookies)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), rr.Header().Get("Location"))

	got, err := app.posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Text)
	assert.Equal(t, alice.UUID, got.AuthorUUID)

	// The edit form is not shown to non-authors either
	rr = app.do(t, "GET", target, nil, bobCookies)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), rr.Header().Get("Location"))
}

func TestEditByAuthorUpdatesAndRedirects(t *testing.T) {
	app := newTestApp(t)
	cookies := app.signUp(t, "alice")

	alice, err := app.users.GetByUsername("alice")
	require.NoError(t, err)
	post, err := app.postSvc.CreatePost(alice, "Original", nil)
	require.NoError(t, err)

	target := fmt.Sprintf("/posts/%d/edit/", post.ID)
	rr := app.do(t, "POST", target, url.Values{"text": {"Edited"}}, cookies)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), rr.Header().Get("Location"))

	got, err := app.posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Text)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, alice.UUID, got.AuthorUUID)
	assert.True(t, post.CreatedAt.Equal(got.CreatedAt))
}

func TestEditInvalidInputRedisplaysEditingForm(t *testing.T) {
	app := newTestApp(t)
	cookies := app.signUp(t, "alice")

	alice, err := app.users.GetByUsername("alice")
	require.NoError(t, err)
	post, err := app.postSvc.CreatePost(alice, "Original", nil)
	require.NoError(t, err)

	rr := app.do(t, "POST", fmt.Sprintf("/posts/%d/edit/", post.ID), url.Values{"text": {""}}, cookies)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Text is required")
	assert.Contains(t, rr.Body.String(), "Edit post")

	got, err := app.posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Text)
}

func TestEditOmittedGroupKeepsStoredValue(t *testing.T) {
	app := newTestApp(t)
	cookies := app.signUp(t, "alice")

	alice, err := app.users.GetByUsername("alice")
	require.NoError(t, err)
	group := &entity.Group{Title: "Go", Slug: "go"}
	require.NoError(t, app.groups.Create(group))
	post, err := app.postSvc.CreatePost(alice, "Original", &group.ID)
	require.NoError(t, err)

	// The form omits the group field entirely, so the stored group survives
	rr := app.do(t, "POST", fmt.Sprintf("/posts/%d/edit/", post.ID), url.Values{"text": {"Edited"}}, cookies)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	got, err := app.posts.GetByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, got.GroupID)
	assert.Equal(t, group.ID, *got.GroupID)
}

func TestLogoutDropsTheSession(t *testing.T) {
	app := newTestApp(t)
	cookies := app.signUp(t, "alice")

	rr := app.do(t, "GET", "/logout", nil, cookies)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth-session" {
			assert.True(t, c.MaxAge < 0 || !c.Expires.After(time.Now()))
		}
	}
}

/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"errors"
	"time"

	"blog/internal/entity"
	"blog/internal/nlog"
	"blog/internal/repository"
)

// ErrNotOwner is returned when someone other than the author tries to edit a post
var ErrNotOwner = errors.New("only the author can edit a post")

// Service used to create and edit posts.
// Input-shape validation happens before this layer; here only the ownership rule lives.
type PostService interface {
	CreatePost(author *entity.User, text string, groupID *uint) (*entity.Post, error) // Creates a post authored by author. The author is taken from the session, never from the input
	EditPost(editor *entity.User, id uint, text string, groupID *uint) error          // Rewrites text and group of the post in place. ErrNotOwner when editor is not the author
}

type localPostService struct {
	postRepository repository.PostRepository // Repository for posts
	logger         nlog.Logger               // Logs a format string
}

func NewPostService(postRepo repository.PostRepository, logger nlog.Logger) PostService {
	return &localPostService{
		postRepository: postRepo,
		logger:         logger,
	}
}

func (p *localPostService) Logf(format string, v ...any) {
	p.logger.Logf(format, v...)
}

func (p *localPostService) CreatePost(author *entity.User, text string, groupID *uint) (*entity.Post, error) {
	post := &entity.Post{
		Text:       text,
		CreatedAt:  time.Now(),
		AuthorUUID: author.UUID,
		GroupID:    groupID,
	}

	if err := p.postRepository.Create(post); err != nil {
		p.Logf("Post by {%s} could not be created {%v}", author.Username, err)
		return nil, err
	}

	p.Logf("Post {%d} created by {%s}", post.ID, author.Username)
	return post, nil
}

func (p *localPostService) EditPost(editor *entity.User, id uint, text string, groupID *uint) error {
	post, err := p.postRepository.GetByID(id)
	if err != nil {
		return err
	}

	if post.AuthorUUID != editor.UUID {
		return ErrNotOwner
	}

	post.Text = text
	post.GroupID = groupID
	if err := p.postRepository.Update(post); err != nil {
		p.Logf("Post {%d} could not be updated {%v}", id, err)
		return err
	}

	p.Logf("Post {%d} updated by {%s}", id, editor.Username)
	return nil
}

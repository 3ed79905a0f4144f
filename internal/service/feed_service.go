/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"blog/internal/entity"
	"blog/internal/repository"
)

// Service used to read the three feeds and the single-post view.
// Every listing comes back newest first; the handlers slice it into pages.
type FeedService interface {
	Recent() ([]*entity.Post, error)                                  // Returns every post in the system
	GroupFeed(slug string) (*entity.Group, []*entity.Post, error)     // Returns the group with the given slug and its posts
	AuthorFeed(username string) (*entity.User, []*entity.Post, error) // Returns the user with the given username and their posts
	PostDetail(id uint) (*entity.Post, int64, error)                  // Returns the post with the given id and how many posts its author has written
}

type localFeedService struct {
	postRepository  repository.PostRepository  // Repository for posts
	groupRepository repository.GroupRepository // Repository for groups
	userRepository  repository.UserRepository  // Repository for users
}

func NewFeedService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, userRepo repository.UserRepository) FeedService {
	return &localFeedService{
		postRepository:  postRepo,
		groupRepository: groupRepo,
		userRepository:  userRepo,
	}
}

func (f *localFeedService) Recent() ([]*entity.Post, error) {
	return f.postRepository.GetAll()
}

func (f *localFeedService) GroupFeed(slug string) (*entity.Group, []*entity.Post, error) {
	group, err := f.groupRepository.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	posts, err := f.postRepository.GetByGroup(group.ID)
	if err != nil {
		return nil, nil, err
	}
	return group, posts, nil
}

func (f *localFeedService) AuthorFeed(username string) (*entity.User, []*entity.Post, error) {
	user, err := f.userRepository.GetByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	posts, err := f.postRepository.GetByAuthor(user.UUID)
	if err != nil {
		return nil, nil, err
	}
	return user, posts, nil
}

func (f *localFeedService) PostDetail(id uint) (*entity.Post, int64, error) {
	post, err := f.postRepository.GetByID(id)
	if err != nil {
		return nil, 0, err
	}
	count, err := f.postRepository.CountByAuthor(post.AuthorUUID)
	if err != nil {
		return nil, 0, err
	}
	return post, count, nil
}

package gql

import (
	"context"
	"sync"

	"github.com/cecobask/socialdeck-api/internal/domain/entities"
	"github.com/cecobask/socialdeck-api/internal/domain/repositories"
)

type memUserRepo struct {
	mu    sync.Mutex
	users []*entities.User
}

var _ repositories.UserRepository = (*memUserRepo)(nil)

func (r *memUserRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return user, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entities.User{}, r.users...), nil
}

func (r *memUserRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID.Hex() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memUserRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := int64(len(r.users))
	r.users = nil
	return count, nil
}

type memPostRepo struct {
	mu    sync.Mutex
	posts []*entities.Post
}

var _ repositories.PostRepository = (*memPostRepo)(nil)

func (r *memPostRepo) Create(_ context.Context, post *entities.Post) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, post)
	return post, nil
}

func (r *memPostRepo) FindByID(_ context.Context, id string) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByID(id), nil
}

func (r *memPostRepo) findByID(id string) *entities.Post {
	for _, p := range r.posts {
		if p.ID.Hex() == id {
			return p
		}
	}
	return nil
}

func (r *memPostRepo) FindAll(_ context.Context) ([]*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entities.Post{}, r.posts...), nil
}

func (r *memPostRepo) FindByCreator(_ context.Context, creatorID string) ([]*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := []*entities.Post{}
	for _, p := range r.posts {
		if p.CreatorID == creatorID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (r *memPostRepo) Update(_ context.Context, id, message string, links []string) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post := r.findByID(id)
	if post == nil {
		return nil, nil
	}
	post.Update(message, links)
	return post, nil
}

func (r *memPostRepo) AddShare(_ context.Context, id, userID string) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post := r.findByID(id)
	if post == nil {
		return nil, nil
	}
	post.AddShare(userID)
	return post, nil
}

func (r *memPostRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.ID.Hex() == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memPostRepo) DeleteByCreator(_ context.Context, creatorID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.posts[:0]
	var deleted int64
	for _, p := range r.posts {
		if p.CreatorID == creatorID {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	r.posts = kept
	return deleted, nil
}

func (r *memPostRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := int64(len(r.posts))
	r.posts = nil
	return count, nil
}

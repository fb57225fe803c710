package service

import (
	"context"
	"sort"
	"time"

	"social_network/internal/model"

	"gorm.io/gorm"
)

// 纯内存仓储，给 service 层测试当替身用

type memUserRepo struct {
	nextID uint64
	users  map[uint64]*model.User
	posts  *memPostRepo
	likes  *memLikeRepo
}

func newMemUserRepo(posts *memPostRepo, likes *memLikeRepo) *memUserRepo {
	return &memUserRepo{users: make(map[uint64]*model.User), posts: posts, likes: likes}
}

func (m *memUserRepo) Create(user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	m.nextID++
	user.ID = m.nextID
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) FindByID(id uint64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) UpdateLastLogin(id uint64, t time.Time) error {
	if u, ok := m.users[id]; ok {
		u.LastLogin = &t
	}
	return nil
}

func (m *memUserRepo) TouchLastRequest(id uint64, t time.Time) error {
	if u, ok := m.users[id]; ok {
		u.LastRequestTime = t
	}
	return nil
}

func (m *memUserRepo) Delete(id uint64) error {
	if m.likes != nil {
		m.likes.deleteByUser(id)
	}
	if m.posts != nil {
		m.posts.orphanByOwner(id)
	}
	delete(m.users, id)
	return nil
}

type memPostRepo struct {
	nextID uint64
	posts  map[uint64]*model.Post
	likes  *memLikeRepo
}

func newMemPostRepo(likes *memLikeRepo) *memPostRepo {
	return &memPostRepo{posts: make(map[uint64]*model.Post), likes: likes}
}

func (m *memPostRepo) Create(post *model.Post) error {
	m.nextID++
	post.ID = m.nextID
	cp := *post
	m.posts[post.ID] = &cp
	return nil
}

func (m *memPostRepo) FindByID(id uint64) (*model.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPostRepo) ListByOwner(ownerID uint64) ([]model.Post, error) {
	list := make([]model.Post, 0)
	for _, p := range m.posts {
		if p.OwnerID != nil && *p.OwnerID == ownerID {
			list = append(list, *p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *memPostRepo) UpdateFields(id uint64, fields map[string]any) error {
	p, ok := m.posts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["title"]; ok {
		p.Title = v.(string)
	}
	if v, ok := fields["body"]; ok {
		p.Body = v.(string)
	}
	return nil
}

func (m *memPostRepo) Delete(id uint64) error {
	if m.likes != nil {
		m.likes.deleteByPost(id)
	}
	delete(m.posts, id)
	return nil
}

func (m *memPostRepo) orphanByOwner(ownerID uint64) {
	for _, p := range m.posts {
		if p.OwnerID != nil && *p.OwnerID == ownerID {
			p.OwnerID = nil
		}
	}
}

type memLikeRepo struct {
	nextID uint64
	rows   []model.Like
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{}
}

func (m *memLikeRepo) Like(ctx context.Context, userID, postID uint64) (bool, error) {
	for _, l := range m.rows {
		if l.UserID == userID && l.PostID == postID {
			return false, nil
		}
	}
	m.add(userID, postID, time.Now())
	return true, nil
}

func (m *memLikeRepo) Unlike(ctx context.Context, userID, postID uint64) (bool, error) {
	for i, l := range m.rows {
		if l.UserID == userID && l.PostID == postID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memLikeRepo) CountBetween(ctx context.Context, userID uint64, from, to time.Time) (int64, error) {
	var n int64
	for _, l := range m.rows {
		if l.UserID == userID && !l.CreatedAt.Before(from) && l.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func (m *memLikeRepo) add(userID, postID uint64, t time.Time) {
	m.nextID++
	m.rows = append(m.rows, model.Like{ID: m.nextID, UserID: userID, PostID: postID, CreatedAt: t})
}

func (m *memLikeRepo) deleteByUser(userID uint64) {
	var kept []model.Like
	for _, l := range m.rows {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	m.rows = kept
}

func (m *memLikeRepo) deleteByPost(postID uint64) {
	var kept []model.Like
	for _, l := range m.rows {
		if l.PostID != postID {
			kept = append(kept, l)
		}
	}
	m.rows = kept
}

type memTokenStore struct {
	tokens map[uint64]string
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{tokens: make(map[uint64]string)}
}

func (m *memTokenStore) AddUserToken(usrID uint64, token string) error {
	m.tokens[usrID] = token
	return nil
}

func (m *memTokenStore) DeleteUserToken(usrID uint64) error {
	delete(m.tokens, usrID)
	return nil
}

func (m *memTokenStore) GetUserToken(usrID uint64) (string, error) {
	t, ok := m.tokens[usrID]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return t, nil
}

func (m *memTokenStore) ExtendUserToken(usrID uint64) error {
	return nil
}

func minTime() time.Time { return time.Unix(0, 0) }
func maxTime() time.Time { return time.Now().Add(24 * time.Hour) }

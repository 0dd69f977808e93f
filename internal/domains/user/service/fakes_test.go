package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"foodee-backend/internal/domains/user"
	"foodee-backend/internal/infrastructure/email"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) find(pred func(*user.User) bool) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if pred(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	return r.find(func(u *user.User) bool { return u.ID == id })
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	return r.find(func(u *user.User) bool { return u.Username == username })
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, e string) (*user.User, error) {
	return r.find(func(u *user.User) bool { return strings.EqualFold(u.Email, e) })
}

func (r *fakeUserRepo) FindByLogin(_ context.Context, login string) (*user.User, error) {
	return r.find(func(u *user.User) bool { return u.Username == login || strings.EqualFold(u.Email, login) })
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[u.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	cp := *u
	cp.PasswordHash = existing.PasswordHash
	cp.Roles = existing.Roles
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) SetRoles(_ context.Context, id int64, roles []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Roles = append([]string(nil), roles...)
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]user.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, e string) (bool, error) {
	_, err := r.FindByEmail(ctx, e)
	return err == nil, nil
}

type fakeTokenRepo struct {
	tokens map[string]*user.PasswordResetToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*user.PasswordResetToken{}}
}

func (r *fakeTokenRepo) Create(_ context.Context, t *user.PasswordResetToken) error {
	cp := *t
	r.tokens[t.Token] = &cp
	return nil
}

func (r *fakeTokenRepo) FindByToken(_ context.Context, token string) (*user.PasswordResetToken, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, user.ErrInvalidResetToken
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTokenRepo) MarkUsed(_ context.Context, token string) error {
	if t, ok := r.tokens[token]; ok {
		t.Used = true
	}
	return nil
}

func (r *fakeTokenRepo) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for k, t := range r.tokens {
		if t.Used || t.ExpiresAt.Before(cutoff) {
			delete(r.tokens, k)
			n++
		}
	}
	return n, nil
}

type fakeMailer struct {
	sent []email.ResetPasswordData
	err  error
}

func (m *fakeMailer) SendResetPasswordEmail(_ context.Context, data email.ResetPasswordData) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, data)
	return nil
}

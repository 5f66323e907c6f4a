package service

import (
	"context"

	"github.com/technotes/backend/internal/user/domain"
	userrepo "github.com/technotes/backend/internal/user/repository"
)

type mockUserRepo struct {
	findAllFunc        func(ctx context.Context) ([]domain.User, error)
	findByUsernameFunc func(ctx context.Context, username string) (domain.User, error)
	findByIDFunc       func(ctx context.Context, id domain.ID) (domain.User, error)
	createFunc         func(ctx context.Context, user domain.User) (domain.ID, error)
	saveFunc           func(ctx context.Context, user domain.User) error
	deleteFunc         func(ctx context.Context, id domain.ID) (domain.User, error)

	createCalls int
	saveCalls   int
	deleteCalls int
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return domain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.ID, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return "64f000000000000000000001", nil
}

func (m *mockUserRepo) Save(ctx context.Context, user domain.User) error {
	m.saveCalls++
	if m.saveFunc != nil {
		return m.saveFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id domain.ID) (domain.User, error) {
	m.deleteCalls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return domain.User{}, userrepo.ErrUserNotFound
}

type mockNoteRepo struct {
	existsByUserIDFunc func(ctx context.Context, userID domain.ID) (bool, error)
}

func (m *mockNoteRepo) ExistsByUserID(ctx context.Context, userID domain.ID) (bool, error) {
	if m.existsByUserIDFunc != nil {
		return m.existsByUserIDFunc(ctx, userID)
	}
	return false, nil
}

type mockHasher struct {
	hashFunc    func(password string) (string, error)
	compareFunc func(hash, password string) error
	hashCalls   int
}

func (m *mockHasher) Hash(password string) (string, error) {
	m.hashCalls++
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hash, password string) error {
	if m.compareFunc != nil {
		return m.compareFunc(hash, password)
	}
	return nil
}

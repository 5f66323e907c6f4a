package service

import (
	"context"
	"errors"
	"fmt"

	commoncrypto "github.com/technotes/backend/internal/common/crypto"
	commonerrors "github.com/technotes/backend/internal/common/errors"
	"github.com/technotes/backend/internal/common/logger"
	noterepo "github.com/technotes/backend/internal/note/repository"
	"github.com/technotes/backend/internal/user/domain"
	userrepo "github.com/technotes/backend/internal/user/repository"
)

// UsersService holds the consistency rules of the users resource: username
// uniqueness, conditional password hashing and the note-reference guard on
// deletion. Each operation either fully succeeds or leaves state unchanged
// and reports a domain error.
type UsersService struct {
	users  userrepo.Repository
	notes  noterepo.Repository
	hasher commoncrypto.PasswordHasher
	log    *logger.Logger
}

func NewUsersService(
	users userrepo.Repository,
	notes noterepo.Repository,
	hasher commoncrypto.PasswordHasher,
	log *logger.Logger,
) *UsersService {
	return &UsersService{
		users:  users,
		notes:  notes,
		hasher: hasher,
		log:    log,
	}
}

type CreateInput struct {
	Username string
	Password string
	Roles    []string
}

type UpdateInput struct {
	ID       domain.ID
	Username string
	Password string
	Roles    []string
	Active   bool
}

// List returns every user with the password hash projected out. An empty
// repository is reported as an error rather than an empty collection; that
// distinction is part of the client contract.
func (s *UsersService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "list_users_failed",
		}).Errorf("list users failed: %v", err)
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}

	if len(users) == 0 {
		return nil, commonerrors.ErrNoUsersFound
	}

	return users, nil
}

func (s *UsersService) Create(ctx context.Context, input CreateInput) error {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "create_user_attempt",
	}).Info("create user attempt")

	if input.Username == "" || input.Password == "" || len(input.Roles) == 0 {
		return commonerrors.ErrAllFieldsRequired
	}

	_, err := s.users.FindByUsername(ctx, input.Username)
	if err == nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "create_user_duplicate",
		}).Warn("create user failed: duplicate username")
		return commonerrors.ErrDuplicateUsername
	}
	if !errors.Is(err, userrepo.ErrUserNotFound) {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "create_user_lookup_failed",
		}).Errorf("create user failed: duplicate lookup error: %v", err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "create_user_hash_failed",
		}).Errorf("create user failed: password hash error: %v", err)
		return commonerrors.ErrInternalError.WithCause(err)
	}

	_, err = s.users.Create(ctx, domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Roles:        input.Roles,
		Active:       true,
	})
	if err != nil {
		// The unique index catches duplicates that slip past the pre-check.
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "create_user_duplicate",
			}).Warn("create user failed: duplicate username on write")
			return commonerrors.ErrDuplicateUsername
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "create_user_failed",
		}).Errorf("create user failed: %v", err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "create_user_success",
	}).Info("create user success")

	return nil
}

// Update re-hashes the password only when a new plaintext one is supplied;
// otherwise the stored hash is carried over unchanged.
func (s *UsersService) Update(ctx context.Context, input UpdateInput) (string, error) {
	s.log.WithFields(ctx, logger.Fields{
		"user_id":  string(input.ID),
		"username": input.Username,
		"action":   "update_user_attempt",
	}).Info("update user attempt")

	if input.ID == "" || input.Username == "" || len(input.Roles) == 0 {
		return "", commonerrors.ErrAllFieldsRequired
	}

	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return "", commonerrors.ErrUserNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(input.ID),
			"action":  "update_user_lookup_failed",
		}).Errorf("update user failed: lookup error: %v", err)
		return "", commonerrors.ErrDatabaseError.WithCause(err)
	}

	owner, err := s.users.FindByUsername(ctx, input.Username)
	if err == nil && owner.ID != input.ID {
		s.log.WithFields(ctx, logger.Fields{
			"user_id":  string(input.ID),
			"username": input.Username,
			"action":   "update_user_duplicate",
		}).Warn("update user failed: username owned by another user")
		return "", commonerrors.ErrDuplicateUsername
	}
	if err != nil && !errors.Is(err, userrepo.ErrUserNotFound) {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(input.ID),
			"action":  "update_user_duplicate_lookup_failed",
		}).Errorf("update user failed: duplicate lookup error: %v", err)
		return "", commonerrors.ErrDatabaseError.WithCause(err)
	}

	user.Username = input.Username
	user.Roles = input.Roles
	user.Active = input.Active

	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			s.log.WithFields(ctx, logger.Fields{
				"user_id": string(input.ID),
				"action":  "update_user_hash_failed",
			}).Errorf("update user failed: password hash error: %v", err)
			return "", commonerrors.ErrInternalError.WithCause(err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			return "", commonerrors.ErrDuplicateUsername
		}
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return "", commonerrors.ErrUserNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(input.ID),
			"action":  "update_user_save_failed",
		}).Errorf("update user failed: %v", err)
		return "", commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id":  string(input.ID),
		"username": user.Username,
		"action":   "update_user_success",
	}).Info("update user success")

	return user.Username, nil
}

// Delete keeps the reference check ordering: the note-reference guard runs
// before the user-existence check.
func (s *UsersService) Delete(ctx context.Context, id domain.ID) (string, error) {
	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(id),
		"action":  "delete_user_attempt",
	}).Info("delete user attempt")

	if id == "" {
		return "", commonerrors.ErrUserIDRequired
	}

	hasNotes, err := s.notes.ExistsByUserID(ctx, id)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(id),
			"action":  "delete_user_note_lookup_failed",
		}).Errorf("delete user failed: note lookup error: %v", err)
		return "", commonerrors.ErrDatabaseError.WithCause(err)
	}
	if hasNotes {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(id),
			"action":  "delete_user_has_notes",
		}).Warn("delete user blocked: user has assigned notes")
		return "", commonerrors.ErrUserHasNotes
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return "", commonerrors.ErrUserNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(id),
			"action":  "delete_user_failed",
		}).Errorf("delete user failed: %v", err)
		return "", commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id":  string(deleted.ID),
		"username": deleted.Username,
		"action":   "delete_user_success",
	}).Info("delete user success")

	return fmt.Sprintf("Username %s with ID %s is deleted", deleted.Username, deleted.ID), nil
}

package usecase

import (
	"context"
	"fmt"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/pkg/errs"

	"go.uber.org/zap"
)

type UserService interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	Add(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	Friends(ctx context.Context, userID int64) ([]*entity.User, error)
	CommonFriends(ctx context.Context, userID, otherID int64) ([]*entity.User, error)
	FriendRequests(ctx context.Context, userID int64) (*FriendRequests, error)
}

// FriendRequests lists links that are not reciprocated yet.
type FriendRequests struct {
	Outgoing []*entity.User
	Incoming []*entity.User
}

type userService struct {
	userRepo   repository.UserRepository
	friendRepo repository.FriendRepository
	log        *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, friendRepo repository.FriendRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		friendRepo: friendRepo,
		log:        log.With(zap.String("service", "user")),
	}
}

func (us *userService) FindAll(ctx context.Context) ([]*entity.User, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		logFailure(us.log, "Failed to get all users", err)
		return nil, fmt.Errorf("get users: %w", err)
	}
	return users, nil
}

func (us *userService) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return us.requireUser(ctx, id)
}

func (us *userService) Add(ctx context.Context, user *entity.User) (*entity.User, error) {
	if violations := user.Validate(); len(violations) > 0 {
		return nil, validationFailed(us.log, "Create user", violations)
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		logFailure(us.log, "Failed to create user", err, zap.String("login", user.Login))
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("login", user.Login),
	)

	return us.requireUser(ctx, user.ID)
}

func (us *userService) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	if violations := user.Validate(); len(violations) > 0 {
		return nil, validationFailed(us.log, "Update user", violations)
	}

	if err := us.userRepo.Update(ctx, user); err != nil {
		logFailure(us.log, "Failed to update user", err, zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("update user: %w", err)
	}

	us.log.Info("User updated", zap.Int64("user_id", user.ID))

	return us.requireUser(ctx, user.ID)
}

// AddFriend sends a request from userID to friendID, or approves the pending
// one friendID sent earlier.
func (us *userService) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := us.requirePair(ctx, userID, friendID); err != nil {
		return err
	}

	if err := us.friendRepo.Add(ctx, userID, friendID); err != nil {
		logFailure(us.log, "Failed to add friend", err,
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return fmt.Errorf("add friend: %w", err)
	}

	us.log.Info("Friend added",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID),
	)
	return nil
}

func (us *userService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := us.requirePair(ctx, userID, friendID); err != nil {
		return err
	}

	if err := us.friendRepo.Remove(ctx, userID, friendID); err != nil {
		logFailure(us.log, "Failed to remove friend", err,
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return fmt.Errorf("remove friend: %w", err)
	}

	us.log.Info("Friend removed",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID),
	)
	return nil
}

func (us *userService) Friends(ctx context.Context, userID int64) ([]*entity.User, error) {
	if _, err := us.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := us.friendRepo.FriendIDs(ctx, userID)
	if err != nil {
		logFailure(us.log, "Failed to get friends", err, zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get friends: %w", err)
	}

	return us.usersByIDs(ctx, ids)
}

// CommonFriends skips ids that no longer resolve to a user
func (us *userService) CommonFriends(ctx context.Context, userID, otherID int64) ([]*entity.User, error) {
	if _, err := us.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := us.requireUser(ctx, otherID); err != nil {
		return nil, err
	}

	mine, err := us.friendRepo.FriendIDs(ctx, userID)
	if err != nil {
		logFailure(us.log, "Failed to get friends", err, zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get friends: %w", err)
	}

	theirs, err := us.friendRepo.FriendIDs(ctx, otherID)
	if err != nil {
		logFailure(us.log, "Failed to get friends", err, zap.Int64("user_id", otherID))
		return nil, fmt.Errorf("get friends: %w", err)
	}

	lookup := make(map[int64]struct{}, len(theirs))
	for _, id := range theirs {
		lookup[id] = struct{}{}
	}

	common := make([]int64, 0)
	for _, id := range mine {
		if _, ok := lookup[id]; ok {
			common = append(common, id)
		}
	}

	return us.usersByIDs(ctx, common)
}

func (us *userService) FriendRequests(ctx context.Context, userID int64) (*FriendRequests, error) {
	if _, err := us.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	outgoingIDs, err := us.friendRepo.OutgoingIDs(ctx, userID)
	if err != nil {
		logFailure(us.log, "Failed to get outgoing requests", err, zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get outgoing requests: %w", err)
	}

	incomingIDs, err := us.friendRepo.IncomingIDs(ctx, userID)
	if err != nil {
		logFailure(us.log, "Failed to get incoming requests", err, zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get incoming requests: %w", err)
	}

	outgoing, err := us.usersByIDs(ctx, outgoingIDs)
	if err != nil {
		return nil, err
	}

	incoming, err := us.usersByIDs(ctx, incomingIDs)
	if err != nil {
		return nil, err
	}

	return &FriendRequests{Outgoing: outgoing, Incoming: incoming}, nil
}

func (us *userService) requireUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		logFailure(us.log, "Failed to find user", err, zap.Int64("user_id", id))
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return nil, errs.NotFound(errs.EntityUser, id)
	}
	return user, nil
}

func (us *userService) requirePair(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return errs.Invalid("friendId", "User cannot be their own friend")
	}
	if _, err := us.requireUser(ctx, userID); err != nil {
		return err
	}
	_, err := us.requireUser(ctx, friendID)
	return err
}

func (us *userService) usersByIDs(ctx context.Context, ids []int64) ([]*entity.User, error) {
	users, err := us.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		logFailure(us.log, "Failed to get users by IDs", err, zap.Int64s("user_ids", ids))
		return nil, fmt.Errorf("get users: %w", err)
	}
	return users, nil
}

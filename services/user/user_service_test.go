package userservice

import (
	"context"
	"errors"
	"testing"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"assetverse/apperror"
	"assetverse/models"
	"assetverse/providers"
)

type userServiceMocks struct {
	repo     *MockUserRepository
	identity *providers.MockFirebaseProvider
	cache    *providers.MockRedisProvider
}

func newUserServiceWithMocks(t *testing.T) (*userService, userServiceMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mocks := userServiceMocks{
		repo:     NewMockUserRepository(ctrl),
		identity: providers.NewMockFirebaseProvider(ctrl),
		cache:    providers.NewMockRedisProvider(ctrl),
	}
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	service := &userService{
		repo:     mocks.repo,
		identity: mocks.identity,
		cache:    mocks.cache,
		logger:   mockLogger,
	}
	return service, mocks, ctrl
}

func TestRegister(t *testing.T) {
	service, mocks, ctrl := newUserServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("hr registration applies subscription defaults", func(t *testing.T) {
		req := RegisterUserReq{
			Email:       "hr@acme.test",
			Password:    "s3cret-pass",
			Name:        "Hana Reyes",
			Role:        string(models.HRRole),
			CompanyName: "Acme",
		}

		mocks.repo.EXPECT().IsUserExists(ctx, "hr@acme.test").Return(false, nil)
		mocks.identity.EXPECT().CreateUser(ctx, "hr@acme.test", "s3cret-pass", "Hana Reyes").
			Return(&firebaseauth.UserRecord{}, nil)
		mocks.repo.EXPECT().InsertUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user User) error {
				assert.Equal(t, "verified", user.Status)
				assert.Equal(t, 5, *user.PackageLimit)
				assert.Equal(t, 0, *user.CurrentEmployees)
				assert.Equal(t, "basic", *user.Subscription)
				assert.Equal(t, "Acme", *user.CompanyName)
				return nil
			})
		mocks.cache.EXPECT().Del(ctx, gomock.Any()).Return(nil)

		email, err := service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "hr@acme.test", email)
	})

	t.Run("employee registration has no subscription fields", func(t *testing.T) {
		req := RegisterUserReq{
			Email:    "emp@acme.test",
			Password: "s3cret-pass",
			Name:     "Evan Park",
			Role:     string(models.EmployeeRole),
		}

		mocks.repo.EXPECT().IsUserExists(ctx, "emp@acme.test").Return(false, nil)
		mocks.identity.EXPECT().CreateUser(ctx, "emp@acme.test", "s3cret-pass", "Evan Park").
			Return(&firebaseauth.UserRecord{}, nil)
		mocks.repo.EXPECT().InsertUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user User) error {
				assert.Equal(t, "pending", user.Status)
				assert.Nil(t, user.PackageLimit)
				assert.Nil(t, user.HREmail)
				return nil
			})
		mocks.cache.EXPECT().Del(ctx, gomock.Any()).Return(nil)

		_, err := service.Register(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mocks.repo.EXPECT().IsUserExists(ctx, "hr@acme.test").Return(true, nil)

		_, err := service.Register(ctx, RegisterUserReq{Email: "hr@acme.test"})

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("identity provider rejection", func(t *testing.T) {
		mocks.repo.EXPECT().IsUserExists(ctx, "hr@acme.test").Return(false, nil)
		mocks.identity.EXPECT().CreateUser(ctx, "hr@acme.test", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("weak password"))

		_, err := service.Register(ctx, RegisterUserReq{Email: "hr@acme.test"})

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("failed insert removes the auth account", func(t *testing.T) {
		req := RegisterUserReq{
			Email:    "emp@acme.test",
			Password: "s3cret-pass",
			Name:     "Evan Park",
			Role:     string(models.EmployeeRole),
		}

		mocks.repo.EXPECT().IsUserExists(ctx, "emp@acme.test").Return(false, nil)
		mocks.identity.EXPECT().CreateUser(ctx, "emp@acme.test", "s3cret-pass", "Evan Park").
			Return(&firebaseauth.UserRecord{UserInfo: &firebaseauth.UserInfo{UID: "uid-9"}}, nil)
		mocks.repo.EXPECT().InsertUser(ctx, gomock.Any()).Return(errors.New("db down"))
		mocks.identity.EXPECT().DeleteAuthUser(ctx, "uid-9").Return(nil)

		_, err := service.Register(ctx, req)

		assert.Error(t, err)
	})
}

func TestSessionLogin(t *testing.T) {
	service, mocks, ctrl := newUserServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("existing user", func(t *testing.T) {
		mocks.identity.EXPECT().VerifyIDToken(ctx, "good-token").
			Return(&firebaseauth.Token{UID: "uid-1", Claims: map[string]interface{}{"email": "emp@acme.test"}}, nil)
		mocks.repo.EXPECT().GetUserByEmail(ctx, "emp@acme.test").
			Return(User{Email: "emp@acme.test", Name: "Evan Park", Role: string(models.EmployeeRole)}, nil)

		user, access, refresh, err := service.SessionLogin(ctx, "good-token")

		assert.NoError(t, err)
		assert.Equal(t, "emp@acme.test", user.Email)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("unknown identity is provisioned as employee", func(t *testing.T) {
		mocks.identity.EXPECT().VerifyIDToken(ctx, "good-token").
			Return(&firebaseauth.Token{UID: "uid-2", Claims: map[string]interface{}{"email": "new@acme.test"}}, nil)
		mocks.repo.EXPECT().GetUserByEmail(ctx, "new@acme.test").
			Return(User{}, apperror.NotFound("user not found"))
		mocks.identity.EXPECT().GetUserByEmail(ctx, "new@acme.test").
			Return(&firebaseauth.UserRecord{UserInfo: &firebaseauth.UserInfo{DisplayName: "New Person"}}, nil)
		mocks.repo.EXPECT().InsertUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user User) error {
				assert.Equal(t, string(models.EmployeeRole), user.Role)
				assert.Equal(t, "New Person", user.Name)
				return nil
			})
		mocks.cache.EXPECT().Del(ctx, gomock.Any()).Return(nil)

		user, _, _, err := service.SessionLogin(ctx, "good-token")

		assert.NoError(t, err)
		assert.Equal(t, string(models.EmployeeRole), user.Role)
	})

	t.Run("invalid token", func(t *testing.T) {
		mocks.identity.EXPECT().VerifyIDToken(ctx, "bad-token").
			Return(nil, errors.New("token expired"))

		_, _, _, err := service.SessionLogin(ctx, "bad-token")

		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	})
}

func TestRemoveEmployee(t *testing.T) {
	service, mocks, ctrl := newUserServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("detaches and frees a seat", func(t *testing.T) {
		mocks.repo.EXPECT().RunInTx(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error { return fn(nil) })
		mocks.repo.EXPECT().DetachEmployee(ctx, gomock.Nil(), "emp@acme.test", "hr@acme.test").Return(int64(1), nil)
		mocks.repo.EXPECT().DecrementCurrentEmployees(ctx, gomock.Nil(), "hr@acme.test").Return(nil)

		modified, err := service.RemoveEmployee(ctx, "emp@acme.test", "hr@acme.test")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("not on the team is a no-op", func(t *testing.T) {
		mocks.repo.EXPECT().RunInTx(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error { return fn(nil) })
		mocks.repo.EXPECT().DetachEmployee(ctx, gomock.Nil(), "stranger@acme.test", "hr@acme.test").Return(int64(0), nil)

		modified, err := service.RemoveEmployee(ctx, "stranger@acme.test", "hr@acme.test")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), modified)
	})
}

func TestGetMyTeam(t *testing.T) {
	service, mocks, ctrl := newUserServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("unaffiliated employee sees an empty team", func(t *testing.T) {
		mocks.repo.EXPECT().GetEmployeeHR(ctx, "emp@acme.test").Return(nil, nil)

		team, err := service.GetMyTeam(ctx, "emp@acme.test")

		assert.NoError(t, err)
		assert.Empty(t, team)
	})

	t.Run("team members come from the HR affiliation", func(t *testing.T) {
		hr := "hr@acme.test"
		members := []TeamMember{{Email: "emp@acme.test", Name: "Evan Park"}}
		mocks.repo.EXPECT().GetEmployeeHR(ctx, "emp@acme.test").Return(&hr, nil)
		mocks.repo.EXPECT().GetTeamMembers(ctx, hr).Return(members, nil)

		team, err := service.GetMyTeam(ctx, "emp@acme.test")

		assert.NoError(t, err)
		assert.Equal(t, members, team)
	})
}

package userservice

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"assetverse/apperror"
	"assetverse/models"
	"assetverse/providers"
	"assetverse/providers/middlewareprovider"
)

type UserService interface {
	Register(ctx context.Context, req RegisterUserReq) (string, error)
	SessionLogin(ctx context.Context, idToken string) (User, string, string, error)
	Logout(ctx context.Context, email string) error
	GetUser(ctx context.Context, email string) (User, error)
	UpdateUser(ctx context.Context, callerEmail, email string, req UpdateUserReq) (int64, error)
	RemoveEmployee(ctx context.Context, employeeEmail, hrEmail string) (int64, error)
	GetMyTeam(ctx context.Context, employeeEmail string) ([]TeamMember, error)
	GetMyEmployees(ctx context.Context, hrEmail string, limit, offset int) ([]User, int, error)
}

type userService struct {
	repo     UserRepository
	identity providers.FirebaseProvider
	cache    providers.RedisProvider
	logger   providers.ZapLoggerProvider
}

func NewUserService(repo UserRepository, identity providers.FirebaseProvider, cache providers.RedisProvider, logger providers.ZapLoggerProvider) UserService {
	return &userService{repo: repo, identity: identity, cache: cache, logger: logger}
}

const (
	defaultPackageLimit = 5
	defaultSubscription = "basic"
)

func (s *userService) Register(ctx context.Context, req RegisterUserReq) (string, error) {
	exists, err := s.repo.IsUserExists(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperror.Validation("email already registered")
	}

	rec, err := s.identity.CreateUser(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		s.logger.GetLogger().Error("identity provider rejected account creation", zap.Error(err))
		return "", apperror.Wrap(apperror.KindValidation, "could not create account", err)
	}

	user := User{
		Email:  req.Email,
		Name:   req.Name,
		Role:   req.Role,
		Status: "pending",
	}
	if req.PhotoURL != "" {
		user.PhotoURL = &req.PhotoURL
	}
	if req.DateOfBirth != "" {
		user.DateOfBirth = &req.DateOfBirth
	}
	if req.Role == string(models.HRRole) {
		limit := defaultPackageLimit
		current := 0
		subscription := defaultSubscription
		user.Status = "verified"
		user.PackageLimit = &limit
		user.CurrentEmployees = &current
		user.Subscription = &subscription
		user.CompanyName = &req.CompanyName
		if req.CompanyLogo != "" {
			user.CompanyLogo = &req.CompanyLogo
		}
		if req.CompanyDetails != "" {
			user.CompanyDetails = &req.CompanyDetails
		}
	}

	if err := s.repo.InsertUser(ctx, user); err != nil {
		// the auth account must not outlive a failed insert, otherwise the
		// email can never register again
		if delErr := s.identity.DeleteAuthUser(ctx, rec.UID); delErr != nil {
			s.logger.GetLogger().Error("failed to remove orphaned auth account",
				zap.String("email", req.Email), zap.Error(delErr))
		}
		return "", err
	}
	s.invalidateRoleCache(ctx, req.Email)

	s.logger.GetLogger().Info("user registered",
		zap.String("email", req.Email), zap.String("role", req.Role))
	return req.Email, nil
}

// SessionLogin exchanges a verified identity-provider token for a session
// token pair. Identities without a user record are provisioned as employees
// on the spot (the federated sign-in path), which is why role caches get
// invalidated here.
func (s *userService) SessionLogin(ctx context.Context, idToken string) (User, string, string, error) {
	token, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return User{}, "", "", apperror.Wrap(apperror.KindUnauthorized, "invalid credentials", err)
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return User{}, "", "", apperror.Unauthorized("identity token carries no email")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if !apperror.IsKind(err, apperror.KindNotFound) {
			return User{}, "", "", err
		}
		user, err = s.provisionFederatedUser(ctx, token.UID, email)
		if err != nil {
			return User{}, "", "", err
		}
	}

	accessToken, err := middlewareprovider.GenerateJWT(user.Email, user.Role)
	if err != nil {
		return User{}, "", "", err
	}
	refreshToken, err := middlewareprovider.GenerateRefreshToken(user.Email)
	if err != nil {
		return User{}, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

func (s *userService) provisionFederatedUser(ctx context.Context, uid, email string) (User, error) {
	name := email
	var photoURL *string
	if record, err := s.identity.GetUserByEmail(ctx, email); err == nil {
		if record.DisplayName != "" {
			name = record.DisplayName
		}
		if record.PhotoURL != "" {
			photo := record.PhotoURL
			photoURL = &photo
		}
	} else {
		s.logger.GetLogger().Warn("could not load identity profile, using email as name",
			zap.String("uid", uid), zap.Error(err))
	}

	user := User{
		Email:    email,
		Name:     name,
		PhotoURL: photoURL,
		Role:     string(models.EmployeeRole),
		Status:   "pending",
	}
	if err := s.repo.InsertUser(ctx, user); err != nil {
		return User{}, err
	}
	s.invalidateRoleCache(ctx, email)

	s.logger.GetLogger().Info("federated identity provisioned as employee", zap.String("email", email))
	return user, nil
}

func (s *userService) Logout(ctx context.Context, email string) error {
	s.invalidateRoleCache(ctx, email)
	return nil
}

func (s *userService) GetUser(ctx context.Context, email string) (User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

func (s *userService) UpdateUser(ctx context.Context, callerEmail, email string, req UpdateUserReq) (int64, error) {
	if callerEmail != email {
		return 0, apperror.Forbidden("cannot update another user's profile")
	}

	modified, err := s.repo.UpdateUserProfile(ctx, email, req)
	if err != nil {
		return 0, err
	}

	// Mirror display name and photo to the identity provider so the
	// published identity matches the user record. A mirror failure does
	// not undo the record update.
	if req.Name != "" || req.PhotoURL != "" {
		if record, err := s.identity.GetUserByEmail(ctx, email); err == nil {
			if err := s.identity.UpdateProfile(ctx, record.UID, req.Name, req.PhotoURL); err != nil {
				s.logger.GetLogger().Warn("failed to mirror profile to identity provider",
					zap.String("email", email), zap.Error(err))
			}
		}
	}
	return modified, nil
}

func (s *userService) RemoveEmployee(ctx context.Context, employeeEmail, hrEmail string) (int64, error) {
	var modified int64
	err := s.repo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		modified, err = s.repo.DetachEmployee(ctx, tx, employeeEmail, hrEmail)
		if err != nil {
			return err
		}
		if modified == 0 {
			// Not on this HR's team; benign no-op per the write contract.
			return nil
		}
		return s.repo.DecrementCurrentEmployees(ctx, tx, hrEmail)
	})
	if err != nil {
		return 0, err
	}
	return modified, nil
}

func (s *userService) GetMyTeam(ctx context.Context, employeeEmail string) ([]TeamMember, error) {
	hrEmail, err := s.repo.GetEmployeeHR(ctx, employeeEmail)
	if err != nil {
		return nil, err
	}
	if hrEmail == nil {
		return []TeamMember{}, nil
	}
	return s.repo.GetTeamMembers(ctx, *hrEmail)
}

func (s *userService) GetMyEmployees(ctx context.Context, hrEmail string, limit, offset int) ([]User, int, error) {
	return s.repo.GetEmployeesByHR(ctx, hrEmail, limit, offset)
}

func (s *userService) invalidateRoleCache(ctx context.Context, email string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, middlewareprovider.RoleCacheKey(email)); err != nil {
		s.logger.GetLogger().Warn("failed to invalidate role cache", zap.String("email", email), zap.Error(err))
	}
}

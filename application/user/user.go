package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	ratelimitrepo "github.com/muhammadheryan/marketplace/repository/ratelimit"
	redisrepo "github.com/muhammadheryan/marketplace/repository/redis"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	userrepo "github.com/muhammadheryan/marketplace/repository/user"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/random"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const otpKeyPrefix = "otp:"

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	RequestOTP(ctx context.Context, req *model.OTPRequest) (*model.OTPRequestResponse, error)
	VerifyOTP(ctx context.Context, req *model.OTPVerifyRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Session, error)
	Logout(ctx context.Context, tokenID string) error
	GetRoles(ctx context.Context, userID uint64) ([]string, error)
	AssignRole(ctx context.Context, userID uint64, role string) error
	RevokeRole(ctx context.Context, userID uint64, role string) error
	GetProfile(ctx context.Context, userID uint64) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.ProfileResponse, error)
}

type UserAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	limiter   ratelimitrepo.RateLimiter
	publisher rabbitmq.MessagePublisher
}

func NewUserApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository,
	limiter ratelimitrepo.RateLimiter, publisher rabbitmq.MessagePublisher) UserApp {
	return &UserAppImpl{
		config:    config,
		txRepo:    txRepo,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		limiter:   limiter,
		publisher: publisher,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	// Check if user exists by email or phone
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity, err := s.createBuyer(ctx, &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, constant.ErrCredentialExists) {
			return nil, err
		}
		logger.Error("[Register] err createBuyer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Name:  userEntity.Name,
		Email: userEntity.Email,
	}, nil
}

// createBuyer inserts the user and grants the buyer role atomically.
func (s *UserAppImpl) createBuyer(ctx context.Context, entity *model.UserEntity) (*model.UserEntity, error) {
	var created *model.UserEntity
	err := s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.userRepo.WithTx(tx)
		var err error
		if created, err = repo.Create(ctx, entity); err != nil {
			return err
		}
		return repo.AssignRole(ctx, created.ID, constant.RoleBuyer)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := s.allow(ctx, "[Login]", "login:"+req.Identifier, s.config.Auth.LoginLimit, s.config.Auth.LoginWindow); err != nil {
		return nil, err
	}

	// Find user by email or phone
	filter := &model.UserFilter{}
	if isEmail(req.Identifier) {
		filter.Email = req.Identifier
	} else {
		filter.Phone = req.Identifier
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	return s.issueToken(ctx, "[Login]", user)
}

func (s *UserAppImpl) RequestOTP(ctx context.Context, req *model.OTPRequest) (*model.OTPRequestResponse, error) {
	if err := s.allow(ctx, "[RequestOTP]", "otp:request:"+req.Phone, s.config.OTP.RequestLimit, s.config.OTP.RequestWindow); err != nil {
		return nil, err
	}

	code, err := random.NumericCode(s.config.OTP.Length)
	if err != nil {
		logger.Error("[RequestOTP] err random.NumericCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[RequestOTP] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetWithTTL(ctx, otpKeyPrefix+req.Phone, string(hash), s.config.OTP.TTL); err != nil {
		logger.Error("[RequestOTP] err SetWithTTL", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher == nil {
		logger.Warn("[RequestOTP] otp delivery is not configured")
	} else {
		msg := model.OTPMessage{Phone: req.Phone, Code: code, ExpiresAt: time.Now().Add(s.config.OTP.TTL)}
		if err := s.publisher.PublishOTP(ctx, msg); err != nil {
			logger.Error("[RequestOTP] err PublishOTP", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return &model.OTPRequestResponse{ExpiresIn: int64(s.config.OTP.TTL.Seconds())}, nil
}

// VerifyOTP consumes a valid code and logs the phone owner in, registering a buyer for unknown phones.
func (s *UserAppImpl) VerifyOTP(ctx context.Context, req *model.OTPVerifyRequest) (*model.LoginResponse, error) {
	if err := s.allow(ctx, "[VerifyOTP]", "otp:verify:"+req.Phone, s.config.OTP.VerifyLimit, s.config.OTP.VerifyWindow); err != nil {
		return nil, err
	}

	key := otpKeyPrefix + req.Phone
	hash, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		logger.Error("[VerifyOTP] err redisRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hash == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Code)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}
	if err := s.redisRepo.Delete(ctx, key); err != nil {
		logger.Error("[VerifyOTP] err redisRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[VerifyOTP] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = req.Phone
		}
		user, err = s.createBuyer(ctx, &model.UserEntity{Name: name, Phone: req.Phone})
		if err != nil {
			logger.Error("[VerifyOTP] err createBuyer", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return s.issueToken(ctx, "[VerifyOTP]", user)
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session: %w", err)
	}
	if redisUserID != userID {
		return nil, fmt.Errorf("token does not match user session")
	}

	return &model.Session{UserID: userID, TokenID: jti}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenID string) error {
	if err := s.redisRepo.DeleteSession(ctx, tokenID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) GetRoles(ctx context.Context, userID uint64) ([]string, error) {
	roles, err := s.userRepo.GetRoles(ctx, userID)
	if err != nil {
		logger.Error("[GetRoles] err userRepo.GetRoles", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return roles, nil
}

func (s *UserAppImpl) AssignRole(ctx context.Context, userID uint64, role string) error {
	if !constant.IsValidRole(role) {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.userRepo.AssignRole(ctx, userID, role); err != nil {
		if ce, ok := errors.AsCustomError(err); ok {
			return ce
		}
		logger.Error("[AssignRole] err userRepo.AssignRole", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) RevokeRole(ctx context.Context, userID uint64, role string) error {
	if !constant.IsValidRole(role) {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	revoked, err := s.userRepo.RevokeRole(ctx, userID, role)
	if err != nil {
		logger.Error("[RevokeRole] err userRepo.RevokeRole", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !revoked {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, userID uint64) (*model.ProfileResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	roles, err := s.userRepo.GetRoles(ctx, userID)
	if err != nil {
		logger.Error("[GetProfile] err userRepo.GetRoles", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		logger.Error("[GetProfile] err userRepo.GetProfile", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Roles: roles,
	}
	if profile != nil {
		resp.Address = profile.Address
		resp.City = profile.City
		resp.PostalCode = profile.PostalCode
	}
	return resp, nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	err := s.userRepo.UpsertProfile(ctx, &model.UserProfileEntity{
		UserID:     userID,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpsertProfile", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.GetProfile(ctx, userID)
}

func (s *UserAppImpl) allow(ctx context.Context, op, key string, limit int64, window time.Duration) error {
	ok, err := s.limiter.Allow(ctx, key, limit, window)
	if err != nil {
		logger.Error(op+" err limiter.Allow", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrTooManyRequests)
	}
	return nil
}

func (s *UserAppImpl) issueToken(ctx context.Context, op string, user *model.UserEntity) (*model.LoginResponse, error) {
	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error(op+" err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error(op+" err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Token: token,
	}, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", err
	}
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	return strings.ContainsRune(identifier, '@')
}

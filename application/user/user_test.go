package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appuser "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	ratelimitmocks "github.com/muhammadheryan/marketplace/mocks/repository/ratelimit"
	redismocks "github.com/muhammadheryan/marketplace/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/marketplace/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/marketplace/mocks/repository/user"
	rabbitmocks "github.com/muhammadheryan/marketplace/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fields struct {
	config    *config.Config
	txRepo    *txmocks.TxRepository
	userRepo  *usermocks.UserRepository
	redisRepo *redismocks.RedisRepository
	limiter   *ratelimitmocks.RateLimiter
	publisher *rabbitmocks.MessagePublisher
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			Auth: config.AuthConfig{
				JWTSecret:      "test-secret-key-for-jwt-signing",
				JWTExpiration:  time.Hour,
				SessionExpTime: time.Hour,
				LoginLimit:     5,
				LoginWindow:    time.Minute,
			},
			OTP: config.OTPConfig{
				Length:        6,
				TTL:           5 * time.Minute,
				RequestLimit:  3,
				RequestWindow: 10 * time.Minute,
				VerifyLimit:   5,
				VerifyWindow:  10 * time.Minute,
			},
		},
		txRepo:    txmocks.NewTxRepository(t),
		userRepo:  usermocks.NewUserRepository(t),
		redisRepo: redismocks.NewRedisRepository(t),
		limiter:   ratelimitmocks.NewRateLimiter(t),
		publisher: rabbitmocks.NewMessagePublisher(t),
	}
}

func (f fields) app() appuser.UserApp {
	return appuser.NewUserApp(f.config, f.txRepo, f.userRepo, f.redisRepo, f.limiter, f.publisher)
}

func (f fields) expectTx() {
	f.txRepo.
		On("WithTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(*sqlx.Tx) error) error { return fn(&sqlx.Tx{}) }).
		Once()
	f.userRepo.On("WithTx", mock.Anything).Return(f.userRepo).Maybe()
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestUserApp_Register(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	defaultReq := &model.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Phone:    "081234567890",
		Password: "password123",
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user as buyer",
			args: args{ctx: context.Background(), req: defaultReq},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).Return(nil, nil).Once()
				f.expectTx()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Name == "Test User" &&
							ent.Email == "test@example.com" &&
							ent.Phone == "081234567890" &&
							bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
					})).
					Return(&model.UserEntity{ID: 1, Name: "Test User", Email: "test@example.com", Phone: "081234567890"}, nil).
					Once()
				f.userRepo.On("AssignRole", mock.Anything, uint64(1), constant.RoleBuyer).Return(nil).Once()
			},
			want: &model.RegisterResponse{Name: "Test User", Email: "test@example.com"},
		},
		{
			name: "error: email already exists",
			args: args{ctx: context.Background(), req: defaultReq},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{ID: 1, Email: "test@example.com"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone already exists",
			args: args{ctx: context.Background(), req: defaultReq},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(&model.UserEntity{ID: 1, Phone: "081234567890"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: duplicate detected on insert",
			args: args{ctx: context.Background(), req: defaultReq},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.expectTx()
				f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, cerr.SetCustomError(constant.ErrCredentialExists)).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Get email returns error",
			args: args{ctx: context.Background(), req: defaultReq},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: role assignment fails",
			args: args{ctx: context.Background(), req: defaultReq},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.expectTx()
				f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(&model.UserEntity{ID: 1}, nil).Once()
				f.userRepo.On("AssignRole", mock.Anything, uint64(1), constant.RoleBuyer).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &model.UserEntity{
		ID:           1,
		Name:         "Test User",
		Email:        "test@example.com",
		Phone:        "081234567890",
		PasswordHash: string(hashedPassword),
	}

	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with email",
			req:  &model.LoginRequest{Identifier: "test@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, "login:test@example.com", int64(5), time.Minute).Return(true, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).Return(user, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "success: login with phone",
			req:  &model.LoginRequest{Identifier: "081234567890", Password: "password123"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, "login:081234567890", int64(5), time.Minute).Return(true, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).Return(user, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "error: rate limited",
			req:  &model.LoginRequest{Identifier: "test@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, "login:test@example.com", int64(5), time.Minute).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTooManyRequests,
		},
		{
			name: "error: user not found",
			req:  &model.LoginRequest{Identifier: "notfound@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "notfound@example.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: invalid password",
			req:  &model.LoginRequest{Identifier: "test@example.com", Password: "wrongpassword"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).Return(user, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: SetSession returns error",
			req:  &model.LoginRequest{Identifier: "test@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).Return(user, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(errors.New("redis error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, "Test User", got.Name)
			assert.NotEmpty(t, got.Token)
		})
	}
}

func TestUserApp_RequestOTP(t *testing.T) {
	t.Run("success: stores hash and publishes code", func(t *testing.T) {
		f := newFields(t)
		var storedHash string
		f.limiter.On("Allow", mock.Anything, "otp:request:+628111", int64(3), 10*time.Minute).Return(true, nil).Once()
		f.redisRepo.On("SetWithTTL", mock.Anything, "otp:+628111", mock.AnythingOfType("string"), 5*time.Minute).
			Run(func(args mock.Arguments) { storedHash = args.String(2) }).
			Return(nil).Once()
		f.publisher.On("PublishOTP", mock.Anything, mock.MatchedBy(func(msg model.OTPMessage) bool {
			return msg.Phone == "+628111" && len(msg.Code) == 6 &&
				bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(msg.Code)) == nil
		})).Return(nil).Once()

		got, err := f.app().RequestOTP(context.Background(), &model.OTPRequest{Phone: "+628111"})
		require.NoError(t, err)
		assert.Equal(t, int64(300), got.ExpiresIn)
	})

	t.Run("error: rate limited", func(t *testing.T) {
		f := newFields(t)
		f.limiter.On("Allow", mock.Anything, "otp:request:+628111", int64(3), 10*time.Minute).Return(false, nil).Once()

		_, err := f.app().RequestOTP(context.Background(), &model.OTPRequest{Phone: "+628111"})
		assertErrCode(t, err, constant.ErrTooManyRequests)
	})

	t.Run("error: publish fails", func(t *testing.T) {
		f := newFields(t)
		f.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
		f.redisRepo.On("SetWithTTL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		f.publisher.On("PublishOTP", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		_, err := f.app().RequestOTP(context.Background(), &model.OTPRequest{Phone: "+628111"})
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestUserApp_VerifyOTP(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)

	tests := []struct {
		name     string
		req      *model.OTPVerifyRequest
		mockCall func(f fields)
		wantName string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: existing user",
			req:  &model.OTPVerifyRequest{Phone: "+628111", Code: "123456"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, "otp:verify:+628111", int64(5), 10*time.Minute).Return(true, nil).Once()
				f.redisRepo.On("Get", mock.Anything, "otp:+628111").Return(string(hash), nil).Once()
				f.redisRepo.On("Delete", mock.Anything, "otp:+628111").Return(nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "+628111"}).
					Return(&model.UserEntity{ID: 4, Name: "Alice", Phone: "+628111"}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(4), time.Hour).Return(nil).Once()
			},
			wantName: "Alice",
		},
		{
			name: "success: unknown phone registers a buyer",
			req:  &model.OTPVerifyRequest{Phone: "+628111", Code: "123456", Name: "Bob"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
				f.redisRepo.On("Get", mock.Anything, "otp:+628111").Return(string(hash), nil).Once()
				f.redisRepo.On("Delete", mock.Anything, "otp:+628111").Return(nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "+628111"}).Return(nil, nil).Once()
				f.expectTx()
				f.userRepo.On("Create", mock.Anything, &model.UserEntity{Name: "Bob", Phone: "+628111"}).
					Return(&model.UserEntity{ID: 9, Name: "Bob", Phone: "+628111"}, nil).Once()
				f.userRepo.On("AssignRole", mock.Anything, uint64(9), constant.RoleBuyer).Return(nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(9), time.Hour).Return(nil).Once()
			},
			wantName: "Bob",
		},
		{
			name: "error: code expired or never requested",
			req:  &model.OTPVerifyRequest{Phone: "+628111", Code: "123456"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
				f.redisRepo.On("Get", mock.Anything, "otp:+628111").Return("", nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
		{
			name: "error: wrong code keeps the stored otp",
			req:  &model.OTPVerifyRequest{Phone: "+628111", Code: "654321"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
				f.redisRepo.On("Get", mock.Anything, "otp:+628111").Return(string(hash), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
		{
			name: "error: too many attempts",
			req:  &model.OTPVerifyRequest{Phone: "+628111", Code: "123456"},
			mockCall: func(f fields) {
				f.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTooManyRequests,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().VerifyOTP(context.Background(), tt.req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.NotEmpty(t, got.Token)
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	f := newFields(t)
	var jti string
	f.limiter.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
		Return(&model.UserEntity{ID: 1, Name: "Test User", PasswordHash: string(hashedPassword)}, nil).Once()
	f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).Once()

	app := f.app()
	login, err := app.Login(context.Background(), &model.LoginRequest{Identifier: "test@example.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("success: valid token", func(t *testing.T) {
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(1), nil).Once()

		session, err := app.ValidateToken(context.Background(), login.Token)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), session.UserID)
		assert.Equal(t, jti, session.TokenID)
	})

	t.Run("error: session belongs to another user", func(t *testing.T) {
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(2), nil).Once()

		_, err := app.ValidateToken(context.Background(), login.Token)
		assert.Error(t, err)
	})

	t.Run("error: logged out session", func(t *testing.T) {
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(0), nil).Once()

		_, err := app.ValidateToken(context.Background(), login.Token)
		assert.Error(t, err)
	})

	t.Run("error: malformed token", func(t *testing.T) {
		_, err := app.ValidateToken(context.Background(), "not-a-jwt")
		assert.Error(t, err)
	})
}

func TestUserApp_AssignRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		mockCall func(f fields)
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			role: constant.RoleSeller,
			mockCall: func(f fields) {
				f.userRepo.On("AssignRole", mock.Anything, uint64(3), constant.RoleSeller).Return(nil).Once()
			},
		},
		{
			name:     "error: unknown role",
			role:     "superuser",
			mockCall: func(f fields) {},
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: already assigned",
			role: constant.RoleSeller,
			mockCall: func(f fields) {
				f.userRepo.On("AssignRole", mock.Anything, uint64(3), constant.RoleSeller).
					Return(cerr.SetCustomError(constant.ErrRoleAlreadyAssigned)).Once()
			},
			errCode: constant.ErrRoleAlreadyAssigned,
		},
		{
			name: "error: unknown user",
			role: constant.RoleSeller,
			mockCall: func(f fields) {
				f.userRepo.On("AssignRole", mock.Anything, uint64(3), constant.RoleSeller).
					Return(cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := f.app().AssignRole(context.Background(), 3, tt.role)
			if tt.errCode == constant.Successful {
				assert.NoError(t, err)
				return
			}
			assertErrCode(t, err, tt.errCode)
		})
	}
}

func TestUserApp_RevokeRole_NotHeld(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("RevokeRole", mock.Anything, uint64(3), constant.RoleSeller).Return(false, nil).Once()

	err := f.app().RevokeRole(context.Background(), 3, constant.RoleSeller)
	assertErrCode(t, err, constant.ErrNotFound)
}

func TestUserApp_UpdateProfile(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("UpsertProfile", mock.Anything, &model.UserProfileEntity{UserID: 3, Address: "Jl. Merdeka 1", City: "Bandung", PostalCode: "40111"}).
		Return(nil).Once()
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).
		Return(&model.UserEntity{ID: 3, Name: "Alice", Phone: "+628111"}, nil).Once()
	f.userRepo.On("GetRoles", mock.Anything, uint64(3)).Return([]string{"buyer", "seller"}, nil).Once()
	f.userRepo.On("GetProfile", mock.Anything, uint64(3)).
		Return(&model.UserProfileEntity{UserID: 3, Address: "Jl. Merdeka 1", City: "Bandung", PostalCode: "40111"}, nil).Once()

	got, err := f.app().UpdateProfile(context.Background(), 3, &model.UpdateProfileRequest{Address: "Jl. Merdeka 1", City: "Bandung", PostalCode: "40111"})
	require.NoError(t, err)
	assert.Equal(t, &model.ProfileResponse{
		ID:         3,
		Name:       "Alice",
		Phone:      "+628111",
		Roles:      []string{"buyer", "seller"},
		Address:    "Jl. Merdeka 1",
		City:       "Bandung",
		PostalCode: "40111",
	}, got)
}

func TestUserApp_GetProfile_NotFound(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(nil, nil).Once()

	_, err := f.app().GetProfile(context.Background(), 3)
	assertErrCode(t, err, constant.ErrNotFound)
}

func TestUserApp_Logout(t *testing.T) {
	f := newFields(t)
	f.redisRepo.On("DeleteSession", mock.Anything, "jti-1").Return(nil).Once()

	assert.NoError(t, f.app().Logout(context.Background(), "jti-1"))
}

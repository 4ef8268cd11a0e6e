package providers

import (
	"context"
	"net/http"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"assetverse/models"
)

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequireRole(roles ...models.Role) func(http.Handler) http.Handler
	GetUserAndRoleFromContext(r *http.Request) (string, string, error)
}

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetRedisAddr() string
	GetFirebaseCredentialsFile() string
	GetPaymentGatewayURL() string
	GetPaymentGatewayKey() string
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

type RedisProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// FirebaseProvider wraps the external identity collaborator. The rest of
// the system only ever sees these operations; provider internals stay opaque.
type FirebaseProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
	GetUserByEmail(ctx context.Context, email string) (*firebaseauth.UserRecord, error)
	CreateUser(ctx context.Context, email, password, displayName string) (*firebaseauth.UserRecord, error)
	UpdateProfile(ctx context.Context, uid, displayName, photoURL string) error
	DeleteAuthUser(ctx context.Context, uid string) error
}

type ChargeReq struct {
	Email       string
	AmountCents int
	Description string
}

type ChargeRes struct {
	TransactionID string
}

// PaymentProvider is the opaque payment collaborator: one charge call,
// success or failure, nothing else leaks in.
type PaymentProvider interface {
	Charge(ctx context.Context, req ChargeReq) (ChargeRes, error)
}

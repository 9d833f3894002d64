package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"standards-hub/backend/common"
	huberrors "standards-hub/backend/common/errors"
	"standards-hub/backend/common/i18n"

	"github.com/redis/go-redis/v9"
)

// Session is the value stored per admin token.
type Session struct {
	CreatedAt time.Time
	LastSeen  time.Time
}

// SessionStore holds active admin tokens. Presence of a token grants admin
// capability; absence denies it. There are no roles or scopes.
type SessionStore interface {
	Put(ctx context.Context, token string, session Session) error
	Get(ctx context.Context, token string) (Session, bool, error)
	Delete(ctx context.Context, token string) error
}

// MemorySessionStore keeps sessions in process memory. Sessions do not survive a
// restart. A zero TTL means tokens stay valid until logout.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

func (s *MemorySessionStore) Put(_ context.Context, token string, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return Session{}, false, nil
	}
	if s.ttl > 0 && time.Since(session.CreatedAt) > s.ttl {
		delete(s.sessions, token)
		return Session{}, false, nil
	}
	session.LastSeen = time.Now()
	s.sessions[token] = session
	return session, true, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// RedisSessionStore shares sessions across instances. Expiry is delegated to Redis
// key TTLs.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

const redisSessionPrefix = "admin:session:"

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func (s *RedisSessionStore) Put(ctx context.Context, token string, session Session) error {
	return s.rdb.Set(ctx, redisSessionPrefix+token, common.FormatTime(session.CreatedAt), s.ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (Session, bool, error) {
	val, err := s.rdb.Get(ctx, redisSessionPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	createdAt, err := time.Parse(common.RFC3339MilliZ, val)
	if err != nil {
		createdAt = time.Time{}
	}
	return Session{CreatedAt: createdAt, LastSeen: time.Now()}, true, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, redisSessionPrefix+token).Err()
}

var sessionStore SessionStore = NewMemorySessionStore(0)

// InitSessionStore picks the session backend: Redis when configured, otherwise
// process-local memory.
func InitSessionStore() {
	if common.RedisEnabled && common.RDB != nil {
		sessionStore = NewRedisSessionStore(common.RDB, common.SessionTTL)
		common.SysLog("admin sessions stored in Redis")
		return
	}
	sessionStore = NewMemorySessionStore(common.SessionTTL)
	common.SysLog("admin sessions stored in process memory")
}

// SetSessionStore injects a store, mainly for tests.
func SetSessionStore(store SessionStore) {
	sessionStore = store
}

// AdminLogin checks the shared secret and mints a new opaque token on success.
// There is no lockout and no attempt counting.
func AdminLogin(ctx context.Context, password string, lang string) (string, error) {
	if !common.ValidateAdminPassword(password) {
		return "", i18n.New(huberrors.ErrInvalidCredentials, lang)
	}
	token, err := common.GenerateToken()
	if err != nil {
		return "", err
	}
	now := time.Now()
	if err := sessionStore.Put(ctx, token, Session{CreatedAt: now, LastSeen: now}); err != nil {
		return "", err
	}
	return token, nil
}

// AdminLogout invalidates a token. Logging out an unknown token is not an error.
func AdminLogout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return sessionStore.Delete(ctx, token)
}

// IsAdmin reports whether the token is currently in the active set.
func IsAdmin(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	_, ok, err := sessionStore.Get(ctx, token)
	if err != nil {
		common.SysError("session store lookup failed: " + err.Error())
		return false
	}
	return ok
}

package service

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/constants"
	"github.com/google/uuid"
)

type ISessionService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Validate(ctx context.Context, token string) error
	Logout(ctx context.Context, token string) error
}

// SessionService 後台登入
// 單一組帳密來自設定檔  session只存在記憶體  server重啟全部失效
// 已知的弱認證模式  這個規模的店面後台先這樣
type SessionService struct {
	adminEmail    string
	adminPassword string

	mu       sync.RWMutex
	sessions map[string]time.Time
}

func NewSessionService(adminEmail, adminPassword string) ISessionService {
	return &SessionService{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		sessions:      make(map[string]time.Time),
	}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !emailOK || !passOK {
		return "", apperr.New(apperr.UnauthenticatedCode, "invalid admin credentials")
	}

	token := uuid.New().String()
	expiry := time.Now().Add(time.Duration(constants.AdminSessionDuration) * time.Hour)

	s.mu.Lock()
	s.sessions[token] = expiry
	s.mu.Unlock()

	return token, nil
}

func (s *SessionService) Validate(ctx context.Context, token string) error {
	s.mu.RLock()
	expiry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return apperr.New(apperr.UnauthenticatedCode, "invalid session")
	}
	if time.Now().After(expiry) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return apperr.New(apperr.UnauthenticatedCode, "session expired")
	}
	return nil
}

func (s *SessionService) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

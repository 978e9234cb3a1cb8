package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/L0dyv/litepad/internal/client/api"
	"github.com/L0dyv/litepad/internal/client/storage"
	"github.com/L0dyv/litepad/internal/validation"
	pkgapi "github.com/L0dyv/litepad/pkg/api"
)

// ErrSignedOut возвращается, когда устройство больше не авторизовано:
// токенов нет или relay отверг refresh. Вызывающий код должен
// предложить пользователю войти заново.
var ErrSignedOut = errors.New("device is signed out")

// refreshLeeway — запас до истечения access token, при котором
// токен обновляется заранее, а не по факту 401.
const refreshLeeway = 30 * time.Second

// Service предоставляет функции авторизации устройства
type Service struct {
	apiClient api.ClientAPI
	authStore storage.AuthStorage
	sessions  storage.SessionStorage
	relayURL  string
}

// NewService создает новый сервис авторизации
func NewService(apiClient api.ClientAPI, authStore storage.AuthStorage, sessions storage.SessionStorage, relayURL string) *Service {
	return &Service{
		apiClient: apiClient,
		authStore: authStore,
		sessions:  sessions,
		relayURL:  relayURL,
	}
}

// Register регистрирует новый аккаунт на relay
func (s *Service) Register(ctx context.Context, username, password string) (*pkgapi.RegisterResponse, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return resp, nil
}

// Login выполняет аутентификацию, сохраняет токены локально
// и включает синхронизацию для этого устройства
func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := s.saveTokens(ctx, username, resp); err != nil {
		return err
	}

	// Включаем синхронизацию: DeviceID уже стабилен (GetSession
	// создает его при первом обращении)
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sync session: %w", err)
	}
	session.AccountID = username
	session.RelayURL = s.relayURL
	session.Enabled = true
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save sync session: %w", err)
	}

	return nil
}

// Logout выполняет выход из системы.
// Удаляет локальные данные авторизации и опционально уведомляет relay.
func (s *Service) Logout(ctx context.Context) error {
	// 1. Пытаемся уведомить relay о logout (best effort)
	authData, err := s.authStore.GetAuth(ctx)
	if err != nil {
		slog.Debug("no auth data found during logout", "error", err)
	} else {
		if logoutErr := s.apiClient.Logout(ctx, authData.AccessToken); logoutErr != nil {
			// Не прерываем процесс, если relay недоступен
			slog.Warn("failed to logout on relay", "error", logoutErr)
		}
	}

	// 2. Всегда удаляем локальные токены, даже если relay недоступен
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}

	// 3. Выключаем синхронизацию; lastSyncAt сохраняется на случай
	// повторного входа того же аккаунта
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sync session: %w", err)
	}
	session.Enabled = false
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save sync session: %w", err)
	}

	return nil
}

// Credentials возвращает действующий access token, прозрачно обновляя
// пару токенов, если текущий истек или вот-вот истечет.
// Возвращает ErrSignedOut, если устройство не авторизовано или relay
// отверг refresh token.
func (s *Service) Credentials(ctx context.Context) (string, error) {
	authData, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", ErrSignedOut
		}
		return "", fmt.Errorf("failed to get auth data: %w", err)
	}

	if time.Now().Add(refreshLeeway).Unix() < authData.ExpiresAt {
		return authData.AccessToken, nil
	}

	// Access token истек: одна прозрачная попытка refresh
	resp, err := s.apiClient.Refresh(ctx, authData.RefreshToken)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			// Refresh token тоже недействителен: устройство разлогинено
			if delErr := s.authStore.DeleteAuth(ctx); delErr != nil {
				slog.Warn("failed to delete stale auth data", "error", delErr)
			}
			return "", ErrSignedOut
		}
		return "", fmt.Errorf("token refresh failed: %w", err)
	}

	if err := s.saveTokens(ctx, authData.Username, resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// IsAuthenticated проверяет наличие сохраненных токенов
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) saveTokens(ctx context.Context, username string, resp *pkgapi.TokenResponse) error {
	authData := &storage.AuthData{
		Username:     username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
	}
	if err := s.authStore.SaveAuth(ctx, authData); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/L0dyv/litepad/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента relay
type ClientAPI interface {
	// auth
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error

	// document sync
	FetchFull(ctx context.Context, accessToken string) (*api.FetchResponse, error)
	FetchIncremental(ctx context.Context, accessToken string, since time.Time) (*api.FetchResponse, error)
	Push(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error)

	// attachment sync
	AnnounceAttachments(ctx context.Context, accessToken string, req api.AnnounceRequest) (*api.AnnounceResponse, error)
	UploadAttachment(ctx context.Context, accessToken, hash, ext string, data []byte) (*api.UploadResponse, error)
	DownloadAttachment(ctx context.Context, accessToken, hash string) ([]byte, *api.AttachmentMeta, error)
	BatchMetadata(ctx context.Context, accessToken string, hashes []string) (*api.BatchMetadataResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с relay
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register регистрирует новый аккаунт
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/refresh", refreshToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout уведомляет relay о выходе (best effort)
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/logout", accessToken, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// FetchFull возвращает все документы аккаунта, включая tombstones.
// Используется только при самой первой синхронизации устройства.
func (c *Client) FetchFull(ctx context.Context, accessToken string) (*api.FetchResponse, error) {
	var resp api.FetchResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/sync/full", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("full fetch failed: %w", err)
	}
	return &resp, nil
}

// FetchIncremental возвращает документы relay с updatedAt > since
func (c *Client) FetchIncremental(ctx context.Context, accessToken string, since time.Time) (*api.FetchResponse, error) {
	path := "/api/v1/sync/incremental?since=" + url.QueryEscape(since.UTC().Format(time.RFC3339Nano))
	var resp api.FetchResponse
	if err := c.doJSON(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("incremental fetch failed: %w", err)
	}
	return &resp, nil
}

// Push отправляет batch pending документов на классификацию
func (c *Client) Push(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error) {
	var resp api.PushResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/sync/push", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("push failed: %w", err)
	}
	return &resp, nil
}

// AnnounceAttachments анонсирует метаданные вложений; relay отвечает
// подмножеством хешей, байты которых ему нужны
func (c *Client) AnnounceAttachments(ctx context.Context, accessToken string, req api.AnnounceRequest) (*api.AnnounceResponse, error) {
	var resp api.AnnounceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/attachments/announce", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("announce failed: %w", err)
	}
	return &resp, nil
}

// UploadAttachment передает сырые байты вложения; relay пересчитывает хеш
// и отклоняет несовпадение
func (c *Client) UploadAttachment(ctx context.Context, accessToken, hash, ext string, data []byte) (*api.UploadResponse, error) {
	path := "/api/v1/attachments/upload/" + hash
	if ext != "" {
		path += "?ext=" + url.QueryEscape(ext)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	setBearer(req, accessToken)

	body, _, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	var resp api.UploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return &resp, nil
}

// DownloadAttachment скачивает байты вложения; метаданные приходят
// в заголовках ответа
func (c *Client) DownloadAttachment(ctx context.Context, accessToken, hash string) ([]byte, *api.AttachmentMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/attachments/download/"+hash, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	setBearer(req, accessToken)

	body, header, err := c.do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	size, _ := strconv.ParseInt(header.Get("X-Litepad-Size"), 10, 64)
	meta := &api.AttachmentMeta{
		ContentHash: hash,
		Filename:    header.Get("X-Litepad-Filename"),
		MimeType:    header.Get("Content-Type"),
		Extension:   header.Get("X-Litepad-Extension"),
		ByteSize:    size,
	}
	return body, meta, nil
}

// BatchMetadata запрашивает метаданные по набору хешей
func (c *Client) BatchMetadata(ctx context.Context, accessToken string, hashes []string) (*api.BatchMetadataResponse, error) {
	var resp api.BatchMetadataResponse
	req := api.BatchMetadataRequest{Hashes: hashes}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/attachments/batch-metadata", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("batch metadata failed: %w", err)
	}
	return &resp, nil
}

// doJSON выполняет запрос с JSON телом и декодирует JSON ответ
func (c *Client) doJSON(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setBearer(req, accessToken)

	respBody, _, err := c.do(req)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// do выполняет запрос и отображает статусы на таксономию ошибок:
// сетевой сбой — Transport, 401 — Unauthorized, 400 — Integrity,
// 413 — Capacity.
func (c *Client) do(req *http.Request) ([]byte, http.Header, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read response body: %v", ErrTransport, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, resp.Header, nil
	}

	message := string(respBody)
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusBadRequest:
		return nil, nil, fmt.Errorf("%w: %s", ErrIntegrity, message)
	case http.StatusRequestEntityTooLarge:
		return nil, nil, fmt.Errorf("%w: %s", ErrCapacity, message)
	default:
		return nil, nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, message)
	}
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

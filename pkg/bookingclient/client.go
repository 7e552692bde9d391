package bookingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const apiPrefix = "/api/v1"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP клиент API записи в барбершоп
// Публичные методы передают ключ API, методы кабинета требуют токен сессии (WithToken)
type Client struct {
	baseURL    string
	apiKey     string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
}

// WithToken возвращает копию клиента, которая передает токен сессии
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Token токен сессии клиента
func (c *Client) Token() string {
	return c.token
}

// SignIn POST /api/v1/auth/sign-in
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResponse, error) {
	var resp SignInResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/sign-in", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignOut POST /api/v1/auth/sign-out
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/sign-out", nil, nil, nil)
}

// Session GET /api/v1/auth/session
func (c *Client) Session(ctx context.Context) (*Session, error) {
	var resp Session
	if err := c.do(ctx, http.MethodGet, "/auth/session", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBusiness GET /api/v1/businesses/{slug}
func (c *Client) GetBusiness(ctx context.Context, slug string) (*Business, error) {
	var resp Business
	if err := c.do(ctx, http.MethodGet, "/businesses/"+url.PathEscape(slug), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AvailableSlots GET /api/v1/businesses/{slug}/available-slots
// Пустая дата означает сегодня
func (c *Client) AvailableSlots(ctx context.Context, slug, date string) (*AvailableSlots, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}

	var resp AvailableSlots
	if err := c.do(ctx, http.MethodGet, "/businesses/"+url.PathEscape(slug)+"/available-slots", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateAppointment POST /api/v1/businesses/{slug}/appointments
// При занятом времени возвращает *SlotTakenError с актуальной занятостью
func (c *Client) CreateAppointment(ctx context.Context, slug string, req *CreateAppointmentRequest) (*Appointment, error) {
	var resp Appointment
	if err := c.do(ctx, http.MethodPost, "/businesses/"+url.PathEscape(slug)+"/appointments", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Appointments GET /api/v1/appointments?ids=
func (c *Client) Appointments(ctx context.Context, ids []uuid.UUID) ([]Appointment, error) {
	if len(ids) == 0 {
		return []Appointment{}, nil
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}

	var resp []Appointment
	query := url.Values{"ids": {strings.Join(parts, ",")}}
	if err := c.do(ctx, http.MethodGet, "/appointments", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CancelByClient POST /api/v1/appointments/{id}/client-cancel
func (c *Client) CancelByClient(ctx context.Context, id uuid.UUID) (*CancelResult, error) {
	var resp CancelResult
	if err := c.do(ctx, http.MethodPost, "/appointments/"+id.String()+"/client-cancel", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OwnerSchedule GET /api/v1/owner/schedule
func (c *Client) OwnerSchedule(ctx context.Context, date string) (*DaySchedule, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}

	var resp DaySchedule
	if err := c.do(ctx, http.MethodGet, "/owner/schedule", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateManualAppointment POST /api/v1/owner/appointments
func (c *Client) CreateManualAppointment(ctx context.Context, req *ManualAppointmentRequest) (*DaySchedule, error) {
	var resp DaySchedule
	if err := c.do(ctx, http.MethodPost, "/owner/appointments", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BlockSlots POST /api/v1/owner/blocks
func (c *Client) BlockSlots(ctx context.Context, req *BlockSlotsRequest) (*BlockSlotsResult, error) {
	var resp BlockSlotsResult
	if err := c.do(ctx, http.MethodPost, "/owner/blocks", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelAppointment PATCH /api/v1/owner/appointments/{id}/cancel
func (c *Client) CancelAppointment(ctx context.Context, id uuid.UUID) (*DaySchedule, error) {
	var resp DaySchedule
	if err := c.do(ctx, http.MethodPatch, "/owner/appointments/"+id.String()+"/cancel", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OwnerConfig GET /api/v1/owner/config
func (c *Client) OwnerConfig(ctx context.Context) (*ScheduleConfig, error) {
	var resp ScheduleConfig
	if err := c.do(ctx, http.MethodGet, "/owner/config", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateOwnerConfig PUT /api/v1/owner/config
func (c *Client) UpdateOwnerConfig(ctx context.Context, req *UpdateConfigRequest) (*ScheduleConfig, error) {
	var resp ScheduleConfig
	if err := c.do(ctx, http.MethodPut, "/owner/config", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	target := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) decodeError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Message == "" {
		payload.Message = strings.TrimSpace(string(raw))
	}

	// 409 с занятостью дня: слот заняли, клиент должен обновить сетку
	if resp.StatusCode == http.StatusConflict && payload.Occupied != nil {
		return &SlotTakenError{Message: payload.Message, Occupied: payload.Occupied}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.log.Error("%s %s: server error %d: %s", method, path, resp.StatusCode, payload.Message)
	}

	return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
}

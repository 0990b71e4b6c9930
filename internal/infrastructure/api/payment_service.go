package api

import (
	"context"
	"net/http"
	"net/url"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

var _ output.PaymentAPI = (*PaymentService)(nil)

// PaymentService maps the connected-account and checkout endpoints.
type PaymentService struct {
	c *Client
}

func NewPaymentService(c *Client) *PaymentService {
	return &PaymentService{c: c}
}

func (s *PaymentService) Connect(ctx context.Context, sess *entities.Session) (*entities.ConnectLink, error) {
	var link entities.ConnectLink
	if err := s.c.do(ctx, request{method: http.MethodPost, path: "/users/stripe/connect", sess: sess, out: &link}); err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *PaymentService) Status(ctx context.Context, sess *entities.Session) (*entities.PaymentAccountStatus, error) {
	var status entities.PaymentAccountStatus
	if err := s.c.do(ctx, request{method: http.MethodGet, path: "/users/stripe/status", sess: sess, out: &status}); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *PaymentService) DashboardLogin(ctx context.Context, sess *entities.Session) (*entities.DashboardLink, error) {
	var link entities.DashboardLink
	if err := s.c.do(ctx, request{method: http.MethodGet, path: "/users/stripe/login", sess: sess, out: &link}); err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *PaymentService) SessionStatus(ctx context.Context, sess *entities.Session, checkoutSessionID string) (*entities.SessionStatus, error) {
	var status entities.SessionStatus
	q := url.Values{"session_id": {checkoutSessionID}}
	if err := s.c.do(ctx, request{method: http.MethodGet, path: "/checkout/session-status", query: q, sess: sess, out: &status}); err != nil {
		return nil, err
	}
	return &status, nil
}

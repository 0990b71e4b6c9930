package api

import (
	"context"
	"net/http"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

var _ output.UserAPI = (*UserService)(nil)

// UserService maps the /users REST resource.
type UserService struct {
	c *Client
}

func NewUserService(c *Client) *UserService {
	return &UserService{c: c}
}

func (s *UserService) Login(ctx context.Context, email, password string) (*entities.LoginResponse, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp entities.LoginResponse
	if err := s.c.do(ctx, request{method: http.MethodPost, path: "/users/login", json: payload, out: &resp}); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *UserService) Create(ctx context.Context, create entities.UserCreate) (*entities.User, error) {
	var user entities.User
	if err := s.c.do(ctx, request{method: http.MethodPost, path: "/users/", json: create, out: &user}); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Get(ctx context.Context, sess *entities.Session, userID string) (*entities.User, error) {
	var user entities.User
	if err := s.c.do(ctx, request{method: http.MethodGet, path: "/users/" + userID, sess: sess, out: &user}); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, sess *entities.Session, userID string, update entities.UserUpdate) (*entities.User, error) {
	var user entities.User
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: "/users/" + userID, sess: sess, json: update, out: &user}); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UploadProfilePicture(ctx context.Context, sess *entities.Session, userID, imageURL string) (*entities.User, error) {
	image, filename, err := fetchImage(ctx, s.c.httpc, imageURL)
	if err != nil {
		return nil, err
	}
	form, err := newMultipartBody(nil, "image", filename, image)
	if err != nil {
		return nil, err
	}
	var user entities.User
	if err := s.c.do(ctx, request{method: http.MethodPost, path: "/users/" + userID + "/profile-picture", sess: sess, form: form, out: &user}); err != nil {
		return nil, err
	}
	return &user, nil
}

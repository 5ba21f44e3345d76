package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gomarket/internal/domain/entity"
	"gomarket/pkg/errors"
)

// RestClient implements the session services over the HTTP API. One
// instance carries one authenticated identity.
type RestClient struct {
	baseURL   string
	token     string
	sessionID string
	http      *http.Client
}

func NewRestClient(baseURL, token, sessionID string) *RestClient {
	return &RestClient{
		baseURL:   baseURL,
		token:     token,
		sessionID: sessionID,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

var (
	_ ListingService  = (*RestClient)(nil)
	_ FavoriteService = (*RestClient)(nil)
	_ ProfileService  = (*RestClient)(nil)
)

func (c *RestClient) List(ctx context.Context, query entity.ListingQuery) (*entity.ListingPage, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("limit", strconv.Itoa(query.Limit))

	var body struct {
		Data struct {
			Items       []*entity.Product `json:"items"`
			Total       int64             `json:"total"`
			CurrentPage int               `json:"currentPage"`
			TotalPages  int               `json:"totalPages"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/products?"+params.Encode(), nil, &body); err != nil {
		return nil, err
	}

	return &entity.ListingPage{
		Items:       body.Data.Items,
		Total:       body.Data.Total,
		TotalPages:  body.Data.TotalPages,
		CurrentPage: body.Data.CurrentPage,
	}, nil
}

func (c *RestClient) AddFavorite(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodPost, "/v1/products/"+url.PathEscape(productID)+"/favorite", nil, nil)
}

func (c *RestClient) RemoveFavorite(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/products/"+url.PathEscape(productID)+"/favorite", nil, nil)
}

func (c *RestClient) FetchFavorites(ctx context.Context) ([]string, error) {
	var body struct {
		Data struct {
			Favorites []string `json:"favorites"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/users/me", nil, &body); err != nil {
		return nil, err
	}
	return body.Data.Favorites, nil
}

func (c *RestClient) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var reqBody *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-ID", c.sessionID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Network failure: the caller must treat the operation as not
		// having happened.
		return errors.Unavailable("Server unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Internal("Malformed server response", err)
		}
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	code := body.Error.Code
	message := body.Error.Message
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
	}
	if code == "" {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			code = "UNAUTHORIZED"
		case http.StatusNotFound:
			code = "NOT_FOUND"
		case http.StatusServiceUnavailable:
			code = "STORE_UNAVAILABLE"
		case http.StatusBadRequest:
			code = "VALIDATION_ERROR"
		default:
			code = "INTERNAL_ERROR"
		}
	}

	return errors.New(code, message, resp.StatusCode, nil)
}

package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	v1 "github.com/tupyy/audiobook-scanner/api/v1"
)

const (
	apiV1ScanPath       = "/api/v1/scan"
	apiV1ScanErrorsPath = "/api/v1/scan/errors"
	apiV1AudiobooksPath = "/api/v1/audiobooks"
)

// ScannerSvc is an HTTP client for the scanner API.
type ScannerSvc struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewScannerService(baseURL string) *ScannerSvc {
	return &ScannerSvc{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a client that sends token as a bearer token.
func (s *ScannerSvc) WithToken(token string) *ScannerSvc {
	return &ScannerSvc{baseURL: s.baseURL, token: token, client: s.client}
}

// APIError is returned for any non 2xx answer.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

func (s *ScannerSvc) Status() (*v1.ScanStatus, error) {
	var status v1.ScanStatus
	if err := s.do(http.MethodGet, apiV1ScanPath, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *ScannerSvc) StartScan(libraryID, path string) (*v1.ScanStatus, error) {
	var status v1.ScanStatus
	req := v1.StartScanRequest{LibraryId: libraryID, Path: path}
	if err := s.do(http.MethodPost, apiV1ScanPath, req, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *ScannerSvc) StopScan() (*v1.ScanStatus, error) {
	var status v1.ScanStatus
	if err := s.do(http.MethodDelete, apiV1ScanPath, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *ScannerSvc) ScanErrors(libraryID string) ([]v1.ScanError, error) {
	var resp v1.ScanErrorListResponse
	path := apiV1ScanErrorsPath + "?" + url.Values{"library": {libraryID}}.Encode()
	if err := s.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Errors, nil
}

func (s *ScannerSvc) ListAudiobooks(query url.Values) (*v1.AudiobookListResponse, error) {
	var resp v1.AudiobookListResponse
	path := apiV1AudiobooksPath
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	if err := s.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *ScannerSvc) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	zap.S().Named("e2e").Debugw("request", "method", method, "path", path)
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr v1.Error
		_ = json.Unmarshal(data, &apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}
	return json.Unmarshal(data, out)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxResponseBytes bounds the endpoint's reply.
const maxResponseBytes = 64 << 10

// HTTP posts photos to a JSON endpoint that answers with [Attributes].
//
// Request body: {"image": "<base64 jpeg>", "mimeType": "image/jpeg"}.
type HTTP struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTP returns an analyzer for endpoint. apiKey, when set, is sent as a bearer token.
func NewHTTP(endpoint, apiKey string, timeout time.Duration) *HTTP {
	return &HTTP{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type httpRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
}

func (h *HTTP) Analyze(ctx context.Context, image []byte) (Attributes, error) {
	prepared, err := Prepare(image)
	if err != nil {
		return Attributes{}, err
	}

	body, err := json.Marshal(httpRequest{
		Image:    base64.StdEncoding.EncodeToString(prepared),
		MimeType: "image/jpeg",
	})
	if err != nil {
		return Attributes{}, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return Attributes{}, fmt.Errorf("analysis: build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		request.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	response, err := h.client.Do(request)
	if err != nil {
		return Attributes{}, fmt.Errorf("analysis: call endpoint: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return Attributes{}, fmt.Errorf("analysis: endpoint returned %d", response.StatusCode)
	}

	var attrs Attributes
	if err := json.NewDecoder(io.LimitReader(response.Body, maxResponseBytes)).Decode(&attrs); err != nil {
		return Attributes{}, fmt.Errorf("analysis: decode response: %w", err)
	}
	return attrs, nil
}

package paddle

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var _ Provider = &Client{}

type Client struct {
	client *http.Client

	url   string
	token string

	headers http.Header

	debug bool
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: &http.Client{
			Timeout: 120 * time.Second,
		},

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Parse(ctx context.Context, input Input, options *ParseOptions) (*Result, error) {
	if options == nil {
		options = new(ParseOptions)
	}

	body, err := newRequest(input, options)

	if err != nil {
		return nil, err
	}

	if c.debug {
		slog.DebugContext(ctx, "api request payload", "payload", debugPayload(body))
	}

	data, err := json.Marshal(body)

	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "sending api request", "url", c.url, "mode", options.Mode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))

	if err != nil {
		return nil, err
	}

	for key, values := range c.headers {
		req.Header[key] = values
	}

	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		slog.ErrorContext(ctx, "api request failed", "error", err)
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := convertError(resp)

		slog.ErrorContext(ctx, "api request failed", "status", resp.StatusCode, "error", err)
		return nil, err
	}

	result, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	if c.debug {
		text, truncated := debugResponse(result)

		slog.DebugContext(ctx, "api response", "body", text, "truncated", truncated, "length", len(result))
	}

	var response Response

	if err := json.Unmarshal(result, &response); err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	if response.ErrorCode == nil || *response.ErrorCode != 0 {
		return nil, convertResponseError(&response)
	}

	if response.Result == nil {
		return &Result{}, nil
	}

	return response.Result, nil
}

func newRequest(input Input, options *ParseOptions) (*Request, error) {
	if input.IsEmpty() {
		return nil, ErrMissingInput
	}

	r := &Request{
		UseLayoutDetection:        options.UseLayoutDetection,
		UseDocUnwarping:           options.UseDocUnwarping,
		UseDocOrientationClassify: options.UseDocOrientationClassify,
	}

	if IsURL(input.URL) {
		r.File = input.URL
	} else {
		fileType := FileType(input.File)

		r.File = base64.StdEncoding.EncodeToString(input.File.Content)
		r.FileType = &fileType
	}

	if !options.UseLayoutDetection {
		label := strings.ToLower(strings.TrimSpace(options.PromptLabel))

		if label == "" {
			return nil, ErrMissingPromptLabel
		}

		r.PromptLabel = label
	}

	if options.UseLayoutDetection && options.UseChartRecognition {
		r.UseChartRecognition = true
	}

	return r, nil
}

func convertResponseError(response *Response) error {
	code := -1

	if response.ErrorCode != nil {
		code = *response.ErrorCode
	}

	message := response.ErrorMsg

	if message == "" {
		message = "Unknown error"
	}

	return &APIError{
		Code:    code,
		Message: message,
	}
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var response Response

	if err := json.Unmarshal(data, &response); err == nil && response.ErrorMsg != "" {
		return convertResponseError(&response)
	}

	text := strings.TrimSpace(string(data))

	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	return errors.New("API request failed: " + strconv.Itoa(resp.StatusCode) + " " + text)
}

package paddle_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"

	"github.com/stretchr/testify/require"
)

type capture struct {
	header http.Header
	body   map[string]any
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, *capture) {
	t.Helper()

	c := &capture{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		c.header = r.Header.Clone()
		require.NoError(t, json.Unmarshal(data, &c.body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))

	t.Cleanup(server.Close)

	return server, c
}

const okResponse = `{
	"logId": "abc",
	"errorCode": 0,
	"errorMsg": "Success",
	"result": {
		"layoutParsingResults": [
			{
				"markdown": {"text": "# Title", "images": {"imgs/a.jpg": "AAAA"}},
				"outputImages": {"layout_det_res": "BBBB"},
				"prunedResult": {"spotting_res": {"rec_texts": ["x"], "rec_polys": [[1, 2]]}}
			}
		]
	}
}`

func TestParseFile(t *testing.T) {
	server, c := newServer(t, http.StatusOK, okResponse)

	client, err := paddle.New(server.URL, paddle.WithToken("secret"))
	require.NoError(t, err)

	input := paddle.Input{
		File: &paddle.File{
			Name:    "page.png",
			Content: []byte("image-bytes"),
		},
	}

	result, err := client.Parse(context.Background(), input, &paddle.ParseOptions{
		UseLayoutDetection:        true,
		UseDocUnwarping:           true,
		UseDocOrientationClassify: false,
	})

	require.NoError(t, err)

	require.Equal(t, "application/json", c.header.Get("Content-Type"))
	require.Equal(t, "Bearer secret", c.header.Get("Authorization"))

	require.Equal(t, map[string]any{
		"file":                      base64.StdEncoding.EncodeToString([]byte("image-bytes")),
		"fileType":                  float64(1),
		"useLayoutDetection":        true,
		"useDocUnwarping":           true,
		"useDocOrientationClassify": false,
	}, c.body)

	require.Len(t, result.LayoutParsingResults, 1)

	page := result.LayoutParsingResults[0]

	require.Equal(t, "# Title", page.Markdown.Text)
	require.Equal(t, "AAAA", page.Markdown.Images["imgs/a.jpg"])
	require.Equal(t, "BBBB", page.OutputImages["layout_det_res"])
	require.JSONEq(t, `{"rec_texts": ["x"], "rec_polys": [[1, 2]]}`, string(page.PrunedResult.SpottingRes))
}

func TestParsePDF(t *testing.T) {
	testCases := []struct {
		name string
		file paddle.File
	}{
		{"extension", paddle.File{Name: "report.PDF", Content: []byte("%PDF")}},
		{"content type", paddle.File{Name: "upload", ContentType: "application/pdf", Content: []byte("%PDF")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, c := newServer(t, http.StatusOK, okResponse)

			client, err := paddle.New(server.URL)
			require.NoError(t, err)

			file := tc.file

			_, err = client.Parse(context.Background(), paddle.Input{File: &file}, &paddle.ParseOptions{
				UseLayoutDetection: true,
			})

			require.NoError(t, err)
			require.Equal(t, float64(paddle.FileTypePDF), c.body["fileType"])
			require.Empty(t, c.header.Get("Authorization"))
		})
	}
}

func TestParseURL(t *testing.T) {
	server, c := newServer(t, http.StatusOK, okResponse)

	client, err := paddle.New(server.URL)
	require.NoError(t, err)

	input := paddle.Input{
		URL: "https://example.com/scan.jpg",
	}

	_, err = client.Parse(context.Background(), input, &paddle.ParseOptions{
		PromptLabel: "  Formula ",
	})

	require.NoError(t, err)

	require.Equal(t, map[string]any{
		"file":                      "https://example.com/scan.jpg",
		"useLayoutDetection":        false,
		"useDocUnwarping":           false,
		"useDocOrientationClassify": false,
		"promptLabel":               "formula",
	}, c.body)
}

func TestParseHeaders(t *testing.T) {
	server, c := newServer(t, http.StatusOK, okResponse)

	headers := http.Header{}
	headers.Set("Authorization", "Bearer from-config")
	headers.Set("X-Request-Source", "ui")

	client, err := paddle.New(server.URL, paddle.WithHeaders(headers))
	require.NoError(t, err)

	_, err = client.Parse(context.Background(), paddle.Input{URL: "https://example.com/scan.jpg"}, &paddle.ParseOptions{
		UseLayoutDetection: true,
	})

	require.NoError(t, err)

	require.Equal(t, "Bearer from-config", c.header.Get("Authorization"))
	require.Equal(t, "ui", c.header.Get("X-Request-Source"))
	require.Equal(t, "application/json", c.header.Get("Content-Type"))
}

func TestParseChartRecognition(t *testing.T) {
	testCases := []struct {
		name     string
		options  paddle.ParseOptions
		expected bool
	}{
		{"layout with chart", paddle.ParseOptions{UseLayoutDetection: true, UseChartRecognition: true}, true},
		{"layout without chart", paddle.ParseOptions{UseLayoutDetection: true}, false},
		{"prompt with chart", paddle.ParseOptions{PromptLabel: "chart", UseChartRecognition: true}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, c := newServer(t, http.StatusOK, okResponse)

			client, err := paddle.New(server.URL)
			require.NoError(t, err)

			options := tc.options

			_, err = client.Parse(context.Background(), paddle.Input{URL: "http://example.com/a.png"}, &options)
			require.NoError(t, err)

			_, ok := c.body["useChartRecognition"]
			require.Equal(t, tc.expected, ok)
		})
	}
}

func TestParseMissingPromptLabel(t *testing.T) {
	client, err := paddle.New("http://127.0.0.1:1/layout-parsing")
	require.NoError(t, err)

	_, err = client.Parse(context.Background(), paddle.Input{URL: "http://example.com/a.png"}, &paddle.ParseOptions{
		PromptLabel: "   ",
	})

	require.ErrorIs(t, err, paddle.ErrMissingPromptLabel)
}

func TestParseMissingInput(t *testing.T) {
	client, err := paddle.New("http://127.0.0.1:1/layout-parsing")
	require.NoError(t, err)

	inputs := []paddle.Input{
		{},
		{URL: "file:///etc/passwd"},
		{File: &paddle.File{Name: "empty.png"}},
	}

	for _, input := range inputs {
		_, err := client.Parse(context.Background(), input, &paddle.ParseOptions{UseLayoutDetection: true})
		require.ErrorIs(t, err, paddle.ErrMissingInput)
	}
}

func TestParseErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		response string
		code     int
		message  string
	}{
		{"non zero", `{"errorCode": 500, "errorMsg": "model crashed"}`, 500, "model crashed"},
		{"missing code", `{"result": {}}`, -1, "Unknown error"},
		{"missing message", `{"errorCode": 3}`, 3, "Unknown error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, _ := newServer(t, http.StatusOK, tc.response)

			client, err := paddle.New(server.URL)
			require.NoError(t, err)

			_, err = client.Parse(context.Background(), paddle.Input{URL: "http://example.com/a.png"}, &paddle.ParseOptions{UseLayoutDetection: true})

			var apiErr *paddle.APIError

			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tc.code, apiErr.Code)
			require.Equal(t, tc.message, apiErr.Message)
			require.Equal(t, "API error: "+tc.message, err.Error())
		})
	}
}

func TestParseNullResult(t *testing.T) {
	server, _ := newServer(t, http.StatusOK, `{"errorCode": 0, "result": null}`)

	client, err := paddle.New(server.URL)
	require.NoError(t, err)

	result, err := client.Parse(context.Background(), paddle.Input{URL: "http://example.com/a.png"}, &paddle.ParseOptions{UseLayoutDetection: true})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Empty(t, result.LayoutParsingResults)
}

func TestParseHTTPError(t *testing.T) {
	t.Run("envelope", func(t *testing.T) {
		server, _ := newServer(t, http.StatusUnprocessableEntity, `{"errorCode": 422, "errorMsg": "invalid file"}`)

		client, err := paddle.New(server.URL)
		require.NoError(t, err)

		_, err = client.Parse(context.Background(), paddle.Input{URL: "http://example.com/a.png"}, &paddle.ParseOptions{UseLayoutDetection: true})

		var apiErr *paddle.APIError

		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 422, apiErr.Code)
		require.Equal(t, "invalid file", apiErr.Message)
	})

	t.Run("plain", func(t *testing.T) {
		server, _ := newServer(t, http.StatusBadGateway, "")

		client, err := paddle.New(server.URL)
		require.NoError(t, err)

		_, err = client.Parse(context.Background(), paddle.Input{URL: "http://example.com/a.png"}, &paddle.ParseOptions{UseLayoutDetection: true})

		require.EqualError(t, err, "API request failed: 502 Bad Gateway")
	})
}

func TestParseMalformedResponse(t *testing.T) {
	server, _ := newServer(t, http.StatusOK, `{"errorCode": 0, "result": [`)

	client, err := paddle.New(server.URL)
	require.NoError(t, err)

	_, err = client.Parse(context.Background(), paddle.Input{URL: "http://example.com/a.png"}, &paddle.ParseOptions{UseLayoutDetection: true})
	require.ErrorContains(t, err, "API request failed")
}

func TestParseCanceled(t *testing.T) {
	server, _ := newServer(t, http.StatusOK, okResponse)

	client, err := paddle.New(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Parse(ctx, paddle.Input{URL: "http://example.com/a.png"}, &paddle.ParseOptions{UseLayoutDetection: true})

	require.ErrorContains(t, err, "API request failed")
	require.True(t, errors.Is(err, context.Canceled))
}

func TestNewInvalidURL(t *testing.T) {
	_, err := paddle.New("")
	require.Error(t, err)
}

func TestFileType(t *testing.T) {
	require.Equal(t, paddle.FileTypeImage, paddle.FileType(nil))
	require.Equal(t, paddle.FileTypeImage, paddle.FileType(&paddle.File{Name: "a.jpg"}))
	require.Equal(t, paddle.FileTypePDF, paddle.FileType(&paddle.File{Name: "a.pdf"}))
	require.Equal(t, paddle.FileTypePDF, paddle.FileType(&paddle.File{ContentType: "application/pdf; charset=binary"}))
}

func TestIsURL(t *testing.T) {
	require.True(t, paddle.IsURL("http://example.com"))
	require.True(t, paddle.IsURL("https://example.com"))
	require.False(t, paddle.IsURL("ftp://example.com"))
	require.False(t, paddle.IsURL("/tmp/upload.png"))
}

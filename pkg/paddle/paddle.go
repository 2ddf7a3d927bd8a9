package paddle

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"strings"
)

type Provider interface {
	Parse(ctx context.Context, input Input, options *ParseOptions) (*Result, error)
}

var (
	ErrMissingInput       = errors.New("missing input file")
	ErrMissingPromptLabel = errors.New("missing prompt label")
)

// APIError is returned when the service answers with a non-zero errorCode.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return "API error: " + e.Message
}

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Input struct {
	URL string

	File *File
}

func (i Input) IsEmpty() bool {
	if IsURL(i.URL) {
		return false
	}

	return i.File == nil || len(i.File.Content) == 0
}

// Name returns the file name or URL path the input refers to.
func (i Input) Name() string {
	if IsURL(i.URL) {
		return i.URL
	}

	if i.File != nil {
		return i.File.Name
	}

	return ""
}

type ParseOptions struct {
	UseLayoutDetection bool

	// ocr, formula, table, chart, spotting or seal; required without layout detection
	PromptLabel string

	UseChartRecognition       bool
	UseDocUnwarping           bool
	UseDocOrientationClassify bool
}

func (o *ParseOptions) Mode() string {
	if o == nil || o.UseLayoutDetection {
		return "layout"
	}

	return strings.ToLower(strings.TrimSpace(o.PromptLabel))
}

const (
	FileTypePDF   = 0
	FileTypeImage = 1
)

func FileType(file *File) int {
	if file == nil {
		return FileTypeImage
	}

	if strings.EqualFold(path.Ext(file.Name), ".pdf") {
		return FileTypePDF
	}

	if strings.HasPrefix(strings.ToLower(file.ContentType), "application/pdf") {
		return FileTypePDF
	}

	return FileTypeImage
}

func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

type Result struct {
	LayoutParsingResults []*LayoutParsingResult `json:"layoutParsingResults"`
}

type LayoutParsingResult struct {
	PrunedResult *PrunedResult `json:"prunedResult,omitempty"`

	Markdown     *Markdown      `json:"markdown,omitempty"`
	OutputImages map[string]any `json:"outputImages,omitempty"`
}

type PrunedResult struct {
	SpottingRes json.RawMessage `json:"spotting_res,omitempty"`
}

type Markdown struct {
	Text   string         `json:"text"`
	Images map[string]any `json:"images,omitempty"`
}

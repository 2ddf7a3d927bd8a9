// Package ocr turns layout parsing results into the markdown, visualization
// and raw views shown by the web UI and the JSON API.
package ocr

import (
	"context"

	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"
)

const (
	NoContent       = "No content was recognized."
	EmptyResult     = "(Empty result)"
	NoVisualization = `<p style="text-align:center;color:#888;">No visualization available.</p>`
)

type Output struct {
	Markdown      string `json:"markdown"`
	Visualization string `json:"visualization"`
	Raw           string `json:"raw"`
}

type DocumentOptions struct {
	ChartRecognition    bool
	DocUnwarping        bool
	OrientationClassify bool
}

type Service struct {
	provider paddle.Provider
}

func New(p paddle.Provider) *Service {
	return &Service{
		provider: p,
	}
}

// ParseDocument runs full-page parsing with layout detection.
func (s *Service) ParseDocument(ctx context.Context, input paddle.Input, options DocumentOptions) (*Output, error) {
	if input.IsEmpty() {
		return nil, paddle.ErrMissingInput
	}

	result, err := s.provider.Parse(ctx, input, &paddle.ParseOptions{
		UseLayoutDetection: true,

		UseChartRecognition:       options.ChartRecognition,
		UseDocUnwarping:           options.DocUnwarping,
		UseDocOrientationClassify: options.OrientationClassify,
	})

	if err != nil {
		return nil, err
	}

	return ProcessResult(result), nil
}

// Recognize runs a single targeted recognition task on an image element.
func (s *Service) Recognize(ctx context.Context, input paddle.Input, task Task) (*Output, error) {
	if input.IsEmpty() {
		return nil, paddle.ErrMissingInput
	}

	if !task.Valid() {
		task = TaskText
	}

	result, err := s.provider.Parse(ctx, input, &paddle.ParseOptions{
		PromptLabel: string(task),
	})

	if err != nil {
		return nil, err
	}

	output := ProcessResult(result)
	output.Visualization = NoVisualization

	if task == TaskSpotting {
		output.Raw, output.Visualization = processSpotting(result)
	}

	return output, nil
}

func (s *Service) Spot(ctx context.Context, input paddle.Input) (*Output, error) {
	return s.Recognize(ctx, input, TaskSpotting)
}

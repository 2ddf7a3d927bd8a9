package ocr

import (
	"bytes"
	"encoding/json"
	"html"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"
)

// ProcessResult merges all pages into one markdown document and collects
// their visualization images.
func ProcessResult(result *paddle.Result) *Output {
	var pages []*paddle.LayoutParsingResult

	if result != nil {
		pages = result.LayoutParsingResults
	}

	if len(pages) == 0 {
		return &Output{
			Markdown:      NoContent,
			Visualization: NoVisualization,
		}
	}

	multiPage := len(pages) > 1

	var parts []string
	var images []string

	for i, page := range pages {
		if page == nil {
			continue
		}

		var text string

		if page.Markdown != nil {
			text = replaceImages(page.Markdown.Text, page.Markdown.Images)
		}

		if multiPage && i > 0 {
			parts = append(parts, "\n\n---\n\n**Page "+strconv.Itoa(i+1)+"**\n\n")
		}

		parts = append(parts, text)

		for _, key := range slices.Sorted(maps.Keys(page.OutputImages)) {
			if src := imageSource(page.OutputImages[key]); src != "" {
				images = append(images, src)
			}
		}
	}

	markdown := EscapeMath(strings.Join(parts, "\n\n"))

	output := &Output{
		Markdown:      markdown,
		Visualization: renderImages(images, multiPage),
		Raw:           markdown,
	}

	if output.Markdown == "" {
		output.Markdown = EmptyResult
	}

	return output
}

// replaceImages points image placeholders in markdown and inline HTML at
// the embedded image data.
func replaceImages(text string, images map[string]any) string {
	for _, path := range slices.Sorted(maps.Keys(images)) {
		src := imageSource(images[path])

		if src == "" {
			continue
		}

		text = strings.ReplaceAll(text, `src="`+path+`"`, `src="`+src+`"`)
		text = strings.ReplaceAll(text, "]("+path+")", "]("+src+")")
	}

	return text
}

func imageSource(val any) string {
	data, ok := val.(string)

	if !ok || data == "" {
		return ""
	}

	if strings.HasPrefix(data, "http") {
		return data
	}

	return DataURL(data)
}

func renderImages(images []string, multiPage bool) string {
	if len(images) == 0 {
		return NoVisualization
	}

	var parts []string

	for i, src := range images {
		label := "Page " + strconv.Itoa(i+1)

		if multiPage {
			parts = append(parts, `<p style="text-align:center;color:#64748b;margin:8px 0;">`+label+`</p>`)
		}

		parts = append(parts, `<img src="`+html.EscapeString(src)+`" alt="`+label+`" loading="lazy" style="max-width:100%;margin-bottom:16px;">`)
	}

	return strings.Join(parts, "\n")
}

// processSpotting returns the pretty printed spotting result of the first
// page and its visualization.
func processSpotting(result *paddle.Result) (string, string) {
	raw := "{}"
	visualization := NoVisualization

	if result == nil || len(result.LayoutParsingResults) == 0 {
		return raw, visualization
	}

	page := result.LayoutParsingResults[0]

	if page == nil {
		return raw, visualization
	}

	if page.PrunedResult != nil {
		raw = indentJSON(page.PrunedResult.SpottingRes)
	}

	if src := imageSource(page.OutputImages["spotting_res_img"]); src != "" {
		visualization = `<img src="` + html.EscapeString(src) + `" alt="Spotting Visualization" loading="lazy">`
	}

	return raw, visualization
}

func indentJSON(data json.RawMessage) string {
	switch strings.TrimSpace(string(data)) {
	case "", "null", "[]", "{}", "false", "0", `""`:
		return "{}"
	}

	var buf bytes.Buffer

	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "{}"
	}

	return buf.String()
}

package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/adrianliechti/paddleocr-ui/pkg/ocr"
	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"

	"github.com/google/uuid"
)

func valueURL(r *http.Request) string {
	if val := r.FormValue("url"); val != "" {
		return strings.TrimSpace(val)
	}

	return ""
}

func valueBool(r *http.Request, key string) (bool, error) {
	val := r.FormValue(key)

	if val == "" {
		return false, nil
	}

	if val == "on" {
		return true, nil
	}

	b, err := strconv.ParseBool(val)

	if err != nil {
		return false, errors.New("invalid " + key + ": " + val)
	}

	return b, nil
}

// ReadInput reads the document from the url form field, an uploaded file
// field or the raw request body.
func ReadInput(r *http.Request) (paddle.Input, error) {
	if url := valueURL(r); url != "" {
		if !paddle.IsURL(url) {
			return paddle.Input{}, errors.New("invalid url: " + url)
		}

		return paddle.Input{URL: url}, nil
	}

	file, err := readFile(r)

	if err != nil {
		return paddle.Input{}, err
	}

	return paddle.Input{File: file}, nil
}

func ReadDocumentOptions(r *http.Request) (ocr.DocumentOptions, error) {
	var options ocr.DocumentOptions
	var err error

	if options.ChartRecognition, err = valueBool(r, "useChartRecognition"); err != nil {
		return options, err
	}

	if options.DocUnwarping, err = valueBool(r, "useDocUnwarping"); err != nil {
		return options, err
	}

	if options.OrientationClassify, err = valueBool(r, "useDocOrientationClassify"); err != nil {
		return options, err
	}

	return options, nil
}

func ReadTask(r *http.Request) (ocr.Task, error) {
	val := strings.TrimSpace(r.FormValue("task"))

	if val == "" {
		return "", ErrNoTask
	}

	return ocr.ParseTask(val), nil
}

func readFile(r *http.Request) (*paddle.File, error) {
	file, header, err := r.FormFile("file")

	if err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)

		if err != nil {
			return nil, err
		}

		contentType := header.Header.Get("Content-Type")

		return &paddle.File{
			Name: fileName(header.Filename, contentType),

			Content:     data,
			ContentType: contentType,
		}, nil
	}

	if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}

	contentType := r.Header.Get("Content-Type")

	if isForm(contentType) {
		return nil, nil
	}

	contentDisposition := r.Header.Get("Content-Disposition")

	_, params, _ := mime.ParseMediaType(contentDisposition)

	filename := params["filename*"]
	filename = strings.TrimPrefix(filename, "UTF-8''")
	filename = strings.TrimPrefix(filename, "utf-8''")

	if filename == "" {
		filename = params["filename"]
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	return &paddle.File{
		Name: fileName(filename, contentType),

		Content:     data,
		ContentType: contentType,
	}, nil
}

func isForm(contentType string) bool {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	return mediaType == "multipart/form-data" || mediaType == "application/x-www-form-urlencoded"
}

// fileName names anonymous uploads after their content type.
func fileName(name, contentType string) string {
	if name != "" {
		return name
	}

	ext := ".jpg"

	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "application/pdf":
			ext = ".pdf"
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		case "image/webp":
			ext = ".webp"
		case "image/bmp":
			ext = ".bmp"
		}
	}

	return uuid.NewString() + ext
}

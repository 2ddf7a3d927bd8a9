package ocr

import (
	"encoding/base64"
	"html"
	"path"
	"strings"

	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"
)

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

const pdfPreview = `<div style="display:flex;flex-direction:column;align-items:center;justify-content:center;padding:40px;color:#64748b;">` +
	`<div style="width:80px;height:100px;background:linear-gradient(135deg,#f87171 0%,#dc2626 100%);border-radius:8px;display:flex;align-items:center;justify-content:center;box-shadow:0 4px 6px rgba(0,0,0,0.1);margin-bottom:12px;">` +
	`<span style="color:white;font-size:24px;font-weight:bold;">PDF</span></div>` +
	`<span style="font-size:14px;">PDF Document</span></div>`

// DataURL wraps raw base64 data as a JPEG data URL. Data URLs pass through.
func DataURL(data string) string {
	if data == "" {
		return ""
	}

	if strings.HasPrefix(data, "data:") {
		return data
	}

	return "data:image/jpeg;base64," + data
}

func ImageDataURL(file *paddle.File) string {
	if file == nil {
		return ""
	}

	contentType, ok := imageTypes[strings.ToLower(path.Ext(file.Name))]

	if !ok {
		contentType = "image/jpeg"
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(file.Content)
}

// Preview renders the uploaded image, or a placeholder card for PDFs.
func Preview(input paddle.Input) string {
	if input.IsEmpty() {
		return ""
	}

	if strings.EqualFold(path.Ext(input.Name()), ".pdf") {
		return pdfPreview
	}

	if input.File != nil && !paddle.IsURL(input.URL) && paddle.FileType(input.File) == paddle.FileTypePDF {
		return pdfPreview
	}

	src := input.URL

	if !paddle.IsURL(src) {
		src = ImageDataURL(input.File)
	}

	return `<img src="` + html.EscapeString(src) + `" alt="Preview" loading="lazy" />`
}

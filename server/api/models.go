package api

type Result struct {
	Markdown      string `json:"markdown"`
	Visualization string `json:"visualization"`
	Raw           string `json:"raw"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Error struct {
	Message string `json:"message"`
}

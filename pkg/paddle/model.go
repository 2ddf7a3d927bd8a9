package paddle

type Request struct {
	File     string `json:"file"`
	FileType *int   `json:"fileType,omitempty"`

	UseLayoutDetection        bool `json:"useLayoutDetection"`
	UseDocUnwarping           bool `json:"useDocUnwarping"`
	UseDocOrientationClassify bool `json:"useDocOrientationClassify"`

	PromptLabel         string `json:"promptLabel,omitempty"`
	UseChartRecognition bool   `json:"useChartRecognition,omitempty"`
}

type Response struct {
	LogID string `json:"logId,omitempty"`

	ErrorCode *int   `json:"errorCode"`
	ErrorMsg  string `json:"errorMsg,omitempty"`

	Result *Result `json:"result"`
}

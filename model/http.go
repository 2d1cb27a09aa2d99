package model

type DetectRequestBody struct {
	Notes       Notes `json:"notes"`
	PreferFlats *bool `json:"prefer_flats,omitempty"`
}

type DetectResponse struct {
	Label     string `json:"label"`
	RequestId string `json:"request_id"`
}

type ErrorResponse struct {
	Error     string `json:"detail"`
	RequestId string `json:"request_id"`
}

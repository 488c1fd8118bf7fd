package api

type statsResponse struct {
	Frames uint64 `json:"frames"`
}

type displayResponse struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type screenPayload struct {
	Index  int `json:"index"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type screensResponse struct {
	Screens []screenPayload `json:"screens"`
}

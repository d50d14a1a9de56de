package check

type SetCheckRequest struct {
	Value bool `json:"value"`
}

type CheckResponse struct {
	Value bool `json:"value"`
}

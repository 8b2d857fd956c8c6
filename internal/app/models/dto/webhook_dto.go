package dto

// ReviewChangeEvent is the webhook projection of a created or edited review
type ReviewChangeEvent struct {
	Course struct {
		Code string `json:"code"`
	} `json:"course"`
}

// RevalidateResponse acknowledges a processed webhook
type RevalidateResponse struct {
	Revalidated bool `json:"revalidated"`
}

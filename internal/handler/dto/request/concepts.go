package request

type GenerateConceptsRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Count  int    `json:"count" binding:"omitempty,min=1,max=4"`
}

func (r GenerateConceptsRequest) ImageCount() int {
	if r.Count <= 0 {
		return 4
	}
	return r.Count
}

type UploadConceptRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
	Prompt   string `json:"prompt"`
}

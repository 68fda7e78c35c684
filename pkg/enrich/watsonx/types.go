package watsonx

// GenerationParameters control decoding. Greedy decoding keeps enrichment
// output stable for a given prompt.
type GenerationParameters struct {
	DecodingMethod string `json:"decoding_method"`
	MaxNewTokens   int    `json:"max_new_tokens"`
}

// GenerationRequest is the body of the text-generation endpoint.
type GenerationRequest struct {
	ModelID    string               `json:"model_id"`
	Input      string               `json:"input"`
	Parameters GenerationParameters `json:"parameters"`
	ProjectID  string               `json:"project_id"`
}

// GenerationResult is one candidate from the generation response.
type GenerationResult struct {
	GeneratedText string `json:"generated_text"`
	StopReason    string `json:"stop_reason,omitempty"`
}

// GenerationResponse is the raw API response from the generation endpoint.
type GenerationResponse struct {
	ModelID string             `json:"model_id,omitempty"`
	Results []GenerationResult `json:"results"`
}

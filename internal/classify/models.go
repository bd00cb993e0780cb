package classify

// ModelName identifies the scoring backend. A trained model will replace the
// keyword heuristic behind the same response shape.
const ModelName = "stub-tfidf-logreg"

// ClassifyRequest is the payload for classifying a message
type ClassifyRequest struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

// ClassifyResponse is the classification result
type ClassifyResponse struct {
	ScamProbability float64 `json:"scam_probability"`
	RiskLevel       string  `json:"risk_level"`
	Model           string  `json:"model"`
}

package transport

// EstimateRequest is the request body for the repair estimate endpoint and the
// argument shape of the estimate_repair tool.
type EstimateRequest struct {
	Issue        string `json:"issue" validate:"required,max=100"`
	Material     string `json:"material" validate:"max=100"`
	SizeCategory string `json:"size_category" validate:"max=100"`
}

// Tier is one pricing option derived from a rule bucket. Days is the
// [earliest, latest] turnaround range in business days.
type Tier struct {
	Price int    `json:"price"`
	Days  [2]int `json:"days"`
}

// Estimate carries the three pricing tiers.
type Estimate struct {
	Budget   Tier `json:"budget"`
	Standard Tier `json:"standard"`
	Rush     Tier `json:"rush"`
}

// EstimateResult is the uniform envelope returned by the estimator.
type EstimateResult struct {
	OK       bool      `json:"ok"`
	Msg      string    `json:"msg,omitempty"`
	Issue    string    `json:"issue,omitempty"`
	Material string    `json:"material,omitempty"`
	Size     string    `json:"size,omitempty"`
	Estimate *Estimate `json:"estimate,omitempty"`
}

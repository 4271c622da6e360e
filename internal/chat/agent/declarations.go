package agent

import "google.golang.org/genai"

// Tool names form the closed set the dispatcher accepts.
const (
	ToolLookupProduct          = "lookup_product"
	ToolEstimateRepair         = "estimate_repair"
	ToolRecordCustomerInterest = "record_customer_interest"
	ToolRecordFeedback         = "record_feedback"
	ToolRecordServiceFeedback  = "record_service_feedback"
)

// Declarations returns the function declarations advertised to the model.
func Declarations() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name: ToolLookupProduct,
				Description: "Search the Fix&Furn curated catalog and IKEA Saudi Arabia reference dataset. " +
					"Return relevant catalog_match/catalog_results and ikea_results including item_id, name, " +
					"category, price_usd, dimensions_cm, availability, and link when available.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {
							Type:        genai.TypeString,
							Description: "Keyword, color, category, SKU, or IKEA item ID to search for.",
						},
					},
					Required: []string{"query"},
				},
			},
			{
				Name:        ToolEstimateRepair,
				Description: "Estimate repair price and turnaround tiers based on issue, material, and size_category.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"issue": {
							Type: genai.TypeString,
							Description: "Issue such as scratch, broken_glass, wobble, loose_joint, " +
								"hinge_alignment, drawer_stick, upholstery_tear, refinish, repaint.",
						},
						"material": {
							Type:        genai.TypeString,
							Description: "Primary material (wood, glass, metal, fabric, or any).",
						},
						"size_category": {
							Type:        genai.TypeString,
							Description: "Furniture size bucket: small, medium, or large.",
						},
					},
					Required: []string{"issue"},
				},
			},
			{
				Name:        ToolRecordCustomerInterest,
				Description: "Capture customer details when they are ready to buy or book a repair.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"email":   {Type: genai.TypeString, Description: "Customer email address."},
						"name":    {Type: genai.TypeString, Description: "Customer full name."},
						"message": {Type: genai.TypeString, Description: "Short note about the product or repair request."},
					},
					Required: []string{"email", "name", "message"},
				},
			},
			{
				Name:        ToolRecordFeedback,
				Description: "Log customer questions that the assistant could not resolve.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"question": {Type: genai.TypeString, Description: "Unanswered or unclear customer request."},
					},
					Required: []string{"question"},
				},
			},
			{
				Name:        ToolRecordServiceFeedback,
				Description: "Capture post-service feedback about the overall experience, product satisfaction, or repair quality.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"email": {Type: genai.TypeString, Description: "Customer email to match the service record."},
						"name":  {Type: genai.TypeString, Description: "Customer full name."},
						"service_type": {
							Type:        genai.TypeString,
							Description: "What we delivered (e.g., purchase, repair, delivery, install).",
						},
						"satisfaction": {
							Type:        genai.TypeString,
							Description: "Quick sentiment summary (e.g., happy, neutral, unhappy, 1-5).",
						},
						"comments": {
							Type:        genai.TypeString,
							Description: "Optional free-text feedback on the experience.",
						},
					},
					Required: []string{"email", "name", "service_type", "satisfaction"},
				},
			},
		},
	}}
}

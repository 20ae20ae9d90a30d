package perplexity

// chatMessage is a single entry in the messages array sent to the provider.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the wire format for POST /chat/completions.
//
// The tuning fields and the search filters are fixed for every call: the
// clinical prompts depend on online search being restricted to the medical
// domains below and on recent sources only.
type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxTokens           int           `json:"max_tokens"`
	Temperature         float64       `json:"temperature"`
	TopP                float64       `json:"top_p"`
	ReturnCitations     bool          `json:"return_citations"`
	SearchDomainFilter  []string      `json:"search_domain_filter"`
	SearchRecencyFilter string        `json:"search_recency_filter"`
}

// chatResponse mirrors the subset of the provider response the gateway
// consumes. Fields the gateway never reads are omitted.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

// searchDomains restricts the provider's online search to vetted clinical
// sources. Order matters only for readability.
var searchDomains = []string{
	"pubmed.ncbi.nlm.nih.gov",
	"uptodate.com",
	"nejm.org",
	"jamanetwork.com",
	"thelancet.com",
	"bmj.com",
	"cochranelibrary.com",
	"guideline.gov",
	"acc.org",
	"heart.org",
	"diabetes.org",
	"cdc.gov",
	"fda.gov",
	"who.int",
}

const (
	maxTokens           = 4000
	temperature         = 0.2
	topP                = 0.9
	searchRecencyFilter = "month"
)

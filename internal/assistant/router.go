package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// Params carries extracted tool parameters to the dispatcher.
type Params map[string]any

// ToolMatch is a routed tool invocation: which tool to run and the
// parameters extracted from the message.
type ToolMatch struct {
	Tool      string
	AdminOnly bool
	Params    Params
}

// toolRule routes a message to a tool. Patterns match against the normalized
// text; the extractor receives the raw message so that casing, punctuation
// and currency symbols survive into parameters.
type toolRule struct {
	tool      string
	adminOnly bool
	patterns  []*regexp.Regexp
	extract   func(raw string) Params
}

// Parameter extraction helpers. These operate on the raw message.
var (
	subjectRe = regexp.MustCompile(`(?i)\babout\s+(.+)$`)
	priceRe   = regexp.MustCompile(`[$€£]\s*(\d+(?:\.\d{1,2})?)|(\d+(?:\.\d{1,2})?)\s*(?:usd|eur|gbp|dollars?|bucks)\b`)
	orderIDRe = regexp.MustCompile(`\b[0-9a-f]{24}\b`)
	titleRe   = regexp.MustCompile(`(?i)\b(?:service|called|named|titled)\s+"([^"]+)"`)
)

// extractPrice returns the first currency amount in the raw message, or 0.
func extractPrice(raw string) float64 {
	m := priceRe.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	for _, g := range m[1:] {
		if g != "" {
			v, err := strconv.ParseFloat(g, 64)
			if err != nil {
				return 0
			}
			return v
		}
	}
	return 0
}

// orderStatusTerms maps, in precedence order, status words in the message to
// the canonical order status. "delivered" is tested before "completed" so
// "mark it delivered and complete the order" resolves to delivered.
var orderStatusTerms = []struct {
	term   string
	status string
}{
	{"delivered", "delivered"},
	{"refunded", "refunded"},
	{"cancelled", "cancelled"},
	{"canceled", "cancelled"},
	{"completed", "completed"},
	{"complete", "completed"},
	{"processing", "processing"},
	{"pending", "pending"},
}

func extractOrderStatus(normalized string) string {
	for _, t := range orderStatusTerms {
		if strings.Contains(normalized, t.term) {
			return t.status
		}
	}
	return ""
}

// serviceCategories are the catalog categories recognized in messages.
var serviceCategories = []string{"accounts", "verification", "rentals", "training", "consulting"}

// toolRules is the ordered routing table; the first rule whose pattern set
// matches wins. Admin rules sit first so that privileged phrasing is not
// swallowed by the broader read-only rules below them, and they are skipped
// entirely for non-admin callers — a non-admin asking to create a service
// falls through to the classifier instead of hitting a permission wall.
var toolRules = []toolRule{
	{
		tool:      "createService",
		adminOnly: true,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(add|create|new) (a |an )?(new )?service\b`),
			regexp.MustCompile(`\blist (a |an )?(new )?service\b`),
		},
		extract: func(raw string) Params {
			p := Params{}
			if m := titleRe.FindStringSubmatch(raw); m != nil {
				p["title"] = m[1]
			}
			if price := extractPrice(raw); price > 0 {
				p["price"] = price
			}
			return p
		},
	},
	{
		tool:      "updateOrderStatus",
		adminOnly: true,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(mark|set|update|change) (the )?order\b`),
			regexp.MustCompile(`\border [0-9a-f]{24}\b.*\b(delivered|refunded|cancelled|canceled|completed|processing|pending)\b`),
		},
		extract: func(raw string) Params {
			p := Params{}
			if m := orderIDRe.FindString(strings.ToLower(raw)); m != "" {
				p["orderId"] = m
			}
			if status := extractOrderStatus(Normalize(raw)); status != "" {
				p["status"] = status
			}
			return p
		},
	},
	{
		tool: "createTicket",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(open|create|raise|file|submit) (a |an )?(new )?(ticket|support ticket)\b`),
			regexp.MustCompile(`\btalk to (a |an )?(human|agent|person)\b`),
			regexp.MustCompile(`\bcontact support\b`),
		},
		extract: func(raw string) Params {
			p := Params{}
			if m := subjectRe.FindStringSubmatch(raw); m != nil {
				p["subject"] = strings.TrimSpace(m[1])
			}
			return p
		},
	},
	{
		tool: "getOrders",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(show|list|view|check|see) (me )?(my |all )?orders?\b`),
			regexp.MustCompile(`\bmy orders?\b`),
			regexp.MustCompile(`\border history\b`),
		},
		extract: func(raw string) Params {
			p := Params{"limit": 10}
			if status := extractOrderStatus(Normalize(raw)); status != "" {
				p["status"] = status
			}
			return p
		},
	},
	{
		tool: "getWallet",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(wallet|balance|my funds|my credit)\b`),
		},
		extract: func(raw string) Params { return Params{} },
	},
	{
		tool: "getServices",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(show|list|view|see|browse) (me )?(the |all |available )*(services|catalog|catalogue|offerings)\b`),
			regexp.MustCompile(`\bwhat (services|do you) (do you )?(offer|sell|have)\b`),
		},
		extract: func(raw string) Params {
			p := Params{"limit": 10}
			normalized := Normalize(raw)
			for _, cat := range serviceCategories {
				if strings.Contains(normalized, cat) {
					p["category"] = cat
					break
				}
			}
			return p
		},
	},
	{
		tool: "getRentals",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(show|list|view|see|browse) (me )?(the |all |available )*rentals?\b`),
			regexp.MustCompile(`\brent (a |an )?(account|profile)\b`),
		},
		extract: func(raw string) Params { return Params{"limit": 10} },
	},
}

// RouteToTool scans the ordered tool table and returns the first match, or
// nil when no tool applies. Patterns are tested against the normalized text;
// parameter extraction runs on the raw message. Admin-only rules are invisible
// to non-admin callers rather than matched-then-denied, so the message falls
// through to ordinary intent handling.
func RouteToTool(raw, normalized string, isAdmin bool) *ToolMatch {
	for _, rule := range toolRules {
		if rule.adminOnly && !isAdmin {
			continue
		}
		for _, re := range rule.patterns {
			if re.MatchString(normalized) {
				return &ToolMatch{
					Tool:      rule.tool,
					AdminOnly: rule.adminOnly,
					Params:    rule.extract(raw),
				}
			}
		}
	}
	return nil
}

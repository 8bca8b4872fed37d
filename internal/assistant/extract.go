package assistant

import "regexp"

// platformRule pairs a pattern with the canonical platform name it maps to.
type platformRule struct {
	re   *regexp.Regexp
	name string
}

// platformRules is evaluated in order; the first match wins. Platforms not in
// this table (e.g. Bybit) deliberately extract nothing — the catalog does not
// carry them, so the conversation keeps asking rather than half-matching.
var platformRules = []platformRule{
	{regexp.MustCompile(`\boutlier\b`), "Outlier"},
	{regexp.MustCompile(`\bpaypal\b`), "PayPal"},
	{regexp.MustCompile(`\bupwork\b`), "Upwork"},
	{regexp.MustCompile(`\bfiverr\b`), "Fiverr"},
	{regexp.MustCompile(`\bpayoneer\b`), "Payoneer"},
	{regexp.MustCompile(`\bwise\b`), "Wise"},
}

// urgencyBucket pairs a pattern with the urgency tag it maps to.
type urgencyBucket struct {
	re  *regexp.Regexp
	tag string
}

// urgencyBuckets is evaluated in order; buckets are mutually exclusive under
// the first-match-wins rule even when a message mentions several timeframes.
var urgencyBuckets = []urgencyBucket{
	{regexp.MustCompile(`\b(asap|urgent|urgently|immediately|today|right now|now)\b`), "asap"},
	{regexp.MustCompile(`\b(this week|few days|couple of days|by friday|soon)\b`), "this_week"},
	{regexp.MustCompile(`\b(this month|few weeks|couple of weeks|next month)\b`), "this_month"},
	{regexp.MustCompile(`\b(no rush|no hurry|whenever|flexible|anytime|any time|no deadline)\b`), "flexible"},
}

// ExtractPlatform returns the canonical platform name mentioned in the
// normalized text, or "" when no known platform matches. It never fails.
func ExtractPlatform(text string) string {
	for _, rule := range platformRules {
		if rule.re.MatchString(text) {
			return rule.name
		}
	}
	return ""
}

// ExtractUrgency returns the urgency tag for the normalized text — "asap",
// "this_week", "this_month", or "flexible" — or "" when no bucket matches.
func ExtractUrgency(text string) string {
	for _, bucket := range urgencyBuckets {
		if bucket.re.MatchString(text) {
			return bucket.tag
		}
	}
	return ""
}

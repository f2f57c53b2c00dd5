package intent

import (
	"regexp"
	"strings"
	"time"

	"github.com/sashakstudio/booking-assistant/internal/catalog"
)

// Extraction is everything the rules could pull out of a conversation.
// Zero values mean the field could not be resolved.
type Extraction struct {
	Name    string
	Email   string
	Phone   string
	Service *catalog.Service
	Start   *time.Time
}

// Extractor derives a candidate reservation from conversation text. The
// agent depends on this interface so the rule-based implementation can be
// swapped for a real NLU component later.
type Extractor interface {
	Extract(messages []Message, now time.Time) Extraction
}

var emailPattern = regexp.MustCompile(`[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)

// phonePattern matches digit runs with common separators, at least eight
// significant digits long.
var phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)

var spaceRun = regexp.MustCompile(`\s+`)

// namePatterns are tried in order against each message; the order encodes
// which phrasing wins when a message matches several.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)my name is ([a-z\s'\-]+)`),
	regexp.MustCompile(`(?i)this is ([a-z\s'\-]+)`),
	regexp.MustCompile(`(?i)i am ([a-z\s'\-]+)`),
	regexp.MustCompile(`(?i)i'm ([a-z\s'\-]+)`),
}

// RuleExtractor resolves booking fields with regexes and keyword scoring.
type RuleExtractor struct {
	catalog *catalog.Catalog
	dates   *DateParser
}

// NewRuleExtractor creates the rule-based extractor.
func NewRuleExtractor(cat *catalog.Catalog) *RuleExtractor {
	return &RuleExtractor{catalog: cat, dates: NewDateParser()}
}

// Extract runs every rule over the transcript. Name scanning walks user
// messages newest first; email, phone, and service look at the whole
// conversation; the desired date comes from only the latest user message.
func (e *RuleExtractor) Extract(messages []Message, now time.Time) Extraction {
	conversation := UserText(messages)

	ext := Extraction{
		Name:  ExtractName(messages),
		Email: ExtractEmail(conversation),
		Phone: ExtractPhone(conversation),
	}

	if svc, ok := e.catalog.Match(conversation); ok {
		ext.Service = &svc
	}

	if latest, ok := LatestUserMessage(messages); ok {
		if start, ok := e.dates.Parse(latest.Content, now); ok {
			ext.Start = &start
		}
	}

	return ext
}

// ExtractName scans user messages in reverse chronological order and returns
// the first phrase-pattern match, title-cased. Later messages take priority.
func ExtractName(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != RoleUser {
			continue
		}
		for _, pattern := range namePatterns {
			if m := pattern.FindStringSubmatch(messages[i].Content); m != nil {
				return titleCase(strings.TrimSpace(m[1]))
			}
		}
	}
	return ""
}

// ExtractEmail returns the first email-shaped token in the lowercased text.
func ExtractEmail(conversation string) string {
	return emailPattern.FindString(strings.ToLower(conversation))
}

// ExtractPhone returns the first phone-shaped token, whitespace-normalized.
func ExtractPhone(conversation string) string {
	match := phonePattern.FindString(conversation)
	if match == "" {
		return ""
	}
	return strings.TrimSpace(spaceRun.ReplaceAllString(match, " "))
}

func titleCase(s string) string {
	parts := strings.Split(s, " ")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

package workflow

import (
	"strings"

	"github.com/google/uuid"
)

// scheduleKeywords is scanned in priority order; the first keyword found in
// the prompt selects the trigger. No match means a manual trigger.
var scheduleKeywords = []string{"daily", "hourly", "weekly", "monthly"}

// toolRule maps prompt substrings to a tool identifier. Rules are evaluated
// in order and each tool is added at most once, so node order in the chain
// is the detection order.
type toolRule struct {
	Keywords []string
	Tool     string
}

var toolRules = []toolRule{
	{Keywords: []string{"slack", "send message"}, Tool: "Slack"},
	{Keywords: []string{"email", "gmail"}, Tool: "Email"},
	{Keywords: []string{"news", "search", "web"}, Tool: "WebSearch"},
	{Keywords: []string{"summarize", "summary"}, Tool: "Summarizer"},
	{Keywords: []string{"sheet", "excel", "csv"}, Tool: "Spreadsheet"},
	{Keywords: []string{"api", "http", "webhook"}, Tool: "HTTP Request"},
	{Keywords: []string{"analyze", "sentiment", "text"}, Tool: "TextAnalyzer"},
}

// defaultTools is used when the prompt matches no tool keyword at all.
var defaultTools = []string{"HTTP Request", "TextAnalyzer"}

// DetectTools returns the tool identifiers found in the prompt, in rule
// order, falling back to the default set.
func DetectTools(prompt string) []string {
	p := strings.ToLower(prompt)
	var tools []string
	for _, rule := range toolRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(p, kw) {
				tools = append(tools, rule.Tool)
				break
			}
		}
	}
	if len(tools) == 0 {
		tools = append(tools, defaultTools...)
	}
	return tools
}

// detectTrigger picks the trigger template for the prompt.
func detectTrigger(prompt string) nodeTemplate {
	p := strings.ToLower(prompt)
	for _, kw := range scheduleKeywords {
		if strings.Contains(p, kw) {
			return triggerTemplates[kw]
		}
	}
	return manualTrigger
}

// Synthesize builds a runner-compatible document from a free-text prompt:
// one trigger node followed by one node per detected tool, wired
// main-output to main-input as a linear chain.
func Synthesize(name, prompt string) *Document {
	trigger := detectTrigger(prompt)
	tools := DetectTools(prompt)

	templates := make([]nodeTemplate, 0, len(tools)+1)
	templates = append(templates, trigger)
	for _, tool := range tools {
		templates = append(templates, toolTemplates[tool])
	}

	doc := &Document{
		Name:        name,
		Nodes:       make([]Node, 0, len(templates)),
		Connections: make(map[string]Connection, len(templates)-1),
		Settings:    map[string]any{"executionOrder": "v1"},
		Meta:        map[string]any{},
		PinData:     map[string]any{},
		VersionID:   uuid.New().String(),
		ID:          uuid.New().String(),
	}

	const xStart, xStep, y = 240, 220, 300
	for i, tpl := range templates {
		doc.Nodes = append(doc.Nodes, Node{
			ID:          uuid.New().String(),
			Name:        tpl.Name,
			Type:        tpl.Type,
			TypeVersion: tpl.TypeVersion,
			Position:    [2]float64{xStart + float64(i)*xStep, y},
			Parameters:  tpl.Parameters(),
		})
	}

	for i := 0; i < len(doc.Nodes)-1; i++ {
		doc.Connections[doc.Nodes[i].Name] = Connection{
			Main: [][]ConnectionTarget{{{
				Node:  doc.Nodes[i+1].Name,
				Type:  "main",
				Index: 0,
			}}},
		}
	}
	return doc
}

package workflow

// nodeTemplate is the fixed blueprint for one node type. Parameters is a
// constructor so every synthesized node gets its own map.
type nodeTemplate struct {
	Name        string
	Type        string
	TypeVersion float64
	Parameters  func() map[string]any
}

// triggerTemplates maps a schedule keyword to its trigger node. All numbers
// are float64 so documents survive a JSON round trip unchanged.
var triggerTemplates = map[string]nodeTemplate{
	"daily": {
		Name: "Schedule Trigger", Type: "n8n-nodes-base.scheduleTrigger", TypeVersion: 1.2,
		Parameters: func() map[string]any {
			return map[string]any{
				"rule": map[string]any{
					"interval": []any{map[string]any{
						"triggerAtHour":   float64(9),
						"triggerAtMinute": float64(0),
					}},
				},
			}
		},
	},
	"hourly": {
		Name: "Schedule Trigger", Type: "n8n-nodes-base.scheduleTrigger", TypeVersion: 1.2,
		Parameters: func() map[string]any {
			return map[string]any{
				"rule": map[string]any{
					"interval": []any{map[string]any{
						"field":         "hours",
						"hoursInterval": float64(1),
					}},
				},
			}
		},
	},
	"weekly": {
		Name: "Schedule Trigger", Type: "n8n-nodes-base.scheduleTrigger", TypeVersion: 1.2,
		Parameters: func() map[string]any {
			return map[string]any{
				"rule": map[string]any{
					"interval": []any{map[string]any{
						"field":           "weeks",
						"triggerAtDay":    []any{float64(1)},
						"triggerAtHour":   float64(9),
						"triggerAtMinute": float64(0),
					}},
				},
			}
		},
	},
	"monthly": {
		Name: "Schedule Trigger", Type: "n8n-nodes-base.scheduleTrigger", TypeVersion: 1.2,
		Parameters: func() map[string]any {
			return map[string]any{
				"rule": map[string]any{
					"interval": []any{map[string]any{
						"field":                "months",
						"triggerAtDayOfMonth":  float64(1),
						"triggerAtHour":        float64(9),
						"triggerAtMinute":      float64(0),
					}},
				},
			}
		},
	},
}

var manualTrigger = nodeTemplate{
	Name: "Manual Trigger", Type: "n8n-nodes-base.manualTrigger", TypeVersion: 1,
	Parameters: func() map[string]any { return map[string]any{} },
}

// toolTemplates maps a tool identifier to its node blueprint.
var toolTemplates = map[string]nodeTemplate{
	"Slack": {
		Name: "Send Slack Message", Type: "n8n-nodes-base.slack", TypeVersion: 2.2,
		Parameters: func() map[string]any {
			return map[string]any{
				"resource":  "message",
				"operation": "post",
				"select":    "channel",
				"channelId": "#general",
				"text":      "={{ $json.message }}",
			}
		},
	},
	"Email": {
		Name: "Send Email", Type: "n8n-nodes-base.emailSend", TypeVersion: 2.1,
		Parameters: func() map[string]any {
			return map[string]any{
				"toEmail": "team@example.com",
				"subject": "Automated update",
				"text":    "={{ $json.message }}",
			}
		},
	},
	"WebSearch": {
		Name: "Web Search", Type: "n8n-nodes-base.httpRequest", TypeVersion: 4.2,
		Parameters: func() map[string]any {
			return map[string]any{
				"method":         "GET",
				"url":            "https://news.google.com/rss/search",
				"responseFormat": "text",
			}
		},
	},
	"Summarizer": {
		Name: "Summarize Text", Type: "n8n-nodes-base.code", TypeVersion: 2,
		Parameters: func() map[string]any {
			return map[string]any{
				"mode":   "runOnceForAllItems",
				"jsCode": "const text = $input.all().map(i => i.json.text || '').join(' ');\nreturn [{ json: { summary: text.slice(0, 500) } }];",
			}
		},
	},
	"Spreadsheet": {
		Name: "Update Spreadsheet", Type: "n8n-nodes-base.spreadsheetFile", TypeVersion: 2,
		Parameters: func() map[string]any {
			return map[string]any{
				"operation":  "toFile",
				"fileFormat": "csv",
			}
		},
	},
	"HTTP Request": {
		Name: "HTTP Request", Type: "n8n-nodes-base.httpRequest", TypeVersion: 4.2,
		Parameters: func() map[string]any {
			return map[string]any{
				"method":   "POST",
				"url":      "https://example.com/webhook",
				"sendBody": true,
			}
		},
	},
	"TextAnalyzer": {
		Name: "Analyze Text", Type: "n8n-nodes-base.code", TypeVersion: 2,
		Parameters: func() map[string]any {
			return map[string]any{
				"mode":   "runOnceForEachItem",
				"jsCode": "const text = ($json.text || '').toLowerCase();\nconst positive = ['good', 'great', 'up'].filter(w => text.includes(w)).length;\nconst negative = ['bad', 'down', 'risk'].filter(w => text.includes(w)).length;\nreturn { json: { ...$json, sentiment: positive >= negative ? 'positive' : 'negative' } };",
			}
		},
	},
}

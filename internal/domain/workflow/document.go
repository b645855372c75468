package workflow

// Document is the runner-compatible workflow definition. The field set and
// nesting mirror the runner's import format, so an exported document can be
// imported there unchanged.
type Document struct {
	Name        string                `json:"name"`
	Nodes       []Node                `json:"nodes"`
	Connections map[string]Connection `json:"connections"`
	Active      bool                  `json:"active"`
	Settings    map[string]any        `json:"settings"`
	StaticData  map[string]any        `json:"staticData"`
	Meta        map[string]any        `json:"meta"`
	PinData     map[string]any        `json:"pinData"`
	VersionID   string                `json:"versionId"`
	ID          string                `json:"id"`
}

// Node is a single step in the chain. Parameters are the node-type specific
// settings; numeric values are kept as float64 so a marshal/unmarshal
// round trip reproduces the document exactly.
type Node struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	TypeVersion float64        `json:"typeVersion"`
	Position    [2]float64     `json:"position"`
	Parameters  map[string]any `json:"parameters"`
}

// Connection lists the outgoing main-output edges of one node.
type Connection struct {
	Main [][]ConnectionTarget `json:"main"`
}

// ConnectionTarget is one edge endpoint: the receiving node's main input.
type ConnectionTarget struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// Package domain defines the core model types and error taxonomy for the
// vuegraph pipeline. A GraphModel is built once by the extractor and only
// read after that.
package domain

// ResourceType classifies the resource attached to a map node.
type ResourceType string

const (
	ResourceText        ResourceType = "text"
	ResourceImage       ResourceType = "image"
	ResourceLink        ResourceType = "link"
	ResourceUnsupported ResourceType = "unsupported"
)

// ValidResourceTypes is the set of recognised resource classifications.
var ValidResourceTypes = map[ResourceType]bool{
	ResourceText: true, ResourceImage: true,
	ResourceLink: true, ResourceUnsupported: true,
}

// MapNode is one concept node extracted from a map file.
type MapNode struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Resource ResourceType      `json:"resource"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MapLink is one link between two map nodes. Both endpoints resolve to
// MapNode IDs in the same model; undirected links keep the document's
// endpoint order.
type MapLink struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
	Label    string `json:"label,omitempty"`
	Directed bool   `json:"directed"`
}

// Stats summarises one extraction.
type Stats struct {
	Nodes       int                  `json:"nodes"`
	Links       int                  `json:"links"`
	ByResource  map[ResourceType]int `json:"by_resource"`
	Unsupported int                  `json:"unsupported"`
}

// GraphModel holds the nodes and links extracted from one map file, in
// document order. Immutable after construction.
type GraphModel struct {
	Label string    `json:"label,omitempty"`
	Nodes []MapNode `json:"nodes"`
	Links []MapLink `json:"links"`
	Stats Stats     `json:"stats"`

	byID map[string]int
}

// NewGraphModel builds a model from extracted nodes and links and computes
// its stats. Callers must not mutate the slices afterwards.
func NewGraphModel(label string, nodes []MapNode, links []MapLink) *GraphModel {
	m := &GraphModel{
		Label: label,
		Nodes: nodes,
		Links: links,
		byID:  make(map[string]int, len(nodes)),
	}
	m.Stats = Stats{
		Nodes:      len(nodes),
		Links:      len(links),
		ByResource: make(map[ResourceType]int),
	}
	for i, n := range nodes {
		m.byID[n.ID] = i
		m.Stats.ByResource[n.Resource]++
	}
	m.Stats.Unsupported = m.Stats.ByResource[ResourceUnsupported]
	return m
}

// NodeByID returns the node with the given id.
func (m *GraphModel) NodeByID(id string) (MapNode, bool) {
	i, ok := m.byID[id]
	if !ok {
		return MapNode{}, false
	}
	return m.Nodes[i], true
}

// HasNode reports whether id belongs to a node in the model.
func (m *GraphModel) HasNode(id string) bool {
	_, ok := m.byID[id]
	return ok
}

// ExportResult records what one export run wrote to the store.
type ExportResult struct {
	RunID         string            `json:"run_id"`
	NodeIDs       map[string]string `json:"node_ids"`
	Relationships int               `json:"relationships"`
}

package domain

// ValidateModel checks the model invariants: every node carries a unique,
// non-empty id and every link endpoint resolves to a node. The extractor
// runs this as its final gate; the exporter runs it before writing anything.
func ValidateModel(m *GraphModel) error {
	seen := make(map[string]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		if n.ID == "" {
			return NewSchemaError("node", n.ID, "missing id")
		}
		if seen[n.ID] {
			return NewSchemaError("node", n.ID, "duplicate id")
		}
		seen[n.ID] = true
	}
	for _, l := range m.Links {
		if !seen[l.SourceID] {
			return NewSchemaError("link", l.SourceID, "source endpoint does not resolve to a node")
		}
		if !seen[l.TargetID] {
			return NewSchemaError("link", l.TargetID, "target endpoint does not resolve to a node")
		}
	}
	return nil
}

package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vuegraph/vuegraph/engine/domain"
)

// Export writes the model into the store: one Concept node per map node,
// then one relationship per link between the nodes just created. Every
// statement auto-commits, so a failure leaves the elements written so
// far in place; the returned error names the failing element and the
// partial result reports what was written. Nothing is rolled back.
func (g *GraphStore) Export(ctx context.Context, m *domain.GraphModel) (domain.ExportResult, error) {
	res := domain.ExportResult{NodeIDs: make(map[string]string, len(m.Nodes))}
	if err := domain.ValidateModel(m); err != nil {
		return res, err
	}
	res.RunID = uuid.NewString()

	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	for _, n := range m.Nodes {
		elementID, err := createNode(ctx, sess, n, res.RunID)
		if err != nil {
			return res, domain.NewExportError("node", n.ID, err)
		}
		res.NodeIDs[n.ID] = elementID
	}
	for _, l := range m.Links {
		if err := createRelationship(ctx, sess, l, res); err != nil {
			return res, domain.NewExportError("link", l.SourceID+"->"+l.TargetID, err)
		}
		res.Relationships++
	}
	return res, nil
}

func createNode(ctx context.Context, runner CypherRunner, n domain.MapNode, runID string) (string, error) {
	props := map[string]any{
		"vue_id":   n.ID,
		"title":    n.Title,
		"resource": string(n.Resource),
		"run_id":   runID,
	}
	for k, v := range n.Metadata {
		props["prop_"+k] = v
	}

	cypher := `CREATE (n:Concept) SET n = $props RETURN elementId(n) AS id`
	result, err := runner.Run(ctx, cypher, map[string]any{"props": props})
	if err != nil {
		return "", err
	}
	if !result.Next(ctx) {
		return "", fmt.Errorf("no element id returned")
	}
	idVal, _ := result.Record().Get("id")
	id, ok := idVal.(string)
	if !ok {
		return "", fmt.Errorf("unexpected element id type %T", idVal)
	}
	return id, nil
}

func createRelationship(ctx context.Context, runner CypherRunner, l domain.MapLink, res domain.ExportResult) error {
	src, ok := res.NodeIDs[l.SourceID]
	if !ok {
		return fmt.Errorf("source %q has no exported node", l.SourceID)
	}
	dst, ok := res.NodeIDs[l.TargetID]
	if !ok {
		return fmt.Errorf("target %q has no exported node", l.TargetID)
	}

	cypher := fmt.Sprintf(
		`MATCH (a:Concept), (b:Concept)
		 WHERE elementId(a) = $src AND elementId(b) = $dst
		 CREATE (a)-[r:%s]->(b)
		 SET r = $props
		 RETURN elementId(r) AS id`,
		relType(l.Label),
	)
	result, err := runner.Run(ctx, cypher, map[string]any{
		"src": src,
		"dst": dst,
		"props": map[string]any{
			"label":    l.Label,
			"directed": l.Directed,
			"run_id":   res.RunID,
		},
	})
	if err != nil {
		return err
	}
	if !result.Next(ctx) {
		return fmt.Errorf("endpoint nodes not found in store")
	}
	return nil
}

// relType turns a link label into a valid Cypher relationship type:
// uppercased, spaces and hyphens as underscores, everything else
// outside [A-Z0-9_] dropped.
func relType(label string) string {
	safe := make([]byte, 0, len(label))
	for i := range label {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
			safe = append(safe, c-32)
		case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_':
			safe = append(safe, c)
		case c == ' ' || c == '-':
			safe = append(safe, '_')
		}
	}
	if len(safe) == 0 {
		return "RELATES_TO"
	}
	// Cypher identifiers cannot start with a digit.
	if safe[0] >= '0' && safe[0] <= '9' {
		safe = append([]byte{'_'}, safe...)
	}
	return string(safe)
}

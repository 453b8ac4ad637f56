package graph

import (
	"context"
	"fmt"

	"github.com/vuegraph/vuegraph/engine/domain"
)

// Confirm re-counts the nodes and relationships tagged with the export's
// run id and compares them with the model. A mismatch reports false with
// a nil error; errors are reserved for count queries that themselves
// fail. Confirm never repairs anything.
func (g *GraphStore) Confirm(ctx context.Context, m *domain.GraphModel, res domain.ExportResult) (bool, error) {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	nodes, err := runCount(ctx, sess, `MATCH (n:Concept {run_id: $run}) RETURN count(n) AS count`, res.RunID)
	if err != nil {
		return false, fmt.Errorf("count nodes: %w", err)
	}
	rels, err := runCount(ctx, sess, `MATCH ()-[r {run_id: $run}]->() RETURN count(r) AS count`, res.RunID)
	if err != nil {
		return false, fmt.Errorf("count relationships: %w", err)
	}
	return nodes == int64(len(m.Nodes)) && rels == int64(len(m.Links)), nil
}

func runCount(ctx context.Context, runner CypherRunner, cypher, runID string) (int64, error) {
	result, err := runner.Run(ctx, cypher, map[string]any{"run": runID})
	if err != nil {
		return 0, err
	}
	if !result.Next(ctx) {
		return 0, fmt.Errorf("count query returned no rows")
	}
	v, _ := result.Record().Get("count")
	c, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected count type %T", v)
	}
	return c, nil
}

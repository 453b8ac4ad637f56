package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Shared fakes for the store tests. Sessions are handed out by a
// mockOpener; results replay canned records.

type mockOpener struct {
	session CypherSession
}

func (o *mockOpener) OpenSession(_ context.Context) CypherSession { return o.session }

type mockSession struct {
	runResult CypherResult
	runErr    error
	closed    bool
}

func (s *mockSession) Run(_ context.Context, _ string, _ map[string]any) (CypherResult, error) {
	if s.runErr != nil {
		return nil, s.runErr
	}
	return s.runResult, nil
}

func (s *mockSession) Close(_ context.Context) error {
	s.closed = true
	return nil
}

type mockResult struct {
	records []*neo4j.Record
	idx     int
}

func newMockResult(recs ...*neo4j.Record) *mockResult {
	return &mockResult{records: recs, idx: -1}
}

func (r *mockResult) Next(_ context.Context) bool {
	r.idx++
	return r.idx < len(r.records)
}

func (r *mockResult) Record() *neo4j.Record { return r.records[r.idx] }

func countRecord(n int64) *neo4j.Record {
	return &neo4j.Record{Keys: []string{"count"}, Values: []any{n}}
}

func elementIDRecord(id string) *neo4j.Record {
	return &neo4j.Record{Keys: []string{"id"}, Values: []any{id}}
}

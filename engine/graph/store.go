// Package graph exports concept map models into Neo4j and verifies the
// result. All store access goes through a narrow session contract so
// tests can substitute fakes for the real driver.
package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// CypherResult is the cursor subset the store reads from a query.
type CypherResult interface {
	Next(ctx context.Context) bool
	Record() *neo4j.Record
}

// CypherRunner runs a single auto-commit Cypher statement.
type CypherRunner interface {
	Run(ctx context.Context, cypher string, params map[string]any) (CypherResult, error)
}

// CypherSession is one store session; callers must Close it.
type CypherSession interface {
	CypherRunner
	Close(ctx context.Context) error
}

// SessionOpener hands out sessions. The production opener wraps the
// Neo4j driver; tests inject fakes.
type SessionOpener interface {
	OpenSession(ctx context.Context) CypherSession
}

// GraphStore writes concept maps into the store and reads the counts
// used for post-export verification.
type GraphStore struct {
	opener SessionOpener
}

// New creates a GraphStore backed by a Neo4j driver. An empty database
// name selects the server default.
func New(driver neo4j.DriverWithContext, database string) *GraphStore {
	return &GraphStore{opener: &driverOpener{driver: driver, database: database}}
}

// NewWithOpener creates a GraphStore with a custom session opener.
func NewWithOpener(opener SessionOpener) *GraphStore {
	return &GraphStore{opener: opener}
}

type driverOpener struct {
	driver   neo4j.DriverWithContext
	database string
}

func (o *driverOpener) OpenSession(ctx context.Context) CypherSession {
	sess := o.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: o.database})
	return &driverSession{sess: sess}
}

type driverSession struct {
	sess neo4j.SessionWithContext
}

func (s *driverSession) Run(ctx context.Context, cypher string, params map[string]any) (CypherResult, error) {
	result, err := s.sess.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *driverSession) Close(ctx context.Context) error { return s.sess.Close(ctx) }

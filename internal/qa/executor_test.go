package qa

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestExecutor_SentinelSkipsStore(t *testing.T) {
	store := &fakeStore{}
	ex := NewExecutor(store, testLogger(t), false)

	for _, raw := range []string{SentinelNoQuery, "no_query", "  NO_QUERY  "} {
		res := ex.Execute(context.Background(), raw)
		if res.Kind != NoQueryApplicable {
			t.Errorf("Execute(%q).Kind = %s, want %s", raw, res.Kind, NoQueryApplicable)
		}
		if res.Present() {
			t.Errorf("Execute(%q) should be absent", raw)
		}
	}
	if store.calls != 0 {
		t.Fatalf("store called %d times for sentinel inputs, want 0", store.calls)
	}
}

func TestExecutor_StripsCodeFences(t *testing.T) {
	store := &fakeStore{fn: func(string) ([]map[string]any, error) {
		return []map[string]any{{"n": int64(1)}}, nil
	}}
	ex := NewExecutor(store, testLogger(t), false)

	fenced := ex.Execute(context.Background(), "```cypher\nRETURN 1```")
	plain := ex.Execute(context.Background(), "RETURN 1")

	if fenced.Kind != RowsReturned || plain.Kind != RowsReturned {
		t.Fatalf("kinds = %s / %s, want both %s", fenced.Kind, plain.Kind, RowsReturned)
	}
	if len(store.queries) != 2 {
		t.Fatalf("store called %d times, want 2", len(store.queries))
	}
	if store.queries[0] != store.queries[1] {
		t.Errorf("fenced query executed as %q, plain as %q; want identical", store.queries[0], store.queries[1])
	}
	if store.queries[0] != "RETURN 1" {
		t.Errorf("cleaned query = %q, want %q", store.queries[0], "RETURN 1")
	}
}

func TestExecutor_EmptyAfterCleaning(t *testing.T) {
	store := &fakeStore{}
	ex := NewExecutor(store, testLogger(t), false)

	for _, raw := range []string{"", "   ", "```", "```cypher\n```"} {
		res := ex.Execute(context.Background(), raw)
		if res.Kind != EmptyAfterCleaning {
			t.Errorf("Execute(%q).Kind = %s, want %s", raw, res.Kind, EmptyAfterCleaning)
		}
	}
	if store.calls != 0 {
		t.Fatalf("store called %d times for empty inputs, want 0", store.calls)
	}
}

func TestExecutor_StoreErrorDegradesToAbsence(t *testing.T) {
	storeErr := errors.New("Neo.ClientError.Statement.SyntaxError")
	store := &fakeStore{fn: func(string) ([]map[string]any, error) {
		return nil, storeErr
	}}
	ex := NewExecutor(store, testLogger(t), false)

	res := ex.Execute(context.Background(), "MATCH (n RETURN n")
	if res.Kind != ExecutionFailed {
		t.Fatalf("Kind = %s, want %s", res.Kind, ExecutionFailed)
	}
	if res.Present() {
		t.Errorf("failed execution should be absent")
	}
	if !errors.Is(res.Err, storeErr) {
		t.Errorf("Err = %v, want wrapped store error", res.Err)
	}
}

func TestExecutor_ZeroRowsIsAbsent(t *testing.T) {
	store := &fakeStore{fn: func(string) ([]map[string]any, error) {
		return []map[string]any{}, nil
	}}
	ex := NewExecutor(store, testLogger(t), false)

	res := ex.Execute(context.Background(), "MATCH (n:Nobody) RETURN n")
	if res.Kind != NoRowsReturned {
		t.Fatalf("Kind = %s, want %s", res.Kind, NoRowsReturned)
	}
	if res.Present() {
		t.Errorf("zero rows should be absent")
	}
}

func TestExecutor_RowsPassThroughUnchanged(t *testing.T) {
	rows := []map[string]any{
		{"FavoriteThings": "philosophy"},
		{"FavoriteThings": "soccer"},
	}
	store := &fakeStore{fn: func(string) ([]map[string]any, error) {
		return rows, nil
	}}
	ex := NewExecutor(store, testLogger(t), false)

	res := ex.Execute(context.Background(), "MATCH (p:Person)-[:LIKES]->(t) RETURN t.name AS FavoriteThings")
	if res.Kind != RowsReturned {
		t.Fatalf("Kind = %s, want %s", res.Kind, RowsReturned)
	}
	if !res.Present() {
		t.Fatalf("result with rows should be present")
	}
	if !reflect.DeepEqual(res.Rows, rows) {
		t.Errorf("Rows = %v, want %v", res.Rows, rows)
	}
}

func TestExecutor_RejectsMutatingQueries(t *testing.T) {
	store := &fakeStore{}
	ex := NewExecutor(store, testLogger(t), false)

	cases := []string{
		"CREATE (n:Person {name: 'x'})",
		"MATCH (n) DETACH DELETE n",
		"MATCH (n) SET n.name = 'x' RETURN n",
		"```cypher\nMERGE (n:Person) RETURN n```",
	}
	for _, q := range cases {
		res := ex.Execute(context.Background(), q)
		if res.Kind != RejectedMutating {
			t.Errorf("Execute(%q).Kind = %s, want %s", q, res.Kind, RejectedMutating)
		}
		if res.Err == nil {
			t.Errorf("Execute(%q) should carry a rejection error", q)
		}
	}
	if store.calls != 0 {
		t.Fatalf("store called %d times for mutating inputs, want 0", store.calls)
	}
}

func TestExecutor_AllowWritesDisablesGuard(t *testing.T) {
	store := &fakeStore{fn: func(string) ([]map[string]any, error) {
		return []map[string]any{{"ok": true}}, nil
	}}
	ex := NewExecutor(store, testLogger(t), true)

	res := ex.Execute(context.Background(), "CREATE (n:Person) RETURN n")
	if res.Kind != RowsReturned {
		t.Fatalf("Kind = %s, want %s when writes are allowed", res.Kind, RowsReturned)
	}
	if store.calls != 1 {
		t.Fatalf("store called %d times, want 1", store.calls)
	}
}

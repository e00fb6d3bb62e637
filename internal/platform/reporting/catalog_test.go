package reporting

import (
	"context"
	"errors"
	"testing"
)

func newTestCatalog() *Catalog {
	c := NewCatalog()
	c.Register(Definition{
		ID:   "row-count",
		Name: "Row Count",
		Parameters: []ParamSpec{
			{Name: "limit", Type: "int"},
		},
	}, func(ctx context.Context, params Params) (*Table, error) {
		t := NewTable("count")
		t.Append(int64(3))
		return t, nil
	})
	return c
}

func TestCatalog_RunUnknownID(t *testing.T) {
	c := newTestCatalog()

	_, err := c.Run(context.Background(), "no-such-report", nil)
	if !errors.Is(err, ErrUnknownReport) {
		t.Fatalf("err = %v, want ErrUnknownReport", err)
	}
}

func TestCatalog_RunEnvelope(t *testing.T) {
	c := newTestCatalog()

	rep, err := c.Run(context.Background(), "row-count", Params{"limit": "10", "bogus": "x"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.ReportID != "row-count" || rep.Name != "Row Count" {
		t.Fatalf("envelope = %q / %q", rep.ReportID, rep.Name)
	}
	if rep.GeneratedAt.IsZero() {
		t.Fatal("GeneratedAt must be set")
	}
	// Only recognized parameters survive into the envelope.
	if _, ok := rep.Parameters["bogus"]; ok {
		t.Fatal("unrecognized parameter leaked into the envelope")
	}
	if rep.Parameters["limit"] != "10" {
		t.Fatalf("limit param = %q, want 10", rep.Parameters["limit"])
	}
}

func TestCatalog_RunNormalizesNilRows(t *testing.T) {
	c := NewCatalog()
	c.Register(Definition{ID: "empty"}, func(ctx context.Context, _ Params) (*Table, error) {
		return &Table{Columns: []string{"a"}}, nil
	})

	rep, err := c.Run(context.Background(), "empty", nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Result.Rows == nil {
		t.Fatal("rows must be an empty slice, not nil")
	}
	if len(rep.Result.Rows) != 0 {
		t.Fatalf("rows = %v, want none", rep.Result.Rows)
	}
}

func TestCatalog_RegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration must panic")
		}
	}()

	c := newTestCatalog()
	c.Register(Definition{ID: "row-count"}, func(ctx context.Context, _ Params) (*Table, error) {
		return NewTable(), nil
	})
}

func TestCatalog_DefinitionsSorted(t *testing.T) {
	c := NewCatalog()
	noop := func(ctx context.Context, _ Params) (*Table, error) { return NewTable(), nil }
	c.Register(Definition{ID: "zeta"}, noop)
	c.Register(Definition{ID: "alpha"}, noop)
	c.Register(Definition{ID: "mid"}, noop)

	defs := c.Definitions()
	want := []string{"alpha", "mid", "zeta"}
	for i, id := range want {
		if defs[i].ID != id {
			t.Fatalf("defs[%d] = %q, want %q", i, defs[i].ID, id)
		}
	}
}

func TestCatalog_Find(t *testing.T) {
	c := newTestCatalog()
	if c.Find("row-count") == nil {
		t.Fatal("registered report must be findable")
	}
	if c.Find("missing") != nil {
		t.Fatal("unknown report must return nil")
	}
}

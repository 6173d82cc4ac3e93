package memory

import (
	"errors"
	"testing"

	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
)

func TestWarehouse_CommitPublishesStagedRows(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	w := NewWarehouse()
	session, err := w.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := session.DropSchema(ctx); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if err := session.CreateSchema(ctx); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := session.InsertTeams(ctx, []team.Team{{ID: 217}, {ID: 206}}); err != nil {
		t.Fatalf("insert teams: %v", err)
	}
	if _, err := session.InsertReference(ctx, schema.TablePlayers, []reference.Entry{{ID: 5503, Name: "Messi"}}); err != nil {
		t.Fatalf("insert players: %v", err)
	}

	if got := w.Snapshot().Count(schema.TableTeams); got != 0 {
		t.Fatalf("staged rows must not be visible before commit, got %d", got)
	}
	if err := session.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	snap := w.Snapshot()
	if snap.Count(schema.TableTeams) != 2 || snap.Count(schema.TablePlayers) != 1 {
		t.Fatalf("unexpected committed counts: teams=%d players=%d", snap.Count(schema.TableTeams), snap.Count(schema.TablePlayers))
	}
	if w.Commits() != 1 {
		t.Fatalf("expected one commit, got %d", w.Commits())
	}
	if err := session.Commit(); err == nil {
		t.Fatalf("expected second commit to fail")
	}
}

func TestWarehouse_RollbackKeepsCommittedRows(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	w := NewWarehouse()

	first, _ := w.Begin(ctx)
	_ = first.CreateSchema(ctx)
	if _, err := first.InsertEvents(ctx, []event.Row{{ID: "a"}}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := first.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	second, _ := w.Begin(ctx)
	_ = second.DropSchema(ctx)
	_ = second.CreateSchema(ctx)
	if _, err := second.InsertEvents(ctx, []event.Row{{ID: "b"}, {ID: "c"}}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := second.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	events := w.Snapshot().Events
	if len(events) != 1 || events[0].ID != "a" {
		t.Fatalf("rollback must keep the previous warehouse, got %+v", events)
	}
}

func TestWarehouse_EnforcesPrimaryKeys(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	session, _ := NewWarehouse().Begin(ctx)
	_ = session.CreateSchema(ctx)

	if _, err := session.InsertEvents(ctx, []event.Row{{ID: "a"}, {ID: "a"}}); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestWarehouse_InsertBeforeCreateFails(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	session, _ := NewWarehouse().Begin(ctx)
	if _, err := session.InsertTeams(ctx, []team.Team{{ID: 1}}); err == nil {
		t.Fatalf("expected error when schema is not declared")
	}
}

func TestWarehouse_FailInsert(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	w := NewWarehouse()
	boom := errors.New("disk full")
	w.FailInsert(schema.TableEvents, boom)

	session, _ := w.Begin(ctx)
	_ = session.CreateSchema(ctx)
	if _, err := session.InsertEvents(ctx, []event.Row{{ID: "a"}}); !errors.Is(err, boom) {
		t.Fatalf("expected injected failure, got %v", err)
	}
}

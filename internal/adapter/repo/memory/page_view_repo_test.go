package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"mvcapp/internal/app/ports"
)

func TestPageViewRepo_AppendAndCount(t *testing.T) {
	repo := NewPageViewRepo(0)
	ctx := context.Background()
	now := time.Unix(1700000000, 0).UTC()
	for _, action := range []string{"Index", "About", "Index"} {
		if err := repo.Append(ctx, ports.PageView{RequestID: "r-" + action, Controller: "Home", Action: action, ViewedAt: now}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	cases := []struct {
		controller string
		action     string
		want       int64
	}{
		{controller: "Home", action: "Index", want: 2},
		{controller: "Home", action: "About", want: 1},
		{controller: "Home", action: "Contact", want: 0},
		{controller: "home", action: "Index", want: 0},
	}
	for _, tc := range cases {
		got, err := repo.CountByAction(ctx, tc.controller, tc.action)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if got != tc.want {
			t.Fatalf("CountByAction(%q, %q)=%d want %d", tc.controller, tc.action, got, tc.want)
		}
	}
}

func TestPageViewRepo_ConcurrentAppend(t *testing.T) {
	repo := NewPageViewRepo(0)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Append(context.Background(), ports.PageView{Controller: "Home", Action: "About"})
		}()
	}
	wg.Wait()

	got, err := repo.CountByAction(context.Background(), "Home", "About")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if got != 20 {
		t.Fatalf("expected 20 views, got %d", got)
	}
}

func TestPageViewRepo_BoundsRetention(t *testing.T) {
	repo := NewPageViewRepo(3)
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		if err := repo.Append(ctx, ports.PageView{RequestID: fmt.Sprintf("r-%d", i), Controller: "Home", Action: "Index"}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent := repo.Recent()
	if len(recent) != 3 {
		t.Fatalf("expected 3 retained views, got %d", len(recent))
	}
	for i, want := range []string{"r-7", "r-8", "r-9"} {
		if recent[i].RequestID != want {
			t.Fatalf("recent[%d] mismatch: got=%q want=%q", i, recent[i].RequestID, want)
		}
	}
	if cap(repo.recent) != 3 {
		t.Fatalf("retention buffer grew to %d", cap(repo.recent))
	}

	got, err := repo.CountByAction(ctx, "Home", "Index")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if got != 10 {
		t.Fatalf("expected count to cover all 10 views, got %d", got)
	}
}

func TestPageViewRepo_RecentBeforeWrap(t *testing.T) {
	repo := NewPageViewRepo(4)
	_ = repo.Append(context.Background(), ports.PageView{RequestID: "a"})
	_ = repo.Append(context.Background(), ports.PageView{RequestID: "b"})

	recent := repo.Recent()
	if len(recent) != 2 || recent[0].RequestID != "a" || recent[1].RequestID != "b" {
		t.Fatalf("unexpected recent views: %#v", recent)
	}
}

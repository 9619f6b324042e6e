package services

import (
	"context"
	"testing"

	"ridehail/internal/models"
	"ridehail/internal/repositories/memory"
	"ridehail/internal/validators"
)

func TestComplaintStats(t *testing.T) {
	store := memory.NewStore()
	complaints := NewComplaintService(store.Complaints(), nopLogger())
	analytics := NewAnalyticsService(store.Analytics(), nopLogger())
	ctx := context.Background()

	empty, err := analytics.ComplaintStats(ctx, "")
	if err != nil {
		t.Fatalf("ComplaintStats: %v", err)
	}
	if empty.Count != 0 || empty.Groups == nil || len(empty.Groups) != 0 {
		t.Fatalf("empty analytics = %+v", empty)
	}

	for _, status := range []string{"pending", "pending", "resolved", "rejected", "pending"} {
		if _, err := complaints.Submit(ctx, &validators.SubmitComplaintRequest{CustomerID: hex(), RideID: hex(), Description: "d", Status: status}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	all, err := analytics.ComplaintStats(ctx, "")
	if err != nil {
		t.Fatalf("ComplaintStats: %v", err)
	}
	if all.Count != 5 {
		t.Fatalf("count = %d, want 5", all.Count)
	}
	wantOrder := []models.ComplaintStatus{"pending", "rejected", "resolved"}
	if len(all.Groups) != len(wantOrder) {
		t.Fatalf("groups = %d, want %d", len(all.Groups), len(wantOrder))
	}
	var sum int64
	for i, group := range all.Groups {
		if group.Status != wantOrder[i] {
			t.Errorf("group %d = %s, want %s", i, group.Status, wantOrder[i])
		}
		if int64(len(group.Complaints)) != group.Count {
			t.Errorf("group %s lists %d complaints, count %d", group.Status, len(group.Complaints), group.Count)
		}
		sum += group.Count
	}
	if sum != all.Count {
		t.Fatalf("group counts sum to %d, total %d", sum, all.Count)
	}

	pending, err := analytics.ComplaintStats(ctx, "pending")
	if err != nil {
		t.Fatalf("ComplaintStats(pending): %v", err)
	}
	if pending.Count != 3 || len(pending.Groups) != 1 {
		t.Fatalf("pending analytics = %+v", pending)
	}
}

package services

import (
	"context"
	"testing"

	"ridehail/internal/models"
	"ridehail/internal/repositories/memory"
	"ridehail/internal/validators"
)

func TestSubmitComplaint(t *testing.T) {
	store := memory.NewStore()
	svc := NewComplaintService(store.Complaints(), nopLogger())
	ctx := context.Background()

	_, err := svc.Submit(ctx, &validators.SubmitComplaintRequest{CustomerID: hex(), RideID: hex(), Description: "late", Status: "unknown"})
	assertKind(t, err, KindBadRequest)
	assertMessage(t, err, "Invalid complaint status. Must be one of: pending, in_progress, resolved, rejected")

	_, err = svc.Submit(ctx, &validators.SubmitComplaintRequest{CustomerID: hex(), RideID: hex(), Status: "pending"})
	assertKind(t, err, KindBadRequest)
	assertMessage(t, err, "Customer ID, Ride ID, description, and status are required.")

	id, err := svc.Submit(ctx, &validators.SubmitComplaintRequest{CustomerID: hex(), RideID: hex(), Description: "late", Status: "pending"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	complaint, ok := store.Complaint(id)
	if !ok || complaint.Status != models.ComplaintStatusPending || complaint.HandledAt != nil {
		t.Fatalf("complaint = %+v, ok = %v", complaint, ok)
	}
}

func TestResolveComplaint(t *testing.T) {
	store := memory.NewStore()
	svc := NewComplaintService(store.Complaints(), nopLogger())
	ctx := context.Background()

	id, _ := svc.Submit(ctx, &validators.SubmitComplaintRequest{CustomerID: hex(), RideID: hex(), Description: "late", Status: "pending"})

	err := svc.Resolve(ctx, &validators.HandleComplaintRequest{ComplaintID: id.Hex(), AdminID: hex(), Status: "pending"})
	assertKind(t, err, KindBadRequest)
	assertMessage(t, err, "Invalid status. Must be one of: resolved, in_progress, rejected")

	err = svc.Resolve(ctx, &validators.HandleComplaintRequest{ComplaintID: id.Hex(), Status: "resolved"})
	assertKind(t, err, KindBadRequest)
	assertMessage(t, err, "Complaint ID, status, and Admin ID are required.")

	err = svc.Resolve(ctx, &validators.HandleComplaintRequest{ComplaintID: hex(), AdminID: hex(), Status: "resolved"})
	assertKind(t, err, KindNotFound)
	assertMessage(t, err, "Complaint not found.")

	notes := "refunded"
	adminID := hex()
	if err := svc.Resolve(ctx, &validators.HandleComplaintRequest{ComplaintID: id.Hex(), AdminID: adminID, Status: "resolved", Notes: &notes}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	complaint, _ := store.Complaint(id)
	if complaint.Status != models.ComplaintStatusResolved {
		t.Fatalf("status = %s", complaint.Status)
	}
	if complaint.Notes == nil || *complaint.Notes != notes {
		t.Fatalf("notes = %v", complaint.Notes)
	}
	if complaint.AdminID == nil || complaint.AdminID.Hex() != adminID {
		t.Fatalf("admin = %v", complaint.AdminID)
	}
	if complaint.HandledAt == nil {
		t.Fatal("handledAt not stamped")
	}
}

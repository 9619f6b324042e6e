package services

import (
	"context"
	"testing"

	"ridehail/internal/models"
	"ridehail/internal/repositories/memory"
	"ridehail/internal/validators"
)

func TestUpdateDriverStatus(t *testing.T) {
	store := memory.NewStore()
	registration := newRegistration(store, nil)
	drivers := NewDriverService(store.Drivers(), nopLogger())
	ctx := context.Background()

	id, _ := registration.RegisterDriver(ctx, &validators.RegisterDriverRequest{Name: "Dan", Email: "dan@example.com", Password: "pw", LicenseNumber: "L1"})

	err := drivers.UpdateStatus(ctx, &validators.UpdateDriverStatusRequest{DriverID: id.Hex(), Status: "busy"})
	assertKind(t, err, KindBadRequest)
	assertMessage(t, err, "Invalid status. Must be one of: available, unavailable, in_ride")

	err = drivers.UpdateStatus(ctx, &validators.UpdateDriverStatusRequest{DriverID: hex(), Status: "available"})
	assertKind(t, err, KindNotFound)
	assertMessage(t, err, "Driver not found.")

	err = drivers.UpdateStatus(ctx, &validators.UpdateDriverStatusRequest{Status: "available"})
	assertKind(t, err, KindBadRequest)

	if err := drivers.UpdateStatus(ctx, &validators.UpdateDriverStatusRequest{DriverID: id.Hex(), Status: "in_ride"}); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	driver, _ := store.Driver(id)
	if driver.Status != models.DriverStatusInRide {
		t.Fatalf("status = %s", driver.Status)
	}
}

func TestListDriversNewestFirst(t *testing.T) {
	store := memory.NewStore()
	registration := newRegistration(store, nil)
	drivers := NewDriverService(store.Drivers(), nopLogger())
	ctx := context.Background()

	list, err := drivers.ListDrivers(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("empty list = %v, err = %v", list, err)
	}

	_, _ = registration.RegisterDriver(ctx, &validators.RegisterDriverRequest{Name: "First", Email: "1@example.com", Password: "pw", LicenseNumber: "L1"})
	_, _ = registration.RegisterDriver(ctx, &validators.RegisterDriverRequest{Name: "Second", Email: "2@example.com", Password: "pw", LicenseNumber: "L2"})

	list, err = drivers.ListDrivers(ctx)
	if err != nil {
		t.Fatalf("ListDrivers: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Second" || list[1].Name != "First" {
		t.Fatalf("order = %v", list)
	}
	for _, d := range list {
		if d.Password != "" {
			t.Fatalf("password returned for %s", d.Name)
		}
	}
}

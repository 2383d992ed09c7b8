package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
)

func TestEntitlementService_PathBodyMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "a@x.com")
	s := e.mustSong(t)

	other := uuid.Must(uuid.NewV4())
	_, err := e.entitlements.Grant(ctx, other, model.CreateEntitlement{UserID: u.ID, SongID: s.ID, Source: model.SourcePromo})
	if !errors.Is(err, errs.ErrInvalidReference) {
		t.Fatalf("want invalid reference on path/body mismatch, got %v", err)
	}
}

func TestEntitlementService_Grant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "a@x.com")
	s := e.mustSong(t)

	in := model.CreateEntitlement{UserID: u.ID, SongID: s.ID, Source: model.SourceDefault}
	if _, err := e.entitlements.Grant(ctx, u.ID, in); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if _, err := e.entitlements.Grant(ctx, u.ID, in); !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("want conflict on duplicate grant, got %v", err)
	}

	bad := in
	bad.Source = "gift"
	bad.SongID = uuid.Must(uuid.NewV4())
	if _, err := e.entitlements.Grant(ctx, u.ID, bad); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on unknown source, got %v", err)
	}
}

func TestEntitlementService_ListForMissingUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	if _, err := e.entitlements.ListForUser(ctx, uuid.Must(uuid.NewV4())); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestAdminService_Grant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "a@x.com")

	if _, err := e.admins.Grant(ctx, model.CreateAdmin{UserID: u.ID, Role: "owner"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on unknown role, got %v", err)
	}

	a, err := e.admins.Grant(ctx, model.CreateAdmin{UserID: u.ID, Role: model.RoleEditor})
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	if a.ID == u.ID {
		t.Fatalf("admin record must have its own id")
	}

	if _, err := e.admins.Grant(ctx, model.CreateAdmin{UserID: u.ID, Role: model.RolePublisher}); !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("want conflict when user already has a role, got %v", err)
	}
}

func TestAdminService_UpdateAndRevoke(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "a@x.com")

	a, err := e.admins.Grant(ctx, model.CreateAdmin{UserID: u.ID, Role: model.RoleEditor})
	if err != nil {
		t.Fatalf("grant: %v", err)
	}

	// absent role leaves the record as-is
	got, err := e.admins.Update(ctx, a.ID, model.AdminPatch{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Role != model.RoleEditor {
		t.Fatalf("role changed by empty patch: %q", got.Role)
	}

	role := model.RolePublisher
	got, err = e.admins.Update(ctx, a.ID, model.AdminPatch{Role: &role})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Role != model.RolePublisher {
		t.Fatalf("role want publisher, got %q", got.Role)
	}

	if err := e.admins.Revoke(ctx, a.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if err := e.admins.Revoke(ctx, a.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not found on double revoke, got %v", err)
	}

	// the role can be granted again once revoked
	if _, err := e.admins.Grant(ctx, model.CreateAdmin{UserID: u.ID, Role: model.RoleSuperadmin}); err != nil {
		t.Fatalf("re-grant after revoke: %v", err)
	}
}

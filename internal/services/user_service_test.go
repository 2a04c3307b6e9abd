package services_test

import (
	"strings"
	"testing"

	"butce/internal/blob"
	"butce/internal/persist"
	"butce/internal/services"
	"butce/internal/testutil"
)

func TestUserCreate(t *testing.T) {
	s := testutil.NewSeededStore()
	blobs := blob.NewMemoryStore()
	svc := services.NewUserService(s, persist.New(blobs))

	user, err := svc.Create("Deniz Ünal", "555-4444")
	testutil.AssertNoError(t, err)
	if user.Name != "Deniz Ünal" {
		t.Errorf("unexpected name: %q", user.Name)
	}
	if !strings.HasPrefix(user.AvatarURL, "https://ui-avatars.com/api/?name=") {
		t.Errorf("avatar URL not generated: %q", user.AvatarURL)
	}
	if strings.Contains(user.AvatarURL, " ") {
		t.Errorf("avatar URL must be escaped: %q", user.AvatarURL)
	}

	if _, err := blobs.Get(persist.KeyUsers); err != nil {
		t.Errorf("users were not written through: %v", err)
	}

	_, err = svc.Create("   ", "")
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestUserUpdateRegeneratesAvatar(t *testing.T) {
	s := testutil.NewSeededStore()
	svc := services.NewUserService(s, persist.New(blob.NewMemoryStore()))

	updated, err := svc.Update("1", "Engin Yılmaz", "555-5555")
	testutil.AssertNoError(t, err)
	if !strings.Contains(updated.AvatarURL, "Engin") {
		t.Errorf("avatar not regenerated from the new name: %q", updated.AvatarURL)
	}

	_, err = svc.Update("missing", "X", "")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestUserDelete(t *testing.T) {
	s := testutil.NewSeededStore()
	svc := services.NewUserService(s, persist.New(blob.NewMemoryStore()))

	testutil.AssertNoError(t, svc.Delete("2"))
	if len(svc.List()) != 1 {
		t.Errorf("expected 1 user left, got %d", len(svc.List()))
	}

	err := svc.Delete("2")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

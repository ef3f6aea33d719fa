package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptforge/internal/models"
)

func TestProfileGet(t *testing.T) {
	env := newTestEnv(t)

	email := "test-profile-get@handler-test.local"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	user, err := env.UserStore.Create(email, "password123", "Reader")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req = withSession(req, testSession(user.ID, email, true))
	rr := httptest.NewRecorder()
	env.Profile.Get(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]models.User
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := resp["user"]
	if got.Email != email || got.DisplayName != "Reader" {
		t.Errorf("profile: got %q/%q", got.Email, got.DisplayName)
	}
}

func TestProfileUpdateDisplayName(t *testing.T) {
	env := newTestEnv(t)

	email := "test-profile-rename@handler-test.local"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	user, err := env.UserStore.Create(email, "password123", "Before")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := postJSON(t, "/api/profile", `{"display_name":"  After  "}`)
	req = withSession(req, testSession(user.ID, email, true))
	rr := httptest.NewRecorder()
	env.Profile.Update(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}

	updated, _ := env.UserStore.FindByID(user.ID)
	if updated.DisplayName != "After" {
		t.Errorf("display name: got %q, want %q", updated.DisplayName, "After")
	}
}

func TestProfileUpdateNothing(t *testing.T) {
	env := newTestEnv(t)

	email := "test-profile-noop@handler-test.local"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	user, err := env.UserStore.Create(email, "password123", "Noop")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := postJSON(t, "/api/profile", `{}`)
	req = withSession(req, testSession(user.ID, email, true))
	rr := httptest.NewRecorder()
	env.Profile.Update(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rr.Code)
	}
}

func TestProfileChangePassword(t *testing.T) {
	env := newTestEnv(t)

	email := "test-profile-pass@handler-test.local"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	user, err := env.UserStore.Create(email, "old-password", "Pass User")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	sess := testSession(user.ID, email, true)

	// Wrong current password is rejected.
	req := postJSON(t, "/api/profile/password",
		`{"current_password":"guess","new_password":"new-password"}`)
	req = withSession(req, sess)
	rr := httptest.NewRecorder()
	env.Profile.ChangePassword(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("wrong current: got status %d, want 401", rr.Code)
	}

	// Correct current password succeeds.
	req = postJSON(t, "/api/profile/password",
		`{"current_password":"old-password","new_password":"new-password"}`)
	req = withSession(req, sess)
	rr = httptest.NewRecorder()
	env.Profile.ChangePassword(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}

	updated, _ := env.UserStore.FindByID(user.ID)
	if !env.UserStore.CheckPassword(updated, "new-password") {
		t.Error("new password should verify")
	}
}

func TestProfileDeleteAccount(t *testing.T) {
	env := newTestEnv(t)

	email := "test-profile-delete@handler-test.local"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	user, err := env.UserStore.Create(email, "password123", "Doomed")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	sess := testSession(user.ID, email, true)

	// Wrong password does not delete.
	req := postJSON(t, "/api/profile/delete", `{"password":"wrong"}`)
	req = withSession(req, sess)
	rr := httptest.NewRecorder()
	env.Profile.Delete(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got status %d, want 401", rr.Code)
	}

	// Correct password removes the account.
	req = postJSON(t, "/api/profile/delete", `{"password":"password123"}`)
	req = withSession(req, sess)
	rr = httptest.NewRecorder()
	env.Profile.Delete(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}

	gone, _ := env.UserStore.FindByID(user.ID)
	if gone != nil {
		t.Error("user should be deleted")
	}
}

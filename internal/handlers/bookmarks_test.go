// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"promptforge/internal/models"
)

func bookmarkTestUser(t *testing.T, env *testEnv, email string) *models.User {
	t.Helper()
	cleanUsers(t, env.DB, email)
	user, err := env.UserStore.Create(email, "password123", "Bookmark User")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	return user
}

func TestBookmarksCreateAndList(t *testing.T) {
	env := newTestEnv(t)
	user := bookmarkTestUser(t, env, "test-bmh-create@handler-test.local")
	sess := testSession(user.ID, user.Email, true)

	req := postJSON(t, "/api/bookmarks",
		`{"prompt_title":"My App","prompt_content":"full prompt text","design_patterns":["Minimalist"],"theme":"dark"}`)
	req = withSession(req, sess)
	rr := httptest.NewRecorder()
	env.Bookmarks.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("create: got status %d: %s", rr.Code, rr.Body.String())
	}

	var saved models.PromptRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &saved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Error("expected generated ID")
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	listReq = withSession(listReq, sess)
	rr = httptest.NewRecorder()
	env.Bookmarks.List(rr, listReq)

	if rr.Code != http.StatusOK {
		t.Fatalf("list: got status %d", rr.Code)
	}
	var listResp map[string][]models.PromptRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(listResp["bookmarks"]) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(listResp["bookmarks"]))
	}
	if listResp["bookmarks"][0].Title != "My App" {
		t.Errorf("title: got %q", listResp["bookmarks"][0].Title)
	}
}

func TestBookmarksListEmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	user := bookmarkTestUser(t, env, "test-bmh-empty@handler-test.local")

	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	req = withSession(req, testSession(user.ID, user.Email, true))
	rr := httptest.NewRecorder()
	env.Bookmarks.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d", rr.Code)
	}
	// An account with no bookmarks gets [], never null.
	var raw map[string]json.RawMessage
	json.Unmarshal(rr.Body.Bytes(), &raw)
	if string(raw["bookmarks"]) != "[]" {
		t.Errorf("bookmarks: got %s, want []", raw["bookmarks"])
	}
}

func TestBookmarksCreateRequiresContent(t *testing.T) {
	env := newTestEnv(t)
	user := bookmarkTestUser(t, env, "test-bmh-nocontent@handler-test.local")

	req := postJSON(t, "/api/bookmarks", `{"prompt_title":"Empty","prompt_content":"   "}`)
	req = withSession(req, testSession(user.ID, user.Email, true))
	rr := httptest.NewRecorder()
	env.Bookmarks.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rr.Code)
	}
}

// TestBookmarksToggle verifies the save/remove round trip keyed on exact
// prompt content.
func TestBookmarksToggle(t *testing.T) {
	env := newTestEnv(t)
	user := bookmarkTestUser(t, env, "test-bmh-toggle@handler-test.local")
	sess := testSession(user.ID, user.Email, true)

	body := `{"prompt_content":"toggled prompt text","theme":"light"}`

	// First toggle saves.
	req := postJSON(t, "/api/bookmarks/toggle", body)
	req = withSession(req, sess)
	rr := httptest.NewRecorder()
	env.Bookmarks.Toggle(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("toggle on: got status %d: %s", rr.Code, rr.Body.String())
	}
	var resp toggleResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if !resp.Bookmarked || resp.Bookmark == nil {
		t.Fatalf("toggle on: %+v", resp)
	}

	// Second toggle with identical content removes.
	req = postJSON(t, "/api/bookmarks/toggle", body)
	req = withSession(req, sess)
	rr = httptest.NewRecorder()
	env.Bookmarks.Toggle(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("toggle off: got status %d", rr.Code)
	}
	resp = toggleResponse{}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Bookmarked {
		t.Error("second toggle should remove the bookmark")
	}

	n, _ := env.BookmarkStore.CountByUser(user.ID)
	if n != 0 {
		t.Errorf("expected 0 bookmarks after round trip, got %d", n)
	}
}

func TestBookmarksDelete(t *testing.T) {
	env := newTestEnv(t)
	user := bookmarkTestUser(t, env, "test-bmh-delete@handler-test.local")
	sess := testSession(user.ID, user.Email, true)

	saved, err := env.BookmarkStore.Insert(user.ID, &models.PromptRecord{
		Title: "Doomed", Content: "delete me",
	})
	if err != nil {
		t.Fatalf("seed bookmark: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/bookmarks/"+saved.ID.String(), nil)
	req = withChiURLParam(req, "id", saved.ID.String())
	req = withSession(req, sess)
	rr := httptest.NewRecorder()
	env.Bookmarks.Delete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: got status %d", rr.Code)
	}

	// Deleting again is a 404.
	rr = httptest.NewRecorder()
	env.Bookmarks.Delete(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("second delete: got status %d, want 404", rr.Code)
	}

	// Malformed ID is a 400.
	badReq := httptest.NewRequest(http.MethodDelete, "/api/bookmarks/not-a-uuid", nil)
	badReq = withChiURLParam(badReq, "id", "not-a-uuid")
	badReq = withSession(badReq, sess)
	rr = httptest.NewRecorder()
	env.Bookmarks.Delete(rr, badReq)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad id: got status %d, want 400", rr.Code)
	}
}

package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJournal(router http.Handler, userID, entry string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"entry": entry})
	req := httptest.NewRequest("POST", "/api/journals/"+userID, strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateJournal_LengthBounds(t *testing.T) {
	cases := []struct {
		name     string
		entry    string
		wantCode int
	}{
		{"nine chars rejected", "123456789", http.StatusBadRequest},
		{"ten chars accepted", "1234567890", http.StatusCreated},
		{"two thousand chars accepted", strings.Repeat("a", 2000), http.StatusCreated},
		{"two thousand one chars rejected", strings.Repeat("a", 2001), http.StatusBadRequest},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := postJournal(newTestRouter(newFakeStore(), nil), "user-1", c.entry)
			if rec.Code != c.wantCode {
				t.Errorf("expected status %d, got %d: %s", c.wantCode, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateJournal_MissingEntryIsBadRequest(t *testing.T) {
	router := newTestRouter(newFakeStore(), nil)

	req := httptest.NewRequest("POST", "/api/journals/user-1", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// A missing field is a validation failure, never a 500.
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "between 10 and 2000 characters") {
		t.Errorf("expected length message, got %s", rec.Body.String())
	}
}

func TestCreateJournal_StoresTrimmedEntry(t *testing.T) {
	st := newFakeStore()
	rec := postJournal(newTestRouter(st, nil), "user-1", "   my day was fine   ")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	if len(st.journals["user-1"]) != 1 {
		t.Fatalf("journal entries: got %d, want 1", len(st.journals["user-1"]))
	}
	for _, j := range st.journals["user-1"] {
		if j.Entry != "my day was fine" {
			t.Errorf("stored entry: got %q, want trimmed text", j.Entry)
		}
		if j.UserID != "user-1" {
			t.Errorf("stored userId: got %q, want %q", j.UserID, "user-1")
		}
		if j.Timestamp.IsZero() {
			t.Error("timestamp not stamped")
		}
		if j.UpdatedAt != nil {
			t.Error("updatedAt must be absent on create")
		}
	}
}

func TestUpdateJournal_RevalidatesAndStampsUpdatedAt(t *testing.T) {
	st := newFakeStore()
	router := newTestRouter(st, nil)

	rec := postJournal(router, "user-1", "the original entry text")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}
	var journalID string
	for id := range st.journals["user-1"] {
		journalID = id
	}

	// Too-short replacement is rejected with the same bounds as create.
	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/journals/user-1/%s", journalID), strings.NewReader(`{"entry": "too short"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("short update: expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	// Valid replacement overwrites the entry and stamps updatedAt.
	req = httptest.NewRequest("PUT", fmt.Sprintf("/api/journals/user-1/%s", journalID), strings.NewReader(`{"entry": "the revised entry text"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	updated := st.journals["user-1"][journalID]
	if updated.Entry != "the revised entry text" {
		t.Errorf("entry after update: got %q", updated.Entry)
	}
	if updated.UpdatedAt == nil {
		t.Error("updatedAt not stamped on update")
	}
}

func TestUpdateJournal_NonExistentIsStorageError(t *testing.T) {
	router := newTestRouter(newFakeStore(), nil)

	req := httptest.NewRequest("PUT", "/api/journals/user-1/no-such-journal", strings.NewReader(`{"entry": "a perfectly valid entry"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestDeleteJournal_NonExistentIsIdempotent(t *testing.T) {
	router := newTestRouter(newFakeStore(), nil)

	req := httptest.NewRequest("DELETE", "/api/journals/user-1/no-such-journal", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestJournals_StorageUnavailable(t *testing.T) {
	router := newTestRouter(nil, nil)

	rec := postJournal(router, "user-1", "a perfectly valid entry")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

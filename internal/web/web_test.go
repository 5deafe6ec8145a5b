package web

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage/memory"
	"github.com/mmynk/billsplit/internal/widget"
)

// setupTestServer returns a handler over a freshly seeded widget.
func setupTestServer(t *testing.T) (http.Handler, *widget.Controller) {
	t.Helper()

	ctrl := widget.New(memory.New(models.SeedFriends()))
	srv, err := New(ctrl)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mux := http.NewServeMux()
	srv.Register(mux)
	return mux, ctrl
}

func post(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func getPage(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	return string(body)
}

func TestIndex_RendersFriendList(t *testing.T) {
	h, _ := setupTestServer(t)
	body := getPage(t, h)

	for _, want := range []string{
		"You owe Clark 7$",
		"Sarah owes you 20$",
		"You and Anthony are even",
		"Add Friend",
		`class="red"`,
		`class="green"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, "form-split-bill") {
		t.Error("split form shown without a selection")
	}
	if strings.Contains(body, "form-add-friend") {
		t.Error("add form shown before it was opened")
	}
}

func TestSelectAndSplit(t *testing.T) {
	h, ctrl := setupTestServer(t)

	rec := post(t, h, "/friends/118836/select", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("select status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect to %q, want /", loc)
	}

	body := getPage(t, h)
	if !strings.Contains(body, "Split a bill with Clark") {
		t.Fatal("split form not shown for selected friend")
	}
	if !strings.Contains(body, ">Close</button>") {
		t.Error("selected friend should offer Close")
	}

	rec = post(t, h, "/split", url.Values{
		"total_bill":   {"100"},
		"your_expense": {"40"},
		"payer":        {"user"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("split status = %d, want 303", rec.Code)
	}

	s := ctrl.Snapshot()
	if s.Selected != nil {
		t.Error("selection should be cleared after split")
	}
	if s.Friends[0].Balance != 53 {
		t.Errorf("Clark balance = %v, want 53", s.Friends[0].Balance)
	}
	if body := getPage(t, h); !strings.Contains(body, "Clark owes you 53$") {
		t.Error("page does not show new balance")
	}
}

func TestSplitDraft_ShowsFriendExpense(t *testing.T) {
	h, ctrl := setupTestServer(t)
	post(t, h, "/friends/933372/select", nil)

	rec := post(t, h, "/split/draft", url.Values{
		"total_bill":   {"100"},
		"your_expense": {"40"},
		"payer":        {"friend"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("draft status = %d, want 303", rec.Code)
	}

	body := getPage(t, h)
	if !strings.Contains(body, `id="friend_expense" type="text" value="60"`) {
		t.Error("derived friend expense not rendered")
	}
	if !strings.Contains(body, `<option value="friend" selected>Sarah</option>`) {
		t.Error("payer selection not kept")
	}
	if s := ctrl.Snapshot(); !s.IsSelected("933372") || s.Friends[1].Balance != 20 {
		t.Error("draft update should not settle the bill")
	}
}

func TestSplit_EmptyTotalIgnored(t *testing.T) {
	h, ctrl := setupTestServer(t)
	post(t, h, "/friends/118836/select", nil)

	post(t, h, "/split", url.Values{"total_bill": {""}, "your_expense": {"40"}})

	s := ctrl.Snapshot()
	if !s.IsSelected("118836") {
		t.Error("selection should be unchanged")
	}
	if s.Friends[0].Balance != -7 {
		t.Errorf("Clark balance = %v, want -7", s.Friends[0].Balance)
	}
}

func TestSplit_InvalidPayer(t *testing.T) {
	h, _ := setupTestServer(t)
	post(t, h, "/friends/118836/select", nil)

	rec := post(t, h, "/split", url.Values{"total_bill": {"10"}, "your_expense": {"5"}, "payer": {"dog"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSelect_UnknownFriend(t *testing.T) {
	h, _ := setupTestServer(t)
	rec := post(t, h, "/friends/missing/select", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestAddFriendFlow(t *testing.T) {
	h, ctrl := setupTestServer(t)
	post(t, h, "/friends/118836/select", nil)

	post(t, h, "/add-form/toggle", nil)
	body := getPage(t, h)
	if !strings.Contains(body, "form-add-friend") {
		t.Fatal("add form not shown after toggle")
	}
	if strings.Contains(body, "form-split-bill") {
		t.Error("opening add form should clear the selection")
	}
	if !strings.Contains(body, `value="https://i.pravatar.cc/48"`) {
		t.Error("default image URL not pre-filled")
	}

	post(t, h, "/friends", url.Values{"name": {"Mia"}, "image": {"https://i.pravatar.cc/48"}})

	s := ctrl.Snapshot()
	if len(s.Friends) != 4 {
		t.Fatalf("expected 4 friends, got %d", len(s.Friends))
	}
	mia := s.Friends[3]
	if mia.Name != "Mia" || mia.Balance != 0 {
		t.Errorf("unexpected friend %+v", mia)
	}
	if !strings.HasPrefix(mia.Image, "https://i.pravatar.cc/48?=") {
		t.Errorf("image = %q", mia.Image)
	}
	if body := getPage(t, h); !strings.Contains(body, "You and Mia are even") {
		t.Error("new friend not rendered")
	}
}

func TestAddFriend_EmptyNameKeepsDraft(t *testing.T) {
	h, ctrl := setupTestServer(t)
	post(t, h, "/add-form/toggle", nil)

	post(t, h, "/friends", url.Values{"name": {""}, "image": {"https://example.com/me.png"}})

	s := ctrl.Snapshot()
	if len(s.Friends) != 3 {
		t.Errorf("expected 3 friends, got %d", len(s.Friends))
	}
	if s.AddFriend.ImageURL != "https://example.com/me.png" {
		t.Errorf("image draft = %q, want kept for correction", s.AddFriend.ImageURL)
	}
	if !s.ShowAddFriend {
		t.Error("form should stay open")
	}
}

func TestSplitDraft_IgnoredWithoutSelection(t *testing.T) {
	h, ctrl := setupTestServer(t)

	post(t, h, "/split/draft", url.Values{"total_bill": {"100"}, "your_expense": {"40"}, "payer": {"friend"}})
	post(t, h, "/friends/118836/select", nil)

	body := getPage(t, h)
	if !strings.Contains(body, `id="friend_expense" type="text" value=""`) {
		t.Error("split form should open empty after a draft post without a selection")
	}
	if s := ctrl.Snapshot(); s.Split.TotalBill.Known() || s.Split.Payer != "user" {
		t.Errorf("stale split drafts: %+v", s.Split)
	}
}

func TestAddFriend_ConcurrentPosts(t *testing.T) {
	h, ctrl := setupTestServer(t)
	const n = 200

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			rec := post(t, h, "/friends", url.Values{
				"name":  {fmt.Sprintf("Friend %d", i)},
				"image": {"https://i.pravatar.cc/48"},
			})
			if rec.Code != http.StatusSeeOther {
				t.Errorf("post %d status = %d", i, rec.Code)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	if got := len(ctrl.Snapshot().Friends); got != 3+n {
		t.Errorf("expected %d friends, got %d", 3+n, got)
	}
}

package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/widget"
)

func TestRecorderCounters(t *testing.T) {
	m := New()

	m.FriendAdded()
	m.FriendAdded()
	m.Settled(calculator.PayerUser)
	m.Settled(calculator.PayerFriend)
	m.Settled(calculator.PayerFriend)
	m.Ignored(widget.FormSplitBill)

	if got := testutil.ToFloat64(m.friendsAdded); got != 2 {
		t.Errorf("friends_added_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.settlements.WithLabelValues("friend")); got != 2 {
		t.Errorf("settlements_total{payer=friend} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.settlements.WithLabelValues("user")); got != 1 {
		t.Errorf("settlements_total{payer=user} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ignored.WithLabelValues(widget.FormSplitBill)); got != 1 {
		t.Errorf("ignored_submissions_total{form=split_bill} = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.FriendAdded()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "billsplit_friends_added_total 1") {
		t.Errorf("metrics output missing counter:\n%s", body)
	}
}

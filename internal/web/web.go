// Package web renders the bill-splitting widget as server-side HTML.
//
// Every button and form on the page posts to a route that raises one or more
// widget events, then redirects back to the page, which is re-rendered from
// the latest snapshot.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/widget"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the widget page and its form routes.
type Server struct {
	ctrl *widget.Controller
	page *template.Template
}

// New parses the page template and returns a Server driving ctrl.
func New(ctrl *widget.Controller) (*Server, error) {
	page, err := template.New("index.html").
		Funcs(template.FuncMap{"money": calculator.FormatMoney}).
		ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Server{ctrl: ctrl, page: page}, nil
}

// Register mounts the widget routes on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /add-form/toggle", s.handleToggleAddForm)
	mux.HandleFunc("POST /friends", s.handleAddFriend)
	mux.HandleFunc("POST /friends/{id}/select", s.handleSelect)
	mux.HandleFunc("POST /split/draft", s.handleSplitDraft)
	mux.HandleFunc("POST /split", s.handleSplit)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, newPage(s.ctrl.Snapshot())); err != nil {
		slog.Error("Failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *Server) handleToggleAddForm(w http.ResponseWriter, r *http.Request) {
	s.ctrl.ToggleAddForm()
	redirectHome(w, r)
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	s.ctrl.AddFriend(r.PostForm.Get("name"), r.PostForm.Get("image"))
	redirectHome(w, r)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.ctrl.ToggleSelect(id); err != nil {
		if errors.Is(err, widget.ErrFriendNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("Select failed", "friend_id", id, "error", err)
		http.Error(w, "select failed", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleSplitDraft(w http.ResponseWriter, r *http.Request) {
	form, ok := parseSplitForm(w, r)
	if !ok {
		return
	}
	s.ctrl.UpdateSplit(form.totalBill, form.yourExpense, form.payer)
	redirectHome(w, r)
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	form, ok := parseSplitForm(w, r)
	if !ok {
		return
	}
	s.ctrl.SplitBill(form.totalBill, form.yourExpense, form.payer)
	redirectHome(w, r)
}

type splitFormValues struct {
	totalBill   string
	yourExpense string
	payer       calculator.Payer
}

// parseSplitForm reads the posted split fields. It writes an error response
// and returns false when the form is malformed.
func parseSplitForm(w http.ResponseWriter, r *http.Request) (splitFormValues, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return splitFormValues{}, false
	}
	v := splitFormValues{
		totalBill:   r.PostForm.Get("total_bill"),
		yourExpense: r.PostForm.Get("your_expense"),
		payer:       calculator.PayerUser,
	}
	if p := r.PostForm.Get("payer"); p != "" {
		payer, err := calculator.ParsePayer(p)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return splitFormValues{}, false
		}
		v.payer = payer
	}
	return v, true
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/rdawsonsdp/appsheet/pkg/order"
	"github.com/rdawsonsdp/appsheet/pkg/ticket"
)

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	page, err := s.engine.render("shell.html", map[string]any{
		"title": "Order Tickets",
	})
	if err != nil {
		s.log.Error("shell render failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// orderEntry is one row of the orders list: the raw fields plus the
// preview summary the list column shows.
type orderEntry struct {
	Row     string       `json:"row"`
	Details string       `json:"details"`
	Fields  order.Record `json:"fields"`
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	records := s.fetchOrders(r.Context())
	entries := make([]orderEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, orderEntry{
			Row:     rec.RowID(),
			Details: ticket.OrderDetails(rec),
			Fields:  rec,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": entries})
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	records := s.fetchOrders(r.Context())
	catalog := ticket.BuildFieldCatalog(records[0])
	writeJSON(w, http.StatusOK, map[string]any{"fields": catalog})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, _ *http.Request) {
	value, custom := s.activeTemplate()
	writeJSON(w, http.StatusOK, map[string]any{
		"template": value,
		"custom":   custom,
	})
}

type saveTemplateRequest struct {
	Template string `json:"template"`
}

func (s *Server) handleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req saveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Template) == "" {
		http.Error(w, "template is empty", http.StatusBadRequest)
		return
	}

	cleaned := sanitizeTemplate(req.Template)
	if err := s.store.Save(cleaned); err != nil {
		s.log.Error("template save failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"template": cleaned, "custom": true})
}

func (s *Server) handleClearTemplate(w http.ResponseWriter, _ *http.Request) {
	if err := s.store.Clear(); err != nil {
		s.log.Error("template clear failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type previewRequest struct {
	Template string `json:"template"`
	Row      string `json:"row"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	template := req.Template
	if strings.TrimSpace(template) == "" {
		template, _ = s.activeTemplate()
	}

	rec := s.selectOrder(r, req.Row)
	writeJSON(w, http.StatusOK, map[string]any{
		"html": s.renderer.Render(template, rec),
		"row":  rec.RowID(),
	})
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	template, _ := s.activeTemplate()
	records := s.fetchOrders(r.Context())

	selected := records
	if rows := splitRows(r.URL.Query().Get("rows")); len(rows) > 0 {
		selected = filterByRows(records, rows)
		if len(selected) == 0 {
			http.Error(w, "no matching orders", http.StatusNotFound)
			return
		}
	}

	tickets := make([]string, 0, len(selected))
	for _, rec := range selected {
		tickets = append(tickets, s.renderer.Render(template, rec))
	}

	page, err := s.engine.render("print.html", map[string]any{
		"title":   "Print Tickets",
		"tickets": tickets,
	})
	if err != nil {
		s.log.Error("print render failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// selectOrder picks the requested row, falling back to the first fetched
// order so previews always have input.
func (s *Server) selectOrder(r *http.Request, row string) order.Record {
	records := s.fetchOrders(r.Context())
	if row != "" {
		for _, rec := range records {
			if rec.RowID() == row {
				return rec
			}
		}
	}
	return records[0]
}

func splitRows(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// filterByRows keeps records whose row id is listed, preserving the
// backend's order.
func filterByRows(records []order.Record, rows []string) []order.Record {
	wanted := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		wanted[row] = struct{}{}
	}
	out := make([]order.Record, 0, len(rows))
	for _, rec := range records {
		if _, ok := wanted[rec.RowID()]; ok {
			out = append(out, rec)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

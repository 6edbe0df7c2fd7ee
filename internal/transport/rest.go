package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.Health(r.Context()))
}

func (s *Server) handleTestConnections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.TestConnections(r.Context()))
}

// handleCollectData always answers 200; failures are reported in the body.
func (s *Server) handleCollectData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.CollectData(r.Context()))
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	channel := s.facade.DefaultChannel()
	if query.Has("channel") {
		channel = query.Get("channel")
	}
	writeJSON(w, http.StatusOK, s.facade.GetMessages(r.Context(), channel))
}

func (s *Server) handleChannels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.GetChannels(r.Context()))
}

func (s *Server) handleIssuesA(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.GetIssuesA(r.Context()))
}

func (s *Server) handleIssuesAStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.GetIssuesAStats(r.Context()))
}

func (s *Server) handleIssuesAForUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	writeJSON(w, http.StatusOK, s.facade.GetIssuesAForUser(r.Context(), username))
}

func (s *Server) handleIssuesB(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.GetIssuesB(r.Context()))
}

func (s *Server) handleIssuesBStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.GetIssuesBStats(r.Context()))
}

func (s *Server) handleIssuesBForUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	writeJSON(w, http.StatusOK, s.facade.GetIssuesBForUser(r.Context(), username))
}

func (s *Server) handleAllData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.GetAllData(r.Context()))
}

func (s *Server) handleClearData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.ClearAllData(r.Context()))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.facade.GetWellbeingStatus(r.Context()))
}

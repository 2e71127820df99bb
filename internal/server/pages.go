package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ersonp/kural-core/internal/domain/entities"
)

type pageData struct {
	Question  string
	GraphPath string
	LoadError string
	Info      string
	Warning   string
	Match     *entities.QueryResult
}

// AnswerResponse is the JSON body of GET /api/answer.
type AnswerResponse struct {
	Query string                `json:"query"`
	Found bool                  `json:"found"`
	Match *entities.QueryResult `json:"match,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) basePage() pageData {
	data := pageData{GraphPath: s.graphPath}
	if s.loadErr != nil {
		data.LoadError = s.loadErr.Error()
	}
	return data
}

func (s *Server) available() bool {
	return s.loadErr == nil && s.query != nil
}

// Index renders the empty question page.
func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.basePage())
}

// Ask answers the question posted from the page form.
func (s *Server) Ask(c *gin.Context) {
	data := s.basePage()
	if !s.available() {
		c.HTML(http.StatusServiceUnavailable, "index.html", data)
		return
	}

	question := c.PostForm("question")
	data.Question = question

	if strings.TrimSpace(question) == "" {
		s.metrics.ObserveQuestion(OutcomeEmpty)
		data.Info = MsgEmptyQuestion
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	result := s.query.Handle(question)
	if result.Found {
		s.metrics.ObserveQuestion(OutcomeMatched)
		data.Match = &result.Match
	} else {
		s.metrics.ObserveQuestion(OutcomeUnmatched)
		data.Warning = MsgNoMatch
	}
	s.log.Debug("question answered", "found", result.Found, "entry", result.Match.EntryID, "request_id", GetRequestID(c))

	c.HTML(http.StatusOK, "index.html", data)
}

// Answer is the JSON form of Ask.
func (s *Server) Answer(c *gin.Context) {
	if !s.available() {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "knowledge graph not loaded"})
		return
	}

	question := c.Query("q")
	if strings.TrimSpace(question) == "" {
		s.metrics.ObserveQuestion(OutcomeEmpty)
		c.JSON(http.StatusBadRequest, errorResponse{Error: "query parameter q is required"})
		return
	}

	result := s.query.Handle(question)
	resp := AnswerResponse{Query: result.Query, Found: result.Found}
	if result.Found {
		s.metrics.ObserveQuestion(OutcomeMatched)
		resp.Match = &result.Match
	} else {
		s.metrics.ObserveQuestion(OutcomeUnmatched)
	}
	c.JSON(http.StatusOK, resp)
}

// Health reports whether the graph is loaded.
func (s *Server) Health(c *gin.Context) {
	if !s.available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "graph": s.graphPath})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "graph": s.graphPath})
}

package handler

import (
	"encoding/json"
	"net/http"

	"pdf-tools-server/internal/domain"

	"github.com/gorilla/mux"
)

// ToolHandler serves every registered PDF operation through one generic
// endpoint; the operation name in the path selects the registry entry.
type ToolHandler struct {
	tools  domain.ToolService
	logger domain.Logger
}

// NewToolHandler creates a new tool handler
func NewToolHandler(tools domain.ToolService, logger domain.Logger) *ToolHandler {
	return &ToolHandler{
		tools:  tools,
		logger: logger,
	}
}

// toolResponse is the success reply shape. Exactly one of url/urls/body is
// set depending on the operation's result mode.
type toolResponse struct {
	Error    bool            `json:"error"`
	NotFound bool            `json:"notFound,omitempty"`
	URL      string          `json:"url,omitempty"`
	URLs     []string        `json:"urls,omitempty"`
	Body     json.RawMessage `json:"body,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// Execute handles POST /api/{operation}
func (h *ToolHandler) Execute(w http.ResponseWriter, r *http.Request) {
	operation := mux.Vars(r)["operation"]

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.tools.Execute(r.Context(), operation, body)
	if err != nil {
		h.logger.Debug("Operation failed", "operation", operation, "reason", err.Error())
		writeAppError(w, err)
		return
	}

	if result.NotFound {
		// Deliberately 200: "no match" is a normal outcome the client
		// renders differently from a hard failure.
		writeJSON(w, http.StatusOK, toolResponse{
			Error:    true,
			NotFound: true,
			Message:  "The search text was not found in the document",
		})
		return
	}

	writeJSON(w, http.StatusOK, toolResponse{
		URL:  result.URL,
		URLs: result.URLs,
		Body: result.Body,
	})
}

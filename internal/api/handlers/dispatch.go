package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/instabids/mcp-hub/internal/tool"
)

// DispatchHandler serves POST /mcp/call. Execution failures are reported
// inside a 200 envelope so callers only branch on the envelope status;
// non-200 codes are reserved for transport problems (bad body, auth).
type DispatchHandler struct {
	dispatcher *tool.Dispatcher
}

// NewDispatchHandler creates a DispatchHandler backed by the dispatcher.
func NewDispatchHandler(d *tool.Dispatcher) *DispatchHandler {
	return &DispatchHandler{dispatcher: d}
}

// maxFormMemory bounds how much of a multipart form body is held in memory.
const maxFormMemory = 1 << 20

// Call handles POST /mcp/call. Accepts a JSON body with the tool name under
// "tool", "function" or "name" and arguments under "parameters" or
// "arguments", or a form post (URL-encoded or multipart) with the same
// fields (arguments as a JSON-encoded string).
func (h *DispatchHandler) Call(w http.ResponseWriter, r *http.Request) {
	req, err := parseCallRequest(r)
	if err != nil {
		writeJSON(w, http.StatusOK, tool.Result{
			Status: tool.StatusError,
			Tool:   "unknown",
			Error:  "invalid request body: " + err.Error(),
		})
		return
	}

	result := h.dispatcher.Dispatch(r.Context(), req)
	writeJSON(w, http.StatusOK, result)
}

// parseCallRequest normalizes the two accepted request shapes into a
// dispatch request.
func parseCallRequest(r *http.Request) (tool.Request, error) {
	var req tool.Request

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		var err error
		if strings.HasPrefix(ct, "multipart/form-data") {
			err = r.ParseMultipartForm(maxFormMemory)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return req, err
		}
		req.Tool = firstNonEmpty(r.PostFormValue("tool"), r.PostFormValue("function"), r.PostFormValue("name"))
		raw := firstNonEmpty(r.PostFormValue("parameters"), r.PostFormValue("arguments"))
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Args); err != nil {
				return req, err
			}
		}
		return req, nil
	}

	var body struct {
		Tool       string    `json:"tool"`
		Function   string    `json:"function"`
		Name       string    `json:"name"`
		Parameters tool.Args `json:"parameters"`
		Arguments  tool.Args `json:"arguments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return req, err
	}
	req.Tool = firstNonEmpty(body.Tool, body.Function, body.Name)
	req.Args = body.Parameters
	if req.Args == nil {
		req.Args = body.Arguments
	}
	return req, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

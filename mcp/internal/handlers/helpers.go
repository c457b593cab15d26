package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/DevIBlogistica/frontend-tratativas/client"
)

// jsonResult marshals v as the text content of a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// errorResult reports err to the caller as the {message, code} pair the API
// client produces.
func errorResult(action string, err error) *mcp.CallToolResult {
	info := client.NormalizeError(err)
	b, _ := json.Marshal(map[string]string{"message": info.Message, "code": info.Code})
	return mcp.NewToolResultError(fmt.Sprintf("failed to %s: %s", action, b))
}

// argID reads a positive record id given as a JSON number or a decimal
// string.
func argID(req mcp.CallToolRequest, key string) (int64, error) {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	var id int64
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		id = int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		id = n
	default:
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return id, nil
}

// optString returns the string argument key and whether it was given.
func optString(req mcp.CallToolRequest, key string) (*string, bool) {
	v, ok := req.GetArguments()[key].(string)
	if !ok {
		return nil, false
	}
	return &v, true
}

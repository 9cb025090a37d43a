package viewmodels

import "encoding/json"

type AuthenticationLog struct {
	ID        uint   `json:"id"`
	Kind      string `json:"kind"`
	Username  string `json:"username"`
	UserID    int64  `json:"userId,omitempty"`
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	CreatedAt string `json:"createdAt"`
}

type ActionLog struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Method    string          `json:"method,omitempty"`
	Path      string          `json:"path,omitempty"`
	Status    int             `json:"status,omitempty"`
	Event     string          `json:"event,omitempty"`
	After     json.RawMessage `json:"after,omitempty"`
	IP        string          `json:"ip"`
	UserAgent string          `json:"userAgent"`
	CreatedAt string          `json:"createdAt"`
}

type AuthenticationFilters struct {
	Username string `json:"username,omitempty"`
	Kind     string `json:"kind,omitempty"`
	IP       string `json:"ip,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

type ActionFilters struct {
	Username string `json:"username,omitempty"`
	Method   string `json:"method,omitempty"`
	Path     string `json:"path,omitempty"`
	Event    string `json:"event,omitempty"`
	IP       string `json:"ip,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

type AuthenticationSection struct {
	Logs    []*AuthenticationLog  `json:"logs"`
	Total   int64                 `json:"total"`
	Filters AuthenticationFilters `json:"filters"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

type ActionSection struct {
	Logs    []*ActionLog  `json:"logs"`
	Total   int64         `json:"total"`
	Filters ActionFilters `json:"filters"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
}

// LogsResponse carries the section of the requested tab only.
type LogsResponse struct {
	Tab            string                 `json:"tab"`
	Authentication *AuthenticationSection `json:"authentication,omitempty"`
	Action         *ActionSection         `json:"action,omitempty"`
}

package http

// beginResp carries the OAuth consent URL.
type beginResp struct {
	AuthURL string `json:"auth_url"`
}

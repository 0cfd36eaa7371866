package dto

import (
	"encoding/json"
	"time"
)

// Account is a Mastodon account as we keep it. This is deliberately an
// allow-list: decoding a raw API object into this struct drops every other
// field (avatars, counters, custom emoji and whatever else the instance
// sends) by construction.
type Account struct {
	Id          string `json:"id"`
	Username    string `json:"username"`
	Url         string `json:"url"`
	DisplayName string `json:"display_name"`
	Note        string `json:"note"`
}

// ParseAccounts decodes a JSON array of raw API account objects.
func ParseAccounts(body []byte) ([]*Account, error) {
	var res []*Account
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Responses below are what our own API hands out.

type AccountResp struct {
	Id          string `json:"id"`
	Username    string `json:"username"`
	Url         string `json:"url"`
	DisplayName string `json:"display_name"`
	Note        string `json:"note"`
	NoteExcerpt string `json:"note_excerpt,omitempty"`
}

type AccountListResp struct {
	Total    int            `json:"total"`
	Accounts []*AccountResp `json:"accounts"`
}

type StatusResp struct {
	AccountCount int        `json:"account_count"`
	EdgeCount    int        `json:"edge_count"`
	LastSync     *time.Time `json:"last_sync,omitempty"`
	SyncRunning  bool       `json:"sync_running"`
}

type SyncResp struct {
	Started bool   `json:"started"`
	Detail  string `json:"detail,omitempty"`
}

package dal

import (
	"time"
)

type Account struct {
	Id          string // Opaque instance-assigned ID; stable across fetches
	Username    string // twilliability
	Url         string // https://genart.social/@twilliability
	DisplayName string // Galactic Dominator
	Note        string // Bio; sanitized HTML
	ContentHash int64  // murmur3 over the stored fields; lets upserts skip no-op row touches
}

type FollowEdge struct {
	FollowedId string
	FollowerId string
	FirstSeen  time.Time // Set when the edge is first observed; never overwritten
}

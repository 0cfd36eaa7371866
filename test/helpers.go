package test

import (
	"masto_graph/dal"
)

type edgePair struct {
	followedId string
	followerId string
}

func checkAccountIds(ids []string) func(x any) bool {
	res := func(x any) bool {
		accounts, ok := x.([]*dal.Account)
		if !ok {
			return false
		}
		if len(accounts) != len(ids) {
			return false
		}
		for i := 0; i < len(accounts); i++ {
			if accounts[i].Id != ids[i] {
				return false
			}
		}
		return true
	}
	return res
}

func checkEdgePairs(pairs []edgePair) func(x any) bool {
	res := func(x any) bool {
		edges, ok := x.([]*dal.FollowEdge)
		if !ok {
			return false
		}
		if len(edges) != len(pairs) {
			return false
		}
		for i := 0; i < len(edges); i++ {
			if edges[i].FollowedId != pairs[i].followedId {
				return false
			}
			if edges[i].FollowerId != pairs[i].followerId {
				return false
			}
			// One batch, one timestamp
			if !edges[i].FirstSeen.Equal(edges[0].FirstSeen) {
				return false
			}
		}
		return true
	}
	return res
}

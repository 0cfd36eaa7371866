package logic

import (
	"fmt"
	"masto_graph/dal"
	"masto_graph/dto"
	"masto_graph/shared"
	"time"

	"github.com/spaolacci/murmur3"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_ingester.go -package mocks masto_graph/logic IIngester

// EdgeDirection says which side of the follow edges a batch's accounts are on.
// The anchor account is on the other side. This replaces a pair of mutually
// exclusive optional IDs: the both-set state cannot be expressed.
type EdgeDirection int

const (
	// EdgeNone: save accounts only, no edges
	EdgeNone EdgeDirection = iota
	// EdgeFollowers: the batch's accounts follow the anchor
	EdgeFollowers
	// EdgeFollowing: the anchor follows the batch's accounts
	EdgeFollowing
)

func (d EdgeDirection) String() string {
	switch d {
	case EdgeFollowers:
		return "followers"
	case EdgeFollowing:
		return "following"
	default:
		return "none"
	}
}

type EdgeSpec struct {
	Direction EdgeDirection
	AnchorId  string
}

type IIngester interface {
	SaveAccounts(accounts []*dto.Account, edge EdgeSpec) (saved, newEdges int, err error)
}

type ingester struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
}

func NewIngester(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	metrics IMetrics,
) IIngester {
	return &ingester{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		metrics: metrics,
	}
}

// SaveAccounts applies one batch: upserts every account, and records one
// follow edge per account when a direction is given. The whole batch is one
// transaction. Existing edges keep their original first_seen.
func (ing *ingester) SaveAccounts(accounts []*dto.Account, edge EdgeSpec) (saved, newEdges int, err error) {

	// Caller bug, not a runtime condition: fail before anything is written
	if edge.Direction != EdgeNone && edge.AnchorId == "" {
		panic("edge direction given without an anchor account id")
	}
	if edge.Direction == EdgeNone && edge.AnchorId != "" {
		panic("anchor account id given without an edge direction")
	}

	var entities []*dal.Account
	for _, acct := range accounts {
		entities = append(entities, transformAccount(acct))
	}

	var edges []*dal.FollowEdge
	if edge.Direction != EdgeNone {
		firstSeen := time.Now().UTC()
		for _, acct := range accounts {
			fe := dal.FollowEdge{FirstSeen: firstSeen}
			switch edge.Direction {
			case EdgeFollowers:
				fe.FollowedId = edge.AnchorId
				fe.FollowerId = acct.Id
			case EdgeFollowing:
				fe.FollowedId = acct.Id
				fe.FollowerId = edge.AnchorId
			default:
				panic(fmt.Sprintf("unknown edge direction %d", edge.Direction))
			}
			edges = append(edges, &fe)
		}
	}

	newEdges, err = ing.repo.SaveAccountBatch(entities, edges)
	if err != nil {
		return 0, 0, err
	}

	ing.metrics.AccountsSaved(len(entities))
	ing.metrics.EdgesSaved(newEdges)
	return len(entities), newEdges, nil
}

// transformAccount maps a raw API account onto what we store. dto.Account is
// already the field allow-list; here we only sanitize the bio and compute the
// content hash.
func transformAccount(acct *dto.Account) *dal.Account {
	note := shared.SanitizeNote(acct.Note)
	return &dal.Account{
		Id:          acct.Id,
		Username:    acct.Username,
		Url:         acct.Url,
		DisplayName: acct.DisplayName,
		Note:        note,
		ContentHash: accountHash(acct.Username, acct.Url, acct.DisplayName, note),
	}
}

func accountHash(username, url, displayName, note string) int64 {
	str := username + "\t" + url + "\t" + displayName + "\t" + note
	hasher := murmur3.New64()
	_, _ = hasher.Write([]byte(str))
	return int64(hasher.Sum64())
}

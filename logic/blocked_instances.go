package logic

import (
	"bufio"
	"masto_graph/shared"
	"os"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_blocked_instances.go -package mocks masto_graph/logic IBlockedInstances

// IBlockedInstances filters out accounts from instances we don't want in the
// store. The block file holds one lower-case host name per line.
type IBlockedInstances interface {
	IsBlocked(accountUrl string) (bool, error)
}

type blockedInstances struct {
	cfg *shared.Config
}

func NewBlockedInstances(cfg *shared.Config) IBlockedInstances {
	return &blockedInstances{cfg}
}

func (bi *blockedInstances) IsBlocked(accountUrl string) (bool, error) {

	if bi.cfg.BlockedInstancesFile == "" {
		return false, nil
	}

	host, err := shared.GetHostName(accountUrl)
	if err != nil {
		return false, err
	}
	host = strings.ToLower(host)

	readFile, err := os.Open(bi.cfg.BlockedInstancesFile)
	if err != nil {
		return false, err
	}
	defer readFile.Close()
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)

	for fileScanner.Scan() {
		line := strings.TrimSpace(fileScanner.Text())
		if host == line {
			return true, nil
		}
	}
	return false, nil
}

package serverinfo

//go:generate mockgen -source=./serverinfo.go -destination=./serverinfo_mock.go -package=serverinfo ServerInfo

import (
	"github.com/javi11/poolkeeper/pkg/dialer"
	"github.com/javi11/poolkeeper/pkg/resourcepool"
)

type ServerInfo interface {
	GetPoolsInfo() []PoolInfo
	GetPoolInfo(key resourcepool.Key) (PoolInfo, bool)
	GetGlobalInfo() GlobalInfo
}

type StatsProvider interface {
	Stats() []resourcepool.Stats
}

type TargetProvider interface {
	Target(key resourcepool.Key) (dialer.Target, bool)
}

type PoolInfo struct {
	resourcepool.Stats
	TargetId   string `json:"targetId,omitempty"`
	TargetName string `json:"targetName,omitempty"`
	Host       string `json:"host,omitempty"`
	Port       int    `json:"port,omitempty"`
}

type GlobalInfo struct {
	Pools           int    `json:"pools"`
	Resources       int    `json:"resources"`
	Idle            int    `json:"idle"`
	Busy            int    `json:"busy"`
	Waiting         int    `json:"waiting"`
	Created         uint64 `json:"created"`
	Destroyed       uint64 `json:"destroyed"`
	Acquired        uint64 `json:"acquired"`
	Timeouts        uint64 `json:"timeouts"`
	FactoryFailures uint64 `json:"factoryFailures"`
}

type serverInfo struct {
	stats   StatsProvider
	targets TargetProvider
}

func NewServerInfo(stats StatsProvider, targets TargetProvider) ServerInfo {
	return &serverInfo{stats: stats, targets: targets}
}

func (s *serverInfo) GetPoolsInfo() []PoolInfo {
	stats := s.stats.Stats()

	info := make([]PoolInfo, 0, len(stats))
	for _, st := range stats {
		info = append(info, s.poolInfo(st))
	}

	return info
}

func (s *serverInfo) GetPoolInfo(key resourcepool.Key) (PoolInfo, bool) {
	for _, st := range s.stats.Stats() {
		if st.Key == key {
			return s.poolInfo(st), true
		}
	}

	return PoolInfo{}, false
}

func (s *serverInfo) GetGlobalInfo() GlobalInfo {
	var g GlobalInfo

	for _, st := range s.stats.Stats() {
		g.Pools++
		g.Resources += st.Size
		g.Idle += st.Idle
		g.Busy += st.Busy
		g.Waiting += st.Waiting
		g.Created += st.Created
		g.Destroyed += st.Destroyed
		g.Acquired += st.Acquired
		g.Timeouts += st.Timeouts
		g.FactoryFailures += st.FactoryFailures
	}

	return g
}

func (s *serverInfo) poolInfo(st resourcepool.Stats) PoolInfo {
	info := PoolInfo{Stats: st}

	if s.targets == nil {
		return info
	}

	if t, ok := s.targets.Target(st.Key); ok {
		info.TargetId = t.Id
		info.TargetName = t.Name
		info.Host = t.Host
		info.Port = t.Port
	}

	return info
}

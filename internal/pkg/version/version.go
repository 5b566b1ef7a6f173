// Package version 汇总构建版本和 git 提交信息。
//
// 取值优先级: 编译时 -ldflags "-X" 注入的变量 > Go 工具链写入的 vcs 构建信息 > "unknown"。
package version

import (
	"runtime/debug"
	"sync"
	"time"
)

const (
	APIName = "Pallet Scan API"
	unknown = "unknown"
)

// 编译时通过 ldflags 设置
var (
	Version       = "1.0.0"
	BuildTime     = ""
	CommitHash    = ""
	CommitTime    = ""
	CommitMessage = ""
	Dirty         = ""
)

type GitInfo struct {
	CommitHash    string `json:"commit_hash"`
	ShortHash     string `json:"short_hash"`
	CommitDate    string `json:"commit_date"`
	CommitMessage string `json:"commit_message"`
	IsDirty       bool   `json:"is_dirty"`
}

type Info struct {
	Version   string  `json:"version"`
	BuildDate string  `json:"build_date"`
	Git       GitInfo `json:"git"`
	APIName   string  `json:"api_name"`
}

var (
	once      sync.Once
	cached    Info
	startedAt = time.Now()
)

// Get 返回进程的版本信息，只计算一次
func Get() Info {
	once.Do(func() {
		bi, _ := debug.ReadBuildInfo()
		cached = build(bi)
	})
	return cached
}

func build(bi *debug.BuildInfo) Info {
	settings := map[string]string{}
	if bi != nil {
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
	}

	hash := firstNonEmpty(CommitHash, settings["vcs.revision"])
	git := GitInfo{
		CommitHash:    firstNonEmpty(hash, unknown),
		ShortHash:     firstNonEmpty(shortHash(hash), unknown),
		CommitDate:    firstNonEmpty(CommitTime, settings["vcs.time"], unknown),
		CommitMessage: firstNonEmpty(CommitMessage, unknown),
		IsDirty:       firstNonEmpty(Dirty, settings["vcs.modified"]) == "true",
	}

	return Info{
		Version:   Version,
		BuildDate: firstNonEmpty(BuildTime, startedAt.Format(time.RFC3339)),
		Git:       git,
		APIName:   APIName,
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

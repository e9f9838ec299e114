// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillFromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	b := Build{Version: "dev", Commit: "none", Date: "unknown"}
	fillFromBuildInfo(&b, info)
	assert.Equal(t, Build{Version: "v1.2.3", Commit: "0123456", Date: "2026-01-02T03:04:05Z"}, b)
}

func TestFillFromBuildInfo_KeepsLdflags(t *testing.T) {
	info := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fffffff"}},
	}

	b := Build{Version: "0.2.0", Commit: "abc1234", Date: "unknown"}
	fillFromBuildInfo(&b, info)
	assert.Equal(t, "0.2.0", b.Version)
	assert.Equal(t, "abc1234", b.Commit)
}

func TestInfo(t *testing.T) {
	assert.True(t, strings.HasPrefix(Info(), "shapeshyft version "))
	assert.Equal(t, Get().Version, Short())
}

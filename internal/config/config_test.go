// Copyright 2026 The xv6sched Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juchan1220/xv6sched/internal/config"
	"github.com/juchan1220/xv6sched/internal/kernel"
)

func TestDefaultMatchesCompiledInKernelConstants(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, kernel.NPROC, cfg.NProc)
	require.Equal(t, kernel.NTHREAD, cfg.NThread)
	require.Equal(t, kernel.MLFQLevels, cfg.MLFQLevels)
	require.Equal(t, kernel.MLFQBoostTicks, cfg.MLFQBoostTicks)
	require.Equal(t, "round-robin", cfg.Policy)
}

func TestLoadWithEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadOverlaysFileOnTopOfDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xv6sched.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
policy = "mlfq"
cpus = 4
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "mlfq", cfg.Policy)
	require.Equal(t, 4, cfg.CPUs)
	// Fields the file doesn't mention keep Default's values.
	require.Equal(t, kernel.NPROC, cfg.NProc)
	require.Equal(t, kernel.MLFQLevels, cfg.MLFQLevels)
}

func TestLoadRejectsUnreadableFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}

func TestRegisterFlagsOverridesFileValues(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = "mlfq"

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.RegisterFlags(fs, &cfg)
	require.NoError(t, fs.Parse([]string{"-policy=multilevel", "-cpus=8"}))

	require.Equal(t, "multilevel", cfg.Policy)
	require.Equal(t, 8, cfg.CPUs)
}

func TestBuildPolicyRoundRobin(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = "round-robin"

	p, err := cfg.BuildPolicy()
	require.NoError(t, err)
	require.IsType(t, kernel.NewRoundRobin(), p)
}

func TestBuildPolicyEmptyStringDefaultsToRoundRobin(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = ""

	p, err := cfg.BuildPolicy()
	require.NoError(t, err)
	require.IsType(t, kernel.NewRoundRobin(), p)
}

func TestBuildPolicyMultilevel(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = "multilevel"

	p, err := cfg.BuildPolicy()
	require.NoError(t, err)
	require.IsType(t, kernel.NewMultilevel(), p)
}

func TestBuildPolicyMLFQWithMatchingConstants(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = "mlfq"

	p, err := cfg.BuildPolicy()
	require.NoError(t, err)
	require.IsType(t, kernel.NewMLFQ(), p)
}

func TestBuildPolicyMLFQRejectsMismatchedLevels(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = "mlfq"
	cfg.MLFQLevels = kernel.MLFQLevels + 1

	_, err := cfg.BuildPolicy()
	require.Error(t, err)
}

func TestBuildPolicyMLFQRejectsMismatchedBoostTicks(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = "mlfq"
	cfg.MLFQBoostTicks = kernel.MLFQBoostTicks + 1

	_, err := cfg.BuildPolicy()
	require.Error(t, err)
}

func TestBuildPolicyRejectsUnknownName(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = "lottery"

	_, err := cfg.BuildPolicy()
	require.Error(t, err)
}

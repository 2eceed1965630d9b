package cmd

import (
	"bytes"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommandStructure(t *testing.T) {
	assert.NotNil(t, versionCmd)
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
	assert.NotNil(t, versionCmd.Run)
}

func TestRunVersion(t *testing.T) {
	originalVersion := Version
	originalCommit := Commit
	defer func() {
		Version = originalVersion
		Commit = originalCommit
	}()

	tests := []struct {
		name         string
		version      string
		commit       string
		wantInOutput []string
	}{
		{
			name:    "dev version",
			version: "0.0.1-dev",
			commit:  "unknown",
			wantInOutput: []string{
				"launchdash version 0.0.1-dev",
				"Commit: ",
				"Go version:",
				"OS/Arch:",
			},
		},
		{
			name:    "release version",
			version: "1.0.0",
			commit:  "abc123def456",
			wantInOutput: []string{
				"launchdash version 1.0.0",
				"Commit: abc123def456",
			},
		},
		{
			name:    "empty version",
			version: "",
			commit:  "",
			wantInOutput: []string{
				"launchdash version ",
				"Commit: ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			Commit = tt.commit

			var buf bytes.Buffer
			versionCmd.SetOut(&buf)

			runVersion(versionCmd, []string{})

			output := buf.String()
			for _, want := range tt.wantInOutput {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestVersionOutputFormat(t *testing.T) {
	originalVersion := Version
	originalCommit := Commit
	defer func() {
		Version = originalVersion
		Commit = originalCommit
	}()

	Version = "1.2.3"
	Commit = "abc123"

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	runVersion(versionCmd, []string{})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 4)
	assert.Contains(t, string(lines[0]), "launchdash version 1.2.3")
	assert.Contains(t, string(lines[1]), "Commit: abc123")
	assert.Contains(t, string(lines[2]), runtime.Version())
	assert.Contains(t, string(lines[3]), runtime.GOOS+"/"+runtime.GOARCH)
}

func TestRunVersionShort(t *testing.T) {
	originalVersion := Version
	defer func() {
		Version = originalVersion
		versionShort = false
	}()

	Version = "2.0.1"
	versionShort = true

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	runVersion(versionCmd, []string{})

	assert.Equal(t, "2.0.1\n", buf.String())
}

func TestBuildCommit(t *testing.T) {
	withRevision := func(rev string) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs", Value: "git"},
				{Key: "vcs.revision", Value: rev},
			}}, true
		}
	}
	noInfo := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		name     string
		stamped  string
		readInfo func() (*debug.BuildInfo, bool)
		want     string
	}{
		{"stamped commit wins", "abc123", withRevision("fffffffffffffffff"), "abc123"},
		{"revision is shortened", "unknown", withRevision("0123456789abcdef0123"), "0123456789ab"},
		{"short revision kept", "", withRevision("beef"), "beef"},
		{"no build info", "unknown", noInfo, "unknown"},
		{"empty revision", "unknown", withRevision(""), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildCommit(tt.stamped, tt.readInfo))
		})
	}
}

func TestVersionShortFlag(t *testing.T) {
	flag := versionCmd.Flags().Lookup("short")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "false", flag.DefValue)
		assert.True(t, strings.Contains(flag.Usage, "version"))
	}
}

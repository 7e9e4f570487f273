package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func makeZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// releaseAssetServer serves the latest-release endpoint plus the archive
// and checksums for a single tag.
func releaseAssetServer(tag, asset string, archive, checksums []byte) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/rsoarez/planista/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		case fmt.Sprintf("/rsoarez/planista/releases/download/%s/%s", tag, asset):
			_, _ = w.Write(archive)
		case fmt.Sprintf("/rsoarez/planista/releases/download/%s/checksums.txt", tag):
			_, _ = w.Write(checksums)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos   string
		goarch string
		want   string
	}{
		{"darwin", "amd64", "planista_Darwin_all.tar.gz"},
		{"darwin", "arm64", "planista_Darwin_all.tar.gz"},
		{"linux", "amd64", "planista_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "planista_Linux_arm64.tar.gz"},
		{"linux", "386", "planista_Linux_i386.tar.gz"},
		{"windows", "amd64", "planista_Windows_x86_64.zip"},
		{"windows", "arm64", "planista_Windows_arm64.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := assetNameFor("freebsd", "amd64")
		assert.Error(t, err)
		_, err = assetNameFor("linux", "mips")
		assert.Error(t, err)
	})
}

func TestParseChecksums(t *testing.T) {
	t.Run("two entries", func(t *testing.T) {
		in := "abc123  planista_Darwin_all.tar.gz\ndef456  planista_Linux_x86_64.tar.gz\n"
		got := parseChecksums([]byte(in))
		assert.Equal(t, map[string]string{
			"planista_Darwin_all.tar.gz":  "abc123",
			"planista_Linux_x86_64.tar.gz": "def456",
		}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, parseChecksums(nil))
	})

	t.Run("skips malformed lines", func(t *testing.T) {
		in := "abc123  good.tar.gz\nnohash\n  \na b c d\nghi789  also.tar.gz\n"
		got := parseChecksums([]byte(in))
		assert.Equal(t, map[string]string{
			"good.tar.gz": "abc123",
			"also.tar.gz": "ghi789",
		}, got)
	})
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release payload")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, hex.EncodeToString(make([]byte, 32)))
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("#!/bin/sh\necho planista")

	t.Run("tar.gz archive", func(t *testing.T) {
		got, err := extractBinary(makeTarGz(t, "planista", binary), "planista_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("zip archive", func(t *testing.T) {
		got, err := extractBinary(makeZip(t, "planista.exe", binary), "planista_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		_, err := extractBinary(makeTarGz(t, "README.md", binary), "planista_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "planista")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new binary bytes")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	binary := []byte("planista v2 binary")
	asset, err := assetName()
	require.NoError(t, err)

	var archive []byte
	if filepath.Ext(asset) == ".zip" {
		archive = makeZip(t, "planista.exe", binary)
	} else {
		archive = makeTarGz(t, "planista", binary)
	}
	sum := sha256.Sum256(archive)
	checksums := []byte(fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset))

	t.Run("replaces the binary and reports every stage", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "planista")
		require.NoError(t, os.WriteFile(execPath, []byte("v1"), 0755))

		server := releaseAssetServer("v2.0.0", asset, archive, checksums)
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("refuses dev builds", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already on latest", func(t *testing.T) {
		server := releaseAssetServer("v1.0.0", asset, archive, checksums)
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("rejects tampered archive", func(t *testing.T) {
		bad := []byte(fmt.Sprintf("%s  %s\n", hex.EncodeToString(make([]byte, 32)), asset))
		server := releaseAssetServer("v2.0.0", asset, archive, bad)
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("archive download fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/rsoarez/planista/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

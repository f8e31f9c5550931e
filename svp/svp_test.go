package svp

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeProject(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const singleDoc = `{"version":7,"name":"Alpha","time":{"meter":[{"index":0,"numerator":4,"denominator":4}],"tempo":[{"position":0,"bpm":120}]},"tracks":[{"name":"Vocal","dispOrder":0,"mainGroup":{"name":"main","notes":[{"onset":0,"duration":1470000,"pitch":60,"lyrics":"la"},{"onset":1470000,"duration":1470000,"pitch":62,"lyrics":"la"}]},"mainRef":{"blickOffset":0,"pitchOffset":0}}]}` + "\x00"

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.svp"), discard())
	assert.Error(t, err)
}

func TestLoadEmptyFileFails(t *testing.T) {
	path := writeProject(t, "empty.svp", "\x00\x00  \n\x00")
	_, err := Load(path, discard())
	assert.ErrorIs(t, err, ErrNoPayload)
}

func TestLoadGarbageOnlyFails(t *testing.T) {
	path := writeProject(t, "garbage.svp", "not json\x00{broken\x00")
	_, err := Load(path, discard())
	assert.ErrorIs(t, err, ErrNoParsableProject)
}

func TestLoadSingleDocument(t *testing.T) {
	path := writeProject(t, "single.svp", singleDoc)
	project, err := Load(path, discard())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Alpha", project.Name)
	assert.Len(project.Tracks, 1)
	assert.Len(project.Parts, 1)
	assert.Len(project.Parts[0].Notes, 2)
}

func TestLoadSkipsCorruptPayload(t *testing.T) {
	path := writeProject(t, "mixed.svp", "{corrupt\x00"+singleDoc)
	project, err := Load(path, discard())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(project.Parts, 1)
}

func TestLoadPicksHighestVersion(t *testing.T) {
	v3 := `{"version":3,"tracks":[{"name":"old"}]}`
	v9 := `{"version":9,"tracks":[{"name":"new"}]}`

	for _, content := range []string{v3 + "\x00" + v9 + "\x00", v9 + "\x00" + v3 + "\x00"} {
		path := writeProject(t, "multi.svp", content)
		project, err := Load(path, discard())

		assert := assert.New(t)
		assert.NoError(err)
		assert.Len(project.Tracks, 1)
		assert.Equal("new", project.Tracks[0].Name)
	}
}

func TestLoadMissingVersionRanksAsZero(t *testing.T) {
	unversioned := `{"tracks":[{"name":"unversioned"}]}`
	v1 := `{"version":1,"tracks":[{"name":"versioned"}]}`
	path := writeProject(t, "rank.svp", unversioned+"\x00"+v1+"\x00")

	project, err := Load(path, discard())
	assert.NoError(t, err)
	assert.Equal(t, "versioned", project.Tracks[0].Name)
}

func TestLoadTitleFromLargestBlob(t *testing.T) {
	// The authoritative (higher-version) document has no name; the larger,
	// lower-version one does.
	authoritative := `{"version":9,"tracks":[{"name":"v"}]}`
	titled := `{"version":1,"name":"From Largest","tracks":[{"name":"v"},{"name":"w"},{"name":"x"}]}`
	path := writeProject(t, "titled.svp", authoritative+"\x00"+titled+"\x00")

	project, err := Load(path, discard())
	assert.NoError(t, err)
	assert.Equal(t, "From Largest", project.Name)
	assert.Len(t, project.Tracks, 1)
}

func TestLoadTitleFallsBackToFileName(t *testing.T) {
	path := writeProject(t, "mysong.svp", `{"version":1,"tracks":[{"name":"v"}]}`+"\x00")

	project, err := Load(path, discard())
	assert.NoError(t, err)
	assert.Equal(t, "mysong", project.Name)
}

func TestLoadRegistersOpeningExpression(t *testing.T) {
	path := writeProject(t, "single.svp", singleDoc)
	project, err := Load(path, discard())

	assert := assert.New(t)
	assert.NoError(err)
	desc, ok := project.Expressions["ope"]
	assert.True(ok)
	assert.Equal(0.0, desc.Min)
	assert.Equal(100.0, desc.Max)
	assert.Equal(100.0, desc.Default)
}

func TestLoadIsIdempotent(t *testing.T) {
	path := writeProject(t, "single.svp", singleDoc)

	first, err := Load(path, discard())
	assert.NoError(t, err)
	second, err := Load(path, discard())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GuglioIsStupid/OpenUtau/cmd"
	"github.com/GuglioIsStupid/OpenUtau/model"
	"github.com/stretchr/testify/assert"
)

const projectBody = `{"version":1,"name":"E2E","time":{"meter":[{"index":0,"numerator":4,"denominator":4}],"tempo":[{"position":0,"bpm":120}]},"tracks":[{"name":"Vocal","mainGroup":{"name":"main","notes":[{"onset":0,"duration":1470000,"pitch":60,"lyrics":"la"}]},"mainRef":{"blickOffset":0,"pitchOffset":0}}]}` + "\x00"

func TestImportEndpointE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(projectBody))
	w := httptest.NewRecorder()
	cmd.HandleImport(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var summary model.ImportSummary
	err := json.Unmarshal(respBody, &summary)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal("E2E", summary.Name)
	assert.Equal(1, summary.Tracks)
	assert.Equal(1, summary.Parts)
	assert.Equal(1, summary.Notes)
}

func TestImportEndpointRejectsGarbageE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader("not a project\x00"))
	w := httptest.NewRecorder()
	cmd.HandleImport(w, req)

	resp := w.Result()
	assert.Equal(t, resp.StatusCode, http.StatusUnprocessableEntity)
}

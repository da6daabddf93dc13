package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSite_Layout(t *testing.T) {
	s := NewSite(t)

	assert.DirExists(t, s.AssetPath(""))
	assert.DirExists(t, s.Config.SiteDir)
	require.NoError(t, s.Config.Validate())
}

func TestSite_WriteAndAssert(t *testing.T) {
	s := NewSite(t)
	s.WriteAsset("talks/slides.pdf", []byte("slides"))
	s.WriteSiteFile("downloads/slides.pdf", []byte("slides"))

	data, err := os.ReadFile(s.AssetPath("talks/slides.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("slides"), data)

	s.AssertFileExists("downloads/slides.pdf").
		AssertFileContent("downloads/slides.pdf", []byte("slides")).
		AssertFileNotExists("downloads/other.pdf")
	assert.Equal(t, []byte("slides"), s.ReadSiteFile("downloads/slides.pdf"))
}

func TestSite_AssertRedirectPage(t *testing.T) {
	s := NewSite(t)
	page := `<meta http-equiv="refresh" content="0;url=/downloads/cv.pdf">` +
		`<script>window.location.href = '/downloads/cv.pdf';</script>` +
		`<a href="/downloads/cv.pdf">x</a>`
	s.WriteSiteFile("cv/index.html", []byte(page))

	s.AssertRedirectPage("/cv/", "cv.pdf")
}

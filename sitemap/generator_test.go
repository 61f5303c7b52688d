package sitemap

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://postzaper.com"

var fixedNow = time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)

type sliceCatalog []string

func (s sliceCatalog) Slugs(ctx context.Context) ([]string, error) { return s, nil }

type failingCatalog struct{}

func (failingCatalog) Slugs(ctx context.Context) ([]string, error) {
	return nil, errors.New("read catalog: permission denied")
}

type decodedSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []struct {
		Loc        string `xml:"loc"`
		LastMod    string `xml:"lastmod"`
		ChangeFreq string `xml:"changefreq"`
		Priority   string `xml:"priority"`
	} `xml:"url"`
}

func decodeFile(t *testing.T, path string) decodedSet {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), xml.Header))
	var set decodedSet
	require.NoError(t, xml.Unmarshal(b, &set))
	return set
}

func newGenerator(t *testing.T, c Catalog) (*Generator, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Generator{
		BaseURL: base,
		Catalog: c,
		Output:  filepath.Join(t.TempDir(), "sitemap.xml"),
		Out:     &out,
		Now:     func() time.Time { return fixedNow },
	}, &out
}

func TestBuildStaticPagesOnly(t *testing.T) {
	entries := Build(base, StaticPages, nil, fixedNow)
	require.Len(t, entries, 5)
	for i, p := range StaticPages {
		assert.Equal(t, base+p.Path, entries[i].Loc)
		assert.Equal(t, p.ChangeFreq, entries[i].ChangeFreq)
		assert.Equal(t, p.Priority, entries[i].Priority)
		assert.Equal(t, "2026-10-17", entries[i].LastMod)
	}
}

func TestBuildTrimsTrailingSlashFromBase(t *testing.T) {
	entries := Build(base+"/", StaticPages, []string{"x"}, fixedNow)
	assert.Equal(t, "https://postzaper.com/", entries[0].Loc)
	assert.Equal(t, "https://postzaper.com/tools", entries[1].Loc)
	assert.Equal(t, "https://postzaper.com/tools/x", entries[5].Loc)
}

func TestBuildToolEntries(t *testing.T) {
	entries := Build(base, StaticPages, []string{"a-b", "c_d", "a-b"}, fixedNow)
	require.Len(t, entries, 8)

	tools := entries[5:]
	assert.Equal(t, base+"/tools/a-b", tools[0].Loc)
	assert.Equal(t, base+"/tools/c_d", tools[1].Loc)
	assert.Equal(t, base+"/tools/a-b", tools[2].Loc)
	for _, e := range tools {
		assert.Equal(t, Monthly, e.ChangeFreq)
		assert.Equal(t, 0.8, e.Priority)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []Entry{{
		Loc: base + "/", LastMod: "2026-10-17", ChangeFreq: Weekly, Priority: 1,
	}}))
	out := buf.String()
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://postzaper.com/</loc>")
	assert.Contains(t, out, "<lastmod>2026-10-17</lastmod>")
	assert.Contains(t, out, "<changefreq>weekly</changefreq>")
	assert.Contains(t, out, "<priority>1.0</priority>")
}

func TestEncodeEscapesLoc(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []Entry{{Loc: base + "/tools/a&b", ChangeFreq: Monthly}}))
	assert.Contains(t, buf.String(), "<loc>https://postzaper.com/tools/a&amp;b</loc>")
}

func TestGeneratorRun(t *testing.T) {
	g, out := newGenerator(t, sliceCatalog{"a-b", "c_d", "a-b"})

	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Slugs)
	assert.Len(t, res.Entries, 8)

	set := decodeFile(t, g.Output)
	assert.Equal(t, Namespace, set.XMLNS)
	require.Len(t, set.URLs, 8)

	var toolLocs []string
	for _, u := range set.URLs {
		if strings.Contains(u.Loc, "/tools/") {
			toolLocs = append(toolLocs, u.Loc)
			assert.Equal(t, "monthly", u.ChangeFreq)
			assert.Equal(t, "0.8", u.Priority)
		}
	}
	assert.Equal(t, []string{base + "/tools/a-b", base + "/tools/c_d", base + "/tools/a-b"}, toolLocs)

	log := out.String()
	assert.Contains(t, log, "Found 3 tool slugs")
	assert.Contains(t, log, "Sitemap generated successfully")
	assert.Contains(t, log, g.Output)
	assert.Contains(t, log, "total URLs: 8")
}

func TestGeneratorZeroSlugs(t *testing.T) {
	g, _ := newGenerator(t, sliceCatalog{})

	_, err := g.Run(context.Background())
	require.NoError(t, err)

	set := decodeFile(t, g.Output)
	require.Len(t, set.URLs, len(StaticPages))
	wantPriority := []string{"1.0", "0.9", "0.7", "0.3", "0.3"}
	for i, p := range StaticPages {
		assert.Equal(t, base+p.Path, set.URLs[i].Loc)
		assert.Equal(t, string(p.ChangeFreq), set.URLs[i].ChangeFreq)
		assert.Equal(t, wantPriority[i], set.URLs[i].Priority)
		assert.Equal(t, "2026-10-17", set.URLs[i].LastMod)
	}
}

func TestGeneratorOverwritesPreviousOutput(t *testing.T) {
	g, _ := newGenerator(t, sliceCatalog{"only"})
	require.NoError(t, os.WriteFile(g.Output, []byte(strings.Repeat("stale ", 5000)), 0o644))

	_, err := g.Run(context.Background())
	require.NoError(t, err)

	set := decodeFile(t, g.Output)
	assert.Len(t, set.URLs, 6)
}

func TestGeneratorCatalogFailureWritesNothing(t *testing.T) {
	g, out := newGenerator(t, failingCatalog{})

	_, err := g.Run(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(g.Output)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
	assert.NotContains(t, out.String(), "successfully")
}

func TestGeneratorCatalogFailureKeepsPreviousFile(t *testing.T) {
	g, _ := newGenerator(t, TextCatalog{Path: filepath.Join(t.TempDir(), "missing.ts")})
	require.NoError(t, os.WriteFile(g.Output, []byte("previous"), 0o644))

	_, err := g.Run(context.Background())
	require.Error(t, err)

	b, readErr := os.ReadFile(g.Output)
	require.NoError(t, readErr)
	assert.Equal(t, "previous", string(b))
}

func TestGeneratorUnwritableOutput(t *testing.T) {
	g, _ := newGenerator(t, sliceCatalog{"a"})
	g.Output = filepath.Join(t.TempDir(), "missing-dir", "sitemap.xml")

	_, err := g.Run(context.Background())
	assert.Error(t, err)
}

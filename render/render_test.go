package render_test

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/soypat/gear"
	"github.com/soypat/gear/geom2"
	"github.com/soypat/gear/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/cmpimg"
)

func basicGear(t testing.TB, kerf float64) *geom2.Geometry {
	t.Helper()
	g, err := gear.NewParams(48, 32, 20).Profile(gear.ProfileParams{Steps: 5, Bore: 0.125, Kerf: kerf})
	require.NoError(t, err)
	return g
}

func TestWriteSVG(t *testing.T) {
	g := basicGear(t, 0)
	var buf bytes.Buffer
	err := render.WriteSVG(&buf, render.SVGConfig{Scale: 500, Margin: 0.2}, render.Layer{Geometry: g, Style: render.DefaultStyle})
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"), "missing xml header")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Equal(t, len(g.Items), strings.Count(out, "<path "), "one path per primitive")
	assert.Contains(t, out, "stroke-width:1;", "stroke width scaled by 500")
	assert.Contains(t, out, "stroke:black;")

	bb, ok := g.BoundsWithMargin(0.2)
	require.True(t, ok)
	want := int(math.Ceil(bb.Size().X * 500))
	m := regexp.MustCompile(`width="(\d+)"`).FindStringSubmatch(out)
	require.Len(t, m, 2)
	width, _ := strconv.Atoi(m[1])
	assert.Equal(t, want, width)
}

func TestWriteSVGLayers(t *testing.T) {
	plain, cut := basicGear(t, 0), basicGear(t, 1./128)
	var buf bytes.Buffer
	err := render.WriteSVG(&buf, render.SVGConfig{Scale: 500, Margin: 0.2},
		render.Layer{Geometry: plain, Style: render.Style{Stroke: "magenta", StrokeWidth: 0.002, Fill: "transparent"}},
		render.Layer{Geometry: cut, Style: render.Style{Stroke: "black", StrokeWidth: 0.002, Fill: "transparent"}},
	)
	require.NoError(t, err)
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "<g "))
	assert.Equal(t, len(plain.Items)+len(cut.Items), strings.Count(out, "<path "))
	assert.Less(t, strings.Index(out, "magenta"), strings.Index(out, "stroke:black"), "layers out of order")
}

func TestWriteSVGArcFlags(t *testing.T) {
	var g geom2.Geometry
	g.Add(geom2.Arc{Radius: 1, Start: 0, End: 3})
	g.Add(geom2.Arc{Radius: 1, Start: 0, End: 4})
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, render.DefaultSVGConfig(), render.Layer{Geometry: &g}))
	out := buf.String()
	assert.Contains(t, out, " 0 0 0 ", "small arc flags")
	assert.Contains(t, out, " 0 1 0 ", "large arc flags")
}

func TestWriteSVGFullTurnArc(t *testing.T) {
	var g geom2.Geometry
	g.Add(geom2.Arc{Radius: 1, Start: 0.5, End: 0.5 + 2*math.Pi})
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, render.DefaultSVGConfig(), render.Layer{Geometry: &g}))
	m := regexp.MustCompile(`d="([^"]*)"`).FindStringSubmatch(buf.String())
	require.Len(t, m, 2)
	assert.Equal(t, 2, strings.Count(m[1], "A"), "full turn drawn as two halves: %s", m[1])
}

func TestWriteSVGErrors(t *testing.T) {
	var buf bytes.Buffer
	err := render.WriteSVG(&buf, render.DefaultSVGConfig(), render.Layer{Geometry: &geom2.Geometry{}})
	assert.Error(t, err)
	err = render.WriteSVG(&buf, render.SVGConfig{}, render.Layer{Geometry: basicGear(t, 0)})
	assert.Error(t, err, "zero scale")
	err = render.WriteSVG(&buf, render.DefaultSVGConfig(), render.Layer{Geometry: basicGear(t, 0)}, render.Layer{})
	assert.Error(t, err, "nil geometry")
}

func TestCreateSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gear.svg")
	require.NoError(t, render.CreateSVG(path, basicGear(t, 0), render.DefaultSVGConfig()))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "</svg>")
}

func TestCreateDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gear.dxf")
	g := basicGear(t, 0)
	require.NoError(t, render.CreateDXF(path, g))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "LWPOLYLINE")
	assert.Contains(t, out, "ARC")
	assert.Contains(t, out, "CIRCLE")
	assert.Contains(t, out, render.DefaultDXFLayer)

	err = render.CreateDXF(filepath.Join(t.TempDir(), "empty.dxf"), &geom2.Geometry{})
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	g := basicGear(t, 0)
	cfg := render.DefaultPNGConfig()
	cfg.Size = 128
	var a, b bytes.Buffer
	require.NoError(t, render.WritePNG(&a, g, cfg))
	require.NoError(t, render.WritePNG(&b, g, cfg))

	img, err := png.Decode(bytes.NewReader(a.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())

	equal, err := cmpimg.Equal("png", a.Bytes(), b.Bytes())
	require.NoError(t, err)
	assert.True(t, equal, "rendering is not deterministic")

	var other bytes.Buffer
	var circle geom2.Geometry
	circle.Add(geom2.Circle{Center: r2.Vec{X: 1}, Radius: 0.5})
	require.NoError(t, render.WritePNG(&other, &circle, cfg))
	equal, err = cmpimg.Equal("png", a.Bytes(), other.Bytes())
	require.NoError(t, err)
	assert.False(t, equal, "different geometries rendered the same")
}

func TestWritePNGErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, render.WritePNG(&buf, &geom2.Geometry{}, render.DefaultPNGConfig()))
	assert.Error(t, render.WritePNG(&buf, basicGear(t, 0), render.PNGConfig{}))
}

package hlsllib_test

import (
	"io/fs"
	"testing"

	"github.com/soypat/shaderlab/slbuild"
	"github.com/soypat/shaderlab/slbuild/hlsllib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippetsHaveIdentity(t *testing.T) {
	for name, src := range map[string]string{
		"Input":   hlsllib.SurfaceInput(),
		"appdata": hlsllib.AppData(),
		"v2f":     hlsllib.V2F(),
	} {
		got, err := slbuild.StructIdentity(src)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}
	for sig, src := range map[string]string{
		"void surf(Input IN, inout SurfaceOutput o)": hlsllib.SurfLambert(),
		"v2f vert(appdata v)":                        hlsllib.VertPassthrough(),
		"fixed4 frag(v2f i)":                         hlsllib.FragUnlit(),
	} {
		got, _, err := slbuild.FunctionSignature(src)
		require.NoError(t, err)
		assert.Equal(t, sig, got)
	}
}

func TestFSIsASCII(t *testing.T) {
	names, err := fs.Glob(hlsllib.FS, "*.hlsl")
	require.NoError(t, err)
	assert.Len(t, names, 6)
	for _, name := range names {
		_, err := slbuild.ReadASCII(hlsllib.FS, name)
		assert.NoError(t, err, name)
	}
}

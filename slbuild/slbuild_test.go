package slbuild_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/soypat/shaderlab/slbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructIdentity(t *testing.T) {
	for _, test := range []struct {
		code    string
		want    string
		wantErr bool
	}{
		{code: "struct Input\n{\n\tfloat2 uv_MainTex;\n};", want: "Input"},
		{code: "struct v2f { float4 pos : SV_POSITION; };", want: "v2f"},
		{code: "struct   _Spaced{};", want: "_Spaced"},
		{code: " struct Input {};", wantErr: true},
		{code: "float4 frag(v2f i) { return 0; }", wantErr: true},
		{code: "struct {};", wantErr: true},
		{code: "", wantErr: true},
	} {
		got, err := slbuild.StructIdentity(test.code)
		if test.wantErr {
			assert.ErrorIs(t, err, slbuild.ErrNoDeclaration, "code %q", test.code)
			assert.ErrorIs(t, err, slbuild.ErrInvalidArgument)
			continue
		}
		require.NoError(t, err, "code %q", test.code)
		assert.Equal(t, test.want, got)
	}
}

func TestFunctionSignature(t *testing.T) {
	for _, test := range []struct {
		code     string
		wantSig  string
		wantBody string
		wantErr  bool
	}{
		{
			code:     "void surf(Input IN, inout SurfaceOutput o)\n{\n\to.Albedo = 1;\n}",
			wantSig:  "void surf(Input IN, inout SurfaceOutput o)",
			wantBody: "\n{\n\to.Albedo = 1;\n}",
		},
		{
			code:     "float4 frag(v2f i) : SV_Target { return 0; }",
			wantSig:  "float4 frag(v2f i)",
			wantBody: " : SV_Target { return 0; }",
		},
		{code: "fixed4 noargs () {}", wantSig: "fixed4 noargs ()", wantBody: " {}"},
		{code: "inline half3 F (half a,half b ,  half c) {}", wantSig: "inline half3 F (half a,half b ,  half c)", wantBody: " {}"},
		{code: " void surf(Input IN) {}", wantErr: true},
		{code: "\tvoid surf(Input IN) {}", wantErr: true},
		{code: "void surf {}", wantErr: true},
		{code: "struct Input { float2 uv; };", wantErr: true},
		{code: "", wantErr: true},
	} {
		sig, body, err := slbuild.FunctionSignature(test.code)
		if test.wantErr {
			assert.ErrorIs(t, err, slbuild.ErrNoDeclaration, "code %q", test.code)
			continue
		}
		require.NoError(t, err, "code %q", test.code)
		assert.Equal(t, test.wantSig, sig)
		assert.Equal(t, test.wantBody, body)
		assert.Equal(t, test.code, sig+body)
	}
}

func TestAppendReflow(t *testing.T) {
	for _, test := range []struct {
		code, want string
	}{
		{code: "", want: ""},
		{code: "one line", want: "one line"},
		{code: "a\nb", want: "a\n\t\tb"},
		{code: "struct S\n{\n\tfloat x;\n};", want: "struct S\n\t\t{\n\t\t\tfloat x;\n\t\t};"},
		{code: "trailing\n", want: "trailing\n\t\t"},
		{code: "\n\n", want: "\n\t\t\n\t\t"},
	} {
		got := string(slbuild.AppendReflow(nil, test.code, 2))
		assert.Equal(t, test.want, got, "reflow %q", test.code)
	}
}

func TestAppendFloat(t *testing.T) {
	for _, test := range []struct {
		v    float32
		want string
	}{
		{0.5, "0.5"},
		{1, "1"},
		{0, "0"},
		{-60000, "-60000"},
		{1.999, "1.999"},
		{0.1, "0.1"},
	} {
		assert.Equal(t, test.want, string(slbuild.AppendFloat(nil, test.v)))
	}
	assert.Equal(t, "1, 0.5, 0, 1", string(slbuild.AppendFloats(nil, ',', 1, 0.5, 0, 1)))
}

func TestAppendLines(t *testing.T) {
	b := slbuild.AppendPragma(nil, 2, "vertex vert")
	b = slbuild.AppendDeclaration(b, 2, "fixed", "_Glow")
	b = slbuild.AppendTag(b, "RenderType", "Opaque")
	assert.Equal(t, "\t\t#pragma vertex vert\n\t\tfixed _Glow;\n\"RenderType\" = \"Opaque\" ", string(b))
}

func TestReadASCII(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.hlsl":   {Data: []byte("struct A\r\n{\r\n};")},
		"utf8.hlsl": {Data: []byte("// héllo\nstruct A {};")},
	}
	got, err := slbuild.ReadASCII(fsys, "ok.hlsl")
	require.NoError(t, err)
	assert.Equal(t, "struct A\n{\n};", got)

	_, err = slbuild.ReadASCII(fsys, "utf8.hlsl")
	assert.ErrorIs(t, err, slbuild.ErrNonASCII)
	assert.True(t, strings.Contains(err.Error(), "utf8.hlsl"))

	_, err = slbuild.ReadASCII(fsys, "missing.hlsl")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, slbuild.ErrInvalidArgument))
}

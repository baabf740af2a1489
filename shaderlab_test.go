package shaderlab_test

import (
	"maps"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/soypat/shaderlab"
	"github.com/soypat/shaderlab/slbuild/hlsllib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputStruct = "struct Input\n{\n\tfloat2 uv_MainTex;\n};"

func TestStructRegistry(t *testing.T) {
	sh := shaderlab.New("S", shaderlab.LegacyProgram).AddStruct(inputStruct)
	require.NoError(t, sh.Err())
	require.True(t, sh.HasStruct("Input"))

	sh.AddStruct("struct Input { float3 worldPos; };")
	require.ErrorIs(t, sh.Err(), shaderlab.ErrDuplicate)
	structs := maps.Collect(sh.Structs())
	assert.Equal(t, inputStruct, structs["Input"])

	sh = shaderlab.New("S", shaderlab.LegacyProgram).
		AddStruct(inputStruct).
		AddStruct("struct Output { float4 color; };")
	override := "struct Input { float3 worldPos; };"
	sh.OverrideStruct(override)
	require.NoError(t, sh.Err())
	var names []string
	for name, code := range sh.Structs() {
		names = append(names, name)
		if name == "Input" {
			assert.Equal(t, override, code)
		}
	}
	assert.Equal(t, []string{"Input", "Output"}, names)

	sh.OverrideStruct("struct Missing { int a; };")
	assert.ErrorIs(t, sh.Err(), shaderlab.ErrNotFound)
	assert.False(t, sh.HasStruct("Missing"))
}

func TestStructInvalid(t *testing.T) {
	for _, code := range []string{"", "Input { };", "  struct Input {};", "structInput {};", "// struct Input"} {
		sh := shaderlab.New("S", shaderlab.LegacyProgram).AddStruct(code)
		assert.ErrorIs(t, sh.Err(), shaderlab.ErrNoDeclaration, code)
		assert.Empty(t, maps.Collect(sh.Structs()))
	}
}

func TestFunctionRegistry(t *testing.T) {
	const sig = "void surf(Input IN, inout SurfaceOutput o)"
	sh := shaderlab.New("F", shaderlab.ModernProgram).AddFunction(surfCode)
	require.NoError(t, sh.Err())
	require.True(t, sh.HasFunction(sig))

	sh.AddFunction(sig + "\n{\n}")
	require.ErrorIs(t, sh.Err(), shaderlab.ErrDuplicate)

	sh = shaderlab.New("F", shaderlab.ModernProgram).
		AddFunction("float a()\n{ return 1; }").
		AddFunction(surfCode)
	sh.OverrideFunction(sig + "\n{\n\to.Albedo = 0;\n}")
	require.NoError(t, sh.Err())
	var sigs []string
	for s, body := range sh.Functions() {
		sigs = append(sigs, s)
		if s == sig {
			assert.Equal(t, "\n{\n\to.Albedo = 0;\n}", body)
		}
	}
	assert.Equal(t, []string{sig, "float a()"}, sigs)

	sh.OverrideFunction("float missing()\n{}")
	assert.ErrorIs(t, sh.Err(), shaderlab.ErrNotFound)
}

func TestFunctionInvalid(t *testing.T) {
	for _, code := range []string{"", "not a function", "  void f()", "void f(", "{ return; }"} {
		sh := shaderlab.New("F", shaderlab.ModernProgram).
			AddFunction("float a()\n{ return 1; }").
			AddFunction(code)
		assert.ErrorIs(t, sh.Err(), shaderlab.ErrNoDeclaration, code)
		sigs := slices.Collect(maps.Keys(maps.Collect(sh.Functions())))
		assert.Equal(t, []string{"float a()"}, sigs, "registry must be untouched")
	}
}

func TestInsertFunctionRange(t *testing.T) {
	sh := shaderlab.New("F", shaderlab.ModernProgram).InsertFunction(1, "float a()")
	assert.ErrorIs(t, sh.Err(), shaderlab.ErrIndexRange)
	sh = shaderlab.New("F", shaderlab.ModernProgram).InsertFunction(-1, "float a()")
	assert.ErrorIs(t, sh.Err(), shaderlab.ErrIndexRange)
	sh = shaderlab.New("F", shaderlab.ModernProgram).InsertFunction(0, "float a()")
	assert.NoError(t, sh.Err())
}

func TestTags(t *testing.T) {
	opaque := shaderlab.Tag{Key: "RenderType", Value: "Opaque"}
	queue := shaderlab.Tag{Key: "Queue", Value: "Geometry"}
	sh := shaderlab.New("T", shaderlab.LegacyProgram).AddTags(opaque, queue)
	require.NoError(t, sh.Err())
	assert.Equal(t, []shaderlab.Tag{opaque, queue}, sh.Tags())

	sh.AddTags(shaderlab.Tag{Key: "RenderType", Value: "Transparent"})
	assert.ErrorIs(t, sh.Err(), shaderlab.ErrDuplicate)
	assert.Equal(t, []shaderlab.Tag{opaque, queue}, sh.Tags())

	sh = shaderlab.New("T", shaderlab.LegacyProgram).AddTags(opaque, opaque)
	assert.ErrorIs(t, sh.Err(), shaderlab.ErrDuplicate)
	assert.Empty(t, sh.Tags())

	sh = shaderlab.New("T", shaderlab.LegacyProgram).AddTags(shaderlab.Tag{Value: "x"})
	assert.ErrorIs(t, sh.Err(), shaderlab.ErrInvalidArgument)

	transparent := shaderlab.Tag{Key: "RenderType", Value: "Transparent"}
	sh = shaderlab.New("T", shaderlab.LegacyProgram).AddTags(opaque, queue).SetTags(transparent)
	require.NoError(t, sh.Err())
	assert.Equal(t, []shaderlab.Tag{transparent}, sh.Tags())
	sh.ClearTags()
	assert.Empty(t, sh.Tags())
}

func TestPragmas(t *testing.T) {
	sh := shaderlab.New("P", shaderlab.LegacyProgram).
		AddPragmaticDirectives("surface surf", "target 3.0").
		AddToPragmaticDirectiveFromEnd(2, "Lambert").
		AddToPragmaticDirective("noshadow")
	require.NoError(t, sh.Err())
	assert.Equal(t, []string{"surface surf Lambert", "target 3.0 noshadow"}, sh.PragmaticDirectives())

	sh.SetPragmaticDirective("target 4.5").SetPragmaticDirectiveFromEnd(2, "vertex vert")
	require.NoError(t, sh.Err())
	assert.Equal(t, []string{"vertex vert", "target 4.5"}, sh.PragmaticDirectives())

	for _, i := range []int{0, 3, -1} {
		bad := shaderlab.New("P", shaderlab.LegacyProgram).
			AddPragmaticDirectives("surface surf", "target 3.0").
			SetPragmaticDirectiveFromEnd(i, "x")
		assert.ErrorIs(t, bad.Err(), shaderlab.ErrIndexRange, "index %d", i)
		assert.Equal(t, []string{"surface surf", "target 3.0"}, bad.PragmaticDirectives())
	}
	empty := shaderlab.New("P", shaderlab.LegacyProgram).AddToPragmaticDirective("x")
	assert.ErrorIs(t, empty.Err(), shaderlab.ErrIndexRange)
}

func TestAddPropertiesAtomic(t *testing.T) {
	sh := shaderlab.New("P", shaderlab.LegacyProgram).AddProperties(
		shaderlab.NewProperty("_A", "A", shaderlab.Int(1)),
		shaderlab.NewProperty("_B", "B", nil),
	)
	assert.ErrorIs(t, sh.Err(), shaderlab.ErrInvalidArgument)
	assert.Empty(t, sh.Properties())

	sh = shaderlab.New("P", shaderlab.LegacyProgram).AddProperties(
		shaderlab.NewProperty("_A", "A", shaderlab.Int(1)),
		shaderlab.NewProperty("_A", "A again", shaderlab.Int(2)),
	)
	require.NoError(t, sh.Err())
	assert.Len(t, sh.Properties(), 2)
}

func TestCommandsNotEmitted(t *testing.T) {
	sh := shaderlab.New("C", shaderlab.LegacyProgram).AddCommands("Cull Off", "ZWrite Off")
	assert.Equal(t, []string{"Cull Off", "ZWrite Off"}, sh.Commands())
	src, err := sh.Serialize()
	require.NoError(t, err)
	assert.NotContains(t, src, "Cull Off")
}

func TestInheritIndependent(t *testing.T) {
	base := shaderlab.New("Base", shaderlab.ModernProgram).
		AddProperties(shaderlab.NewProperty("_Glow", "Glow", shaderlab.Float(0.5))).
		AddCommands("Cull Back").
		AddTags(shaderlab.Tag{Key: "RenderType", Value: "Opaque"}).
		AddPragmaticDirectives("vertex vert").
		AddStruct(inputStruct).
		AddFunction(surfCode).
		SetFallback("Diffuse")
	require.NoError(t, base.Err())
	baseSrc, err := base.Serialize()
	require.NoError(t, err)

	child := base.Inherit("Child")
	assert.Equal(t, "Child", child.Name)
	assert.Equal(t, shaderlab.ModernProgram, child.Program)
	assert.Equal(t, "Diffuse", child.Fallback())

	child.AddProperties(shaderlab.NewProperty("_Extra", "Extra", shaderlab.Int(1))).
		AddCommands("ZWrite Off").
		ClearTags().
		AddTags(shaderlab.Tag{Key: "Queue", Value: "Transparent"}).
		SetPragmaticDirective("vertex vert2").
		AddPragmaticDirectives("fragment frag").
		OverrideStruct("struct Input { float3 worldPos; };").
		AddStruct("struct v2f { float4 pos : SV_POSITION; };").
		OverrideFunction("void surf(Input IN, inout SurfaceOutput o)\n{\n}").
		AddFunction("float a()").
		SetFallback("")
	require.NoError(t, child.Err())

	gotBase, err := base.Serialize()
	require.NoError(t, err)
	assert.Equal(t, baseSrc, gotBase, "mutating the child must not affect the base")
	assert.Len(t, base.Properties(), 1)
	assert.Equal(t, []string{"Cull Back"}, base.Commands())
	assert.Equal(t, []shaderlab.Tag{{Key: "RenderType", Value: "Opaque"}}, base.Tags())
	assert.Equal(t, []string{"vertex vert"}, base.PragmaticDirectives())
	assert.False(t, base.HasStruct("v2f"))
	assert.False(t, base.HasFunction("float a()"))

	base.AddPragmaticDirectives("target 5.0")
	assert.Equal(t, []string{"vertex vert2", "fragment frag"}, child.PragmaticDirectives())
	assert.Empty(t, child.Fallback())
}

func TestInheritCopiesErrors(t *testing.T) {
	base := shaderlab.New("Base", shaderlab.ModernProgram).AddStruct("bad")
	child := base.Inherit("Child")
	assert.ErrorIs(t, child.Err(), shaderlab.ErrNoDeclaration)
	child.AddFunction("bad")
	assert.Len(t, unwrapJoined(base.Err()), 1)
	assert.Len(t, unwrapJoined(child.Err()), 2)
}

func unwrapJoined(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	return joined.Unwrap()
}

func TestIncludeFS(t *testing.T) {
	fsys := fstest.MapFS{
		"input.hlsl":   {Data: []byte("struct Input\r\n{\r\n\tfloat2 uv;\r\n};")},
		"input2.hlsl":  {Data: []byte("struct Input { float3 n; };")},
		"surf.hlsl":    {Data: []byte(surfCode)},
		"unicode.hlsl": {Data: []byte("struct Ünput {};")},
	}
	sh := shaderlab.New("I", shaderlab.LegacyProgram).
		AddStructFS(fsys, "input.hlsl").
		AddFunctionFS(fsys, "surf.hlsl")
	require.NoError(t, sh.Err())
	structs := maps.Collect(sh.Structs())
	assert.Equal(t, "struct Input\n{\n\tfloat2 uv;\n};", structs["Input"])
	assert.True(t, sh.HasFunction("void surf(Input IN, inout SurfaceOutput o)"))

	sh.OverrideStructFS(fsys, "input2.hlsl").OverrideFunctionFS(fsys, "surf.hlsl")
	require.NoError(t, sh.Err())
	assert.Equal(t, "struct Input { float3 n; };", maps.Collect(sh.Structs())["Input"])

	sh.AddStructFS(fsys, "unicode.hlsl")
	assert.ErrorIs(t, sh.Err(), shaderlab.ErrNonASCII)

	missing := shaderlab.New("I", shaderlab.LegacyProgram).InsertFunctionFS(fsys, 0, "missing.hlsl")
	assert.Error(t, missing.Err())
	assert.Empty(t, maps.Collect(missing.Functions()))
}

func TestIncludeLibrary(t *testing.T) {
	sh := shaderlab.New("Lib", shaderlab.LegacyProgram).
		AddStructFS(hlsllib.FS, "input_uv.hlsl").
		AddFunctionFS(hlsllib.FS, "surf_lambert.hlsl")
	require.NoError(t, sh.Err())
	assert.True(t, sh.HasStruct("Input"))
	assert.True(t, sh.HasFunction("void surf(Input IN, inout SurfaceOutput o)"))
}

func TestParseProgramKind(t *testing.T) {
	for s, want := range map[string]shaderlab.ProgramKind{
		"cg": shaderlab.LegacyProgram, "CGPROGRAM": shaderlab.LegacyProgram,
		"hlsl": shaderlab.ModernProgram, "HLSLProgram": shaderlab.ModernProgram,
	} {
		got, err := shaderlab.ParseProgramKind(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := shaderlab.ParseProgramKind("glsl")
	assert.ErrorIs(t, err, shaderlab.ErrInvalidArgument)
	assert.Equal(t, "hlsl", shaderlab.ModernProgram.String())
}

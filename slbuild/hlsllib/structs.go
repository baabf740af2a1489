package hlsllib

import "embed"

// FS holds every snippet of the library by file name. It is usable as an
// include root for the shaderlab *FS builder methods.
//
//go:embed *.hlsl
var FS embed.FS

//go:embed input_uv.hlsl
var inputUVSrc string

// SurfaceInput is the surface shader input struct carrying the main texture UV:
//
//	struct Input { float2 uv_MainTex; };
func SurfaceInput() string { return inputUVSrc }

//go:embed appdata.hlsl
var appdataSrc string

// AppData is the vertex stage input with position and a single UV channel:
//
//	struct appdata { float4 vertex : POSITION; float2 uv : TEXCOORD0; };
func AppData() string { return appdataSrc }

//go:embed v2f.hlsl
var v2fSrc string

// V2F is the vertex to fragment interpolator:
//
//	struct v2f { float2 uv : TEXCOORD0; float4 vertex : SV_POSITION; };
func V2F() string { return v2fSrc }

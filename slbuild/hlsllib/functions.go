package hlsllib

import _ "embed"

//go:embed surf_lambert.hlsl
var surfLambertSrc string

// SurfLambert is a surface function writing the _MainTex sample to albedo and alpha:
//
//	void surf(Input IN, inout SurfaceOutput o)
func SurfLambert() string { return surfLambertSrc }

//go:embed vert_passthrough.hlsl
var vertSrc string

// VertPassthrough transforms object space vertices to clip space and forwards UVs:
//
//	v2f vert(appdata v)
func VertPassthrough() string { return vertSrc }

//go:embed frag_unlit.hlsl
var fragUnlitSrc string

// FragUnlit returns the _MainTex sample:
//
//	fixed4 frag(v2f i) : SV_Target
func FragUnlit() string { return fragUnlitSrc }

package glback

const (
	// BlitVertex maps pixel coordinates with a top-left origin into clip
	// space. Uniform `area` is the (width, height) of the draw area.
	BlitVertex = `
	#version 330
	uniform vec2 area;
	layout(location = 0) in vec2 position_in;
	layout(location = 1) in vec2 tex_coords_in;
	out vec2 tex_coords;
	void main() {
		vec2 glSpace = vec2(2.0, -2.0) * (position_in / area) + vec2(-1.0, 1.0);
		gl_Position = vec4(glSpace, 0.0, 1.0);
		tex_coords = tex_coords_in;
	}`

	// BlitFragment samples the bound texture modulated by `tint`.
	BlitFragment = `
	#version 330
	uniform sampler2D frag_tex;
	uniform vec4 tint;
	in vec2 tex_coords;
	out vec4 frag_color;
	void main() {
		frag_color = texture(frag_tex, tex_coords) * tint;
	}`

	// GlyphVertex maps pixel coordinates with a top-left origin into clip
	// space. Input `tex_pixels` is the (x, y) of the vertex in the glyph
	// atlas starting at (left, top); uniform `tex_size` is the atlas size.
	GlyphVertex = `
	#version 330
	uniform vec2 tex_size;
	uniform vec2 area;
	layout(location = 0) in vec2 position_in;
	layout(location = 1) in vec2 tex_pixels;
	out vec2 tex_coords;
	void main() {
		vec2 glSpace = vec2(2.0, -2.0) * (position_in / area) + vec2(-1.0, 1.0);
		gl_Position = vec4(glSpace, 0.0, 1.0);
		tex_coords = vec2(tex_pixels.x / tex_size.x, tex_pixels.y / tex_size.y);
	}`

	// GlyphFragment colors the glyph coverage stored in the atlas red
	// channel with `text_color`.
	GlyphFragment = `
	#version 330
	uniform sampler2D frag_tex;
	uniform vec4 text_color;
	in vec2 tex_coords;
	out vec4 frag_color;
	void main() {
		frag_color = vec4(text_color.xyz, texture(frag_tex, tex_coords).r * text_color.w);
	}`
)

// Package sink paints connections into output artifacts.
//
//   - [RenderSVG]: an SVG document, one element per draw call
//   - [RenderPNG]: a raster image drawn with fogleman/gg
//
// Both accept a frame rectangle in scene coordinates; the frame's top-left
// corner maps to the image origin.
package sink

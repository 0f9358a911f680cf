// Package report renders solver results for people and for tools.
//
//   - RenderTable: aligned comparison table (Algorithm, Steps, Nodes
//     Expanded, Time in seconds rounded to 6 decimals).
//   - RenderJSON: the same rows plus each path, as indented JSON.
//   - RenderBars: horizontal bar chart of nodes expanded per algorithm.
//   - RenderOverlay: the maze as ASCII with the path drawn over it.
//   - RenderPNG: the maze as a PNG image with the path drawn over it.
//
// Renderers only write to the given io.Writer and never modify their inputs.
package report

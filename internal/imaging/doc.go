// Package imaging connects colorkit to pixels.
//
// It renders color strings as PNG swatches and reads colors back out of image
// files, so MCP clients can see a derived color and feed real pixels into the
// colorkit transforms.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X growing
// rightward and Y growing downward.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. RenderSwatch and SampleColor hold no
// state and may be called concurrently.
//
// # Alpha
//
// Swatches are always opaque; there is no compositing. SampleColor reports a
// pixel's alpha next to its un-premultiplied RGB.
package imaging

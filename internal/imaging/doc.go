// Package imaging loads images from disk and turns them into the pixel data
// the shape recognizer works on.
//
// The package decodes PNG, JPEG, GIF, BMP, TIFF and WebP files, caches the
// decoded images, converts them into an immutable PixelGrid of 8-bit
// non-premultiplied RGBA values, samples individual colors and renders
// annotated copies of an image for visual inspection.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// A PixelGrid always starts at (0,0) regardless of the bounds of the image it
// was built from.
//
// # Foreground
//
// A pixel is foreground only when it is exactly opaque black (0,0,0,255).
// There is no threshold: dark gray, translucent black and anti-aliased edge
// pixels are all background.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. A PixelGrid is never
// modified after construction and may be shared freely between goroutines.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - File I/O errors during image loading
//   - Unsupported or corrupt image data
//   - Encoding errors during image output
package imaging

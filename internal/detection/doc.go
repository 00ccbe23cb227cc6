// Package detection recognizes a single black shape on a white background.
//
// Recognition is a two-step pipeline:
//
//  1. Border points: one row-major scan of the grid finds the rightmost,
//     leftmost, bottommost and topmost foreground pixels (FindBorderPoints).
//  2. Classification: a fixed decision tree over those four points decides
//     between triangle, circle, square and rectangle (Classify).
//
// # Decision Tree
//
// The rules are evaluated in order and the first match wins:
//
//   - Two border points coincide: the shape has at most three corners and is
//     reported as a Triangle with its measured side and two base angles.
//   - The boundary between the rightmost and the bottommost point is not a
//     straight edge of the shape (see StraightEdge): Circle, with a radius of
//     half the leftmost-to-rightmost distance.
//   - Both diagonals have the same length: Square if the two sides adjacent
//     to the rightmost point match, Rectangle otherwise.
//   - Anything else is Unrecognized.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// # Limitations
//
// The recognizer expects exactly one solid shape with crisp edges. Only pixels
// that are exactly opaque black count as the shape. Rotated rectangles,
// multiple shapes, noise and anti-aliasing are out of scope.
package detection

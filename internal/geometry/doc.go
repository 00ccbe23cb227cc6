// Package geometry provides the integer point type and the small set of
// measurements the shape classifier is built on: Euclidean distance, the
// angle between two edges sharing a vertex, and an integer line walk.
//
// # Coordinate System
//
// Points use the image convention: (0,0) is the top-left pixel, X increases
// rightward and Y increases downward. All functions are pure; they never
// modify their arguments.
package geometry

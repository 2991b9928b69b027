// Package model provides geometric types shared across the module.
//
// [Rect] is the page-space rectangle used for the five page boxes
// (MediaBox, CropBox, TrimBox, BleedBox, ArtBox). A Rect is described
// by its lower-left origin plus width and height, in unrotated page
// units.
//
// Rectangles are persisted as four-element numeric arrays of the form
// [left, bottom, right, top]. [RectFromArray] and [Rect.ToArray]
// convert between the two shapes at the storage boundary, normalizing
// coordinates so that width and height are never negative.
package model

// Package convert implements the image conversion routine.
//
// A conversion decodes one source image, resamples it to the requested square
// sizes with a Lanczos filter and writes a single output file: a multi-frame
// container for ICO and ICNS, or one image for PNG, JPEG and TIFF. Every call is
// recorded as a model.ConversionTask in an in-memory history.
package convert

package onnx

import (
	"image"

	"github.com/nfnt/resize"
)

// preprocess converts a decoded image into the model input tensor: a fixed
// size x size resize ignoring aspect ratio, then an NHWC float32 layout with
// every channel scaled to [-1, 1] via (x/127.5)-1. This is the MobileNetV2
// training-time preprocessing; any other normalization silently skews the
// output confidences.
func preprocess(img image.Image, size int) []float32 {
	resized := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)

	data := make([]float32, size*size*3)
	idx := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			// RGBA returns 16-bit channels; shift down to 8-bit first.
			data[idx] = float32(r>>8)/127.5 - 1
			data[idx+1] = float32(g>>8)/127.5 - 1
			data[idx+2] = float32(b>>8)/127.5 - 1
			idx += 3
		}
	}
	return data
}

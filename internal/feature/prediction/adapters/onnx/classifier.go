// Package onnx runs the breed classification model through ONNX Runtime.
package onnx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"breed_backend/internal/feature/prediction/usecase"
)

// Metadata is the sidecar JSON written next to the exported model artifact.
// Shapes include the batch dimension, e.g. input [1 224 224 3], output [1 N].
type Metadata struct {
	InputShape  []int64 `json:"input_shape"`
	OutputShape []int64 `json:"output_shape"`
	ImageSize   int     `json:"image_size"`
}

// Classifier owns an ONNX Runtime session over the trained MobileNetV2
// breed model. Construction either succeeds completely or the classifier
// stays unavailable for the process lifetime; there is no reload.
type Classifier struct {
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	imageSize    int

	// The session reuses its input/output tensors, so inference runs
	// are serialized.
	mu sync.Mutex
}

// Classifier implements usecase.Classifier (compile-time check).
var _ usecase.Classifier = (*Classifier)(nil)

// NewClassifier loads the model artifact and its metadata and verifies the
// output width against the catalog label count. A mismatch would otherwise
// map probabilities to the wrong breed names without any error.
func NewClassifier(modelPath, metadataPath string, numClasses int) (*Classifier, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	metaFile, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model metadata: %w", err)
	}

	var metadata Metadata
	if err := json.Unmarshal(metaFile, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse model metadata: %w", err)
	}
	if len(metadata.OutputShape) == 0 || metadata.ImageSize <= 0 {
		return nil, fmt.Errorf("model metadata is incomplete: %+v", metadata)
	}

	outputWidth := int(metadata.OutputShape[len(metadata.OutputShape)-1])
	if outputWidth != numClasses {
		return nil, fmt.Errorf("model outputs %d classes but catalog has %d labels", outputWidth, numClasses)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(metadata.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(metadata.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &Classifier{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
		imageSize:    metadata.ImageSize,
	}, nil
}

// Probabilities decodes the image, preprocesses it to the model input
// contract and runs one forward pass. The returned slice is a copy; the
// underlying output tensor is reused across calls.
func (c *Classifier) Probabilities(ctx context.Context, imageData []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidImage, err)
	}

	input := preprocess(img, c.imageSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	copy(c.inputTensor.GetData(), input)
	if err := c.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	output := c.outputTensor.GetData()
	probs := make([]float32, len(output))
	copy(probs, output)
	return probs, nil
}

// Close releases the session and its tensors.
func (c *Classifier) Close() {
	if c.inputTensor != nil {
		c.inputTensor.Destroy()
	}
	if c.outputTensor != nil {
		c.outputTensor.Destroy()
	}
	if c.session != nil {
		c.session.Destroy()
	}
	ort.DestroyEnvironment()
}

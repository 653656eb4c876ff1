// Package neural implements ports.Generator as a single-layer sigmoid
// network trained by stochastic gradient descent. It is deliberately
// small: the feature space is the session vocabulary (hundreds of tokens)
// and the training set is the pair store, so a dense layer retrained on
// every mutation is cheap and fully deterministic.
package neural

import (
	"encoding/json"
	"fmt"
	"math"
)

// Training constants. Zero weight init plus a fixed epoch count keeps
// training deterministic across runs, which the weights cache relies on.
const (
	epochs       = 200
	learningRate = 0.5
)

// Network is a dense in->out layer with sigmoid activation.
type Network struct {
	in      int
	out     int
	weights [][]float64 // [out][in]
	bias    []float64   // [out]
	trained bool
}

// New creates an untrained network. Dimensions are fixed by the first
// Train or Restore call.
func New() *Network {
	return &Network{}
}

// Train fits the layer on input/target vector pairs. All vectors must
// share one length (the vocabulary size at training time). An empty
// training set is not an error: the network stays neutral and Infer
// returns all-zero activations.
func (n *Network) Train(inputs, targets [][]float64) error {
	if len(inputs) != len(targets) {
		return fmt.Errorf("neural: %d inputs vs %d targets", len(inputs), len(targets))
	}
	if len(inputs) == 0 {
		n.in, n.out = 0, 0
		n.weights, n.bias = nil, nil
		n.trained = true
		return nil
	}

	dim := len(inputs[0])
	for i := range inputs {
		if len(inputs[i]) != dim || len(targets[i]) != dim {
			return fmt.Errorf("neural: sample %d has mismatched vector length", i)
		}
	}

	n.in, n.out = dim, dim
	n.weights = make([][]float64, dim)
	for o := range n.weights {
		n.weights[o] = make([]float64, dim)
	}
	n.bias = make([]float64, dim)

	for epoch := 0; epoch < epochs; epoch++ {
		for s := range inputs {
			x, t := inputs[s], targets[s]
			for o := 0; o < dim; o++ {
				sum := n.bias[o]
				row := n.weights[o]
				for i := 0; i < dim; i++ {
					if x[i] != 0 {
						sum += row[i] * x[i]
					}
				}
				y := sigmoid(sum)
				// Delta rule with sigmoid derivative.
				grad := (t[o] - y) * y * (1 - y)
				if grad == 0 {
					continue
				}
				step := learningRate * grad
				for i := 0; i < dim; i++ {
					if x[i] != 0 {
						row[i] += step * x[i]
					}
				}
				n.bias[o] += step
			}
		}
	}

	n.trained = true
	return nil
}

// Infer maps a feature vector to activations. The vector length must
// match the training dimension; an untrained or neutral network returns
// all zeros.
func (n *Network) Infer(features []float64) ([]float64, error) {
	if !n.trained {
		return nil, fmt.Errorf("neural: infer before train")
	}
	if n.out == 0 {
		return make([]float64, len(features)), nil
	}
	if len(features) != n.in {
		return nil, fmt.Errorf("neural: feature length %d, trained on %d", len(features), n.in)
	}

	out := make([]float64, n.out)
	for o := 0; o < n.out; o++ {
		sum := n.bias[o]
		row := n.weights[o]
		for i, x := range features {
			if x != 0 {
				sum += row[i] * x
			}
		}
		out[o] = sigmoid(sum)
	}
	return out, nil
}

// snapshot is the serialized weight form.
type snapshot struct {
	In      int         `json:"in"`
	Out     int         `json:"out"`
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

// Snapshot serializes the trained weights.
func (n *Network) Snapshot() ([]byte, error) {
	if !n.trained {
		return nil, fmt.Errorf("neural: snapshot before train")
	}
	return json.Marshal(snapshot{In: n.in, Out: n.out, Weights: n.weights, Bias: n.bias})
}

// Restore loads weights from a prior Snapshot.
func (n *Network) Restore(data []byte) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("neural: restore: %w", err)
	}
	if s.Out != len(s.Weights) || (s.Out > 0 && s.Out != len(s.Bias)) {
		return fmt.Errorf("neural: restore: inconsistent snapshot")
	}
	for o := range s.Weights {
		if len(s.Weights[o]) != s.In {
			return fmt.Errorf("neural: restore: row %d length %d, want %d", o, len(s.Weights[o]), s.In)
		}
	}
	n.in, n.out = s.In, s.Out
	n.weights, n.bias = s.Weights, s.Bias
	n.trained = true
	return nil
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

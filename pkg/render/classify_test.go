package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeClassification(t *testing.T) {
	c := NewPathClassifier([]int64{0, 1, 2})

	assert.Equal(t, ClassPath, c.Node(0))
	assert.Equal(t, ClassPath, c.Node(1))
	assert.Equal(t, ClassPath, c.Node(2))
	assert.Equal(t, ClassContext, c.Node(5))
}

func TestEdgeClassification(t *testing.T) {
	c := NewPathClassifier([]int64{0, 1, 2})

	tests := []struct {
		name string
		u, v int64
		want Class
	}{
		{"consecutive pair", 1, 2, ClassPath},
		{"consecutive pair reversed", 2, 1, ClassPath},
		{"first pair", 0, 1, ClassPath},
		{"context edge", 1, 5, ClassContext},
		{"context edge reversed", 5, 1, ClassContext},
		{"path nodes but not consecutive", 0, 2, ClassContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Edge(tt.u, tt.v))
		})
	}
}

func TestSingleNodePathHasNoEdges(t *testing.T) {
	c := NewPathClassifier([]int64{3})

	assert.Equal(t, ClassPath, c.Node(3))
	assert.Equal(t, ClassContext, c.Edge(3, 3))
}

package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestCloseRequested(t *testing.T) {
	cases := []struct {
		name   string
		key    glfw.Key
		action glfw.Action
		want   bool
	}{
		{"escape release", glfw.KeyEscape, glfw.Release, true},
		{"q release", glfw.KeyQ, glfw.Release, true},
		{"escape press", glfw.KeyEscape, glfw.Press, false},
		{"q press", glfw.KeyQ, glfw.Press, false},
		{"q repeat", glfw.KeyQ, glfw.Repeat, false},
		{"other key release", glfw.KeyA, glfw.Release, false},
		{"space release", glfw.KeySpace, glfw.Release, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, closeRequested(tc.key, tc.action))
		})
	}
}

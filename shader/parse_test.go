package shader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageFromName(t *testing.T) {
	cases := []struct {
		name string
		want Stage
	}{
		{"vertex", StageVertex},
		{"fragment", StageFragment},
		{"compute", StageCompute},
		{"geometry", StageGeometry},
		{"tess-control", StageTessControl},
		{"tess-evaluation", StageTessEvaluation},
		{"Vertex", StageVertex},
		{"FRAGMENT", StageFragment},
		{"  geometry\t", StageGeometry},
		{" Tess-Evaluation ", StageTessEvaluation},
	}
	for _, c := range cases {
		got, err := StageFromName(c.name)
		require.NoErrorf(t, err, "name %q", c.name)
		assert.Equalf(t, c.want, got, "name %q", c.name)
	}
}

func TestStageFromNameUnknown(t *testing.T) {
	for _, name := range []string{"", "pixel", "vertex shader", "tessellation"} {
		_, err := StageFromName(name)
		var unknown *UnknownStageError
		require.ErrorAsf(t, err, &unknown, "name %q", name)
	}
}

func TestParseSource(t *testing.T) {
	stage, body, err := ParseSource("a.glsl", "#type vertex\nvoid main() {}\n")
	require.NoError(t, err)
	assert.Equal(t, StageVertex, stage)
	assert.Equal(t, "void main() {}\n", body)
}

func TestParseSourceSkipsLeadingBlankLines(t *testing.T) {
	stage, body, err := ParseSource("a.glsl", "\n\r\n\t  #type Fragment\nbody")
	require.NoError(t, err)
	assert.Equal(t, StageFragment, stage)
	assert.Equal(t, "body", body)
}

func TestParseSourceHeaderWhitespace(t *testing.T) {
	stage, _, err := ParseSource("a.glsl", "#type   tess-control  \nbody")
	require.NoError(t, err)
	assert.Equal(t, StageTessControl, stage)
}

func TestParseSourceMissingHeader(t *testing.T) {
	for _, text := range []string{
		"",
		"void main() {}",
		"// #type vertex\nvoid main() {}",
		"#typevertex\nbody",
	} {
		_, _, err := ParseSource("bad.glsl", text)
		require.ErrorIsf(t, err, ErrMissingTypeHeader, "text %q", text)
		assert.Contains(t, err.Error(), "bad.glsl")
	}
}

func TestParseSourceUnknownType(t *testing.T) {
	_, _, err := ParseSource("bad.glsl", "#type pixel\nbody")
	var unknown *UnknownStageError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "pixel", unknown.Name)
	assert.False(t, errors.Is(err, ErrMissingTypeHeader))
}

func TestParseSourceBodyUntouched(t *testing.T) {
	body := "#version 450 core\n\nvoid main() {\n\tgl_Position = vec4(0);\n}\n"
	_, got, err := ParseSource("a.glsl", "#type vertex\n"+body)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

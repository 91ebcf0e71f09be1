package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBucketSelect(t *testing.T) {
	b := Bucket{
		Cases: map[string]string{"1": "one", "2": "two"},
		Else:  "many",
	}

	tests := []struct {
		key  string
		want string
	}{
		{"1", "one"},
		{"2", "two"},
		{"3", "many"},
		{"01", "many"},
		{"", "many"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Select(tt.key))
		})
	}

	assert.Equal(t, "", Bucket{Cases: map[string]string{"1": "one"}}.Select("5"))
	assert.Equal(t, "", Bucket{}.Select("1"))
}

func TestBucketEmpty(t *testing.T) {
	assert.True(t, Bucket{}.Empty())
	assert.False(t, Bucket{Else: "x"}.Empty())
	assert.False(t, Bucket{Cases: map[string]string{"1": "x"}}.Empty())
}

func TestBucketYAML(t *testing.T) {
	var b Bucket
	err := yaml.Unmarshal([]byte("1: every day\n2: every other day\nelse: every %{interval} days\n"), &b)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"1": "every day", "2": "every other day"}, b.Cases)
	assert.Equal(t, "every %{interval} days", b.Else)

	out, err := yaml.Marshal(b)
	require.NoError(t, err)

	var back Bucket
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, b, back)
}

func TestBucketYAML_NotMapping(t *testing.T) {
	var b Bucket
	err := yaml.Unmarshal([]byte("- a\n- b\n"), &b)
	assert.ErrorIs(t, err, ErrInvalidBundle)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime implements container.Runtime for testing.
type fakeRuntime struct {
	images map[string]bool
	output string
	runErr error
	gotIn  string
}

func (f *fakeRuntime) Name() string { return "fake" }

func (f *fakeRuntime) Available(context.Context) bool { return true }

func (f *fakeRuntime) ImageExists(_ context.Context, image string) error {
	if f.images[image] {
		return nil
	}
	return errors.New("no such image")
}

func (f *fakeRuntime) Run(_ context.Context, _ string, stdin io.Reader, stdout io.Writer) error {
	data, _ := io.ReadAll(stdin)
	f.gotIn = string(data)
	if f.runErr != nil {
		return f.runErr
	}
	_, err := io.WriteString(stdout, f.output)
	return err
}

func TestNewContainerExtractor(t *testing.T) {
	rt := &fakeRuntime{images: map[string]bool{DefaultContainerImage: true}}
	_, err := NewContainerExtractor(context.Background(), rt, "")
	require.NoError(t, err)

	_, err = NewContainerExtractor(context.Background(), rt, "custom:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom:1 image not available in fake")
}

func TestContainerExtractor_Extract(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "paper.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF bytes"), 0o644))

	tests := []struct {
		name   string
		rt     *fakeRuntime
		want   []string
		errMsg string
	}{
		{
			name: "splits markdown into non-empty lines",
			rt:   &fakeRuntime{output: "# Title\n\nSome body text.\n  \nMore.\n"},
			want: []string{"# Title", "Some body text.", "More."},
		},
		{
			name:   "empty output",
			rt:     &fakeRuntime{output: ""},
			errMsg: "empty output",
		},
		{
			name:   "container failure",
			rt:     &fakeRuntime{runErr: errors.New("exit status 1")},
			errMsg: "exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.rt.images = map[string]bool{DefaultContainerImage: true}
			ex, err := NewContainerExtractor(context.Background(), tt.rt, DefaultContainerImage)
			require.NoError(t, err)

			got, err := ex.Extract(context.Background(), pdf)
			assert.Equal(t, "%PDF bytes", tt.rt.gotIn, "document should be piped to the container")
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

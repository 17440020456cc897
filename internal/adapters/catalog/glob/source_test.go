package glob

import (
	"context"
	"testing"

	"github.com/bnema/pool-cli/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, fs afero.Fs, paths ...string) {
	t.Helper()
	for _, path := range paths {
		require.NoError(t, afero.WriteFile(fs, path, []byte("#"), 0o644))
	}
}

func lookupFrom(values map[string]string) LookupFunc {
	return func(key string) string {
		return values[key]
	}
}

func TestSourceDerivesItemNamesFromFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFiles(t, fs,
		"/repos/base16-shell/base16-ocean.sh",
		"/repos/base16-shell/base16-eighties.sh",
		"/repos/base16-shell/README.md",
		"/repos/base16-shell/base16-.sh",
	)

	source := NewSource(fs, domain.SourceConfig{
		Dir:        "$MDX_REPOS_ROOT/base16-shell",
		Pattern:    "base16*.sh",
		TrimPrefix: "base16-",
		TrimSuffix: ".sh",
	}, lookupFrom(map[string]string{"MDX_REPOS_ROOT": "/repos"}))

	items, err := source.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{"eighties", "ocean"}, items.Sorted())
}

func TestSourceMatchesNestedDirectories(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFiles(t, fs,
		"/vim/neobundle/molokai/colors/molokai.vim",
		"/vim/neobundle/desert/colors/desert256.vim",
		"/vim/neobundle/desert/plugin/desert.vim",
	)

	source := NewSource(fs, domain.SourceConfig{
		Dir:        "/vim/neobundle",
		Pattern:    "*/colors/*.vim",
		TrimSuffix: ".vim",
	}, nil)

	items, err := source.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{"desert256", "molokai"}, items.Sorted())
}

func TestSourceReturnsEmptySetWhenDirectoryIsMissing(t *testing.T) {
	t.Parallel()

	source := NewSource(afero.NewMemMapFs(), domain.SourceConfig{
		Dir:     "$ZSH/themes",
		Pattern: "*.zsh-theme",
	}, lookupFrom(nil))

	items, err := source.Items(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSourceRejectsBadPattern(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/x/a")
	source := NewSource(fs, domain.SourceConfig{Dir: "/x", Pattern: "[-"}, nil)

	_, err := source.Items(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "glob")
}

func TestItemName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		base   string
		prefix string
		suffix string
		want   domain.Item
	}{
		{name: "prefix and suffix", base: "base16-ocean.sh", prefix: "base16-", suffix: ".sh", want: "ocean"},
		{name: "suffix only", base: "agnoster.zsh-theme", suffix: ".zsh-theme", want: "agnoster"},
		{name: "nothing to trim", base: "plain", want: "plain"},
		{name: "everything trimmed", base: "base16-.sh", prefix: "base16-", suffix: ".sh", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ItemName(tc.base, tc.prefix, tc.suffix))
		})
	}
}

package toml

import (
	"path/filepath"

	"github.com/bnema/pool-cli/internal/domain"
)

// DefaultKinds are the pools known without any config file. Data files live
// in dataDir.
func DefaultKinds(dataDir string) domain.Kinds {
	return domain.Kinds{
		{
			Kind:       "base16",
			Name:       "base16 shell color scheme pool",
			Aliases:    []string{"b"},
			DataFile:   filepath.Join(dataDir, ".mdx_base16_shell_theme_pool"),
			CurrentEnv: "MDX_BASE_COLOR",
			Sources: []domain.SourceConfig{{
				Dir:        "$MDX_REPOS_ROOT/base16-shell",
				Pattern:    "base16*.sh",
				TrimPrefix: "base16-",
				TrimSuffix: ".sh",
			}},
		},
		{
			Kind:       "zsh_prompt",
			Name:       "zsh prompt theme pool",
			Aliases:    []string{"z"},
			DataFile:   filepath.Join(dataDir, ".mdx_zsh_prompt_theme_pool"),
			CurrentEnv: "MDX_ZSH_THEME",
			Sources: []domain.SourceConfig{{
				Dir:        "$ZSH/themes",
				Pattern:    "*.zsh-theme",
				TrimSuffix: ".zsh-theme",
			}},
		},
		{
			Kind:     "vim",
			Name:     "vim color scheme pool",
			Aliases:  []string{"v"},
			DataFile: filepath.Join(dataDir, ".mdx_vim_color_scheme_pool"),
			Sources: []domain.SourceConfig{
				{Dir: "$MDX_REPOS_ROOT/vim-config/neobundle", Pattern: "*/colors/*.vim", TrimSuffix: ".vim"},
				{Dir: "$MDX_REPOS_ROOT/vim-config/colors", Pattern: "*.vim", TrimSuffix: ".vim"},
			},
		},
	}
}

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 9, c.Rows)
	assert.Equal(t, 9, c.Columns)
	assert.Equal(t, 10, c.Mines)
	assert.Equal(t, 5, c.CellWidth)
	assert.Equal(t, 3, c.CellHeight)
	assert.Zero(t, c.Seed)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
		want error
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }, ErrInvalidBoard},
		{"negative cols", func(c *Config) { c.Columns = -3 }, ErrInvalidBoard},
		{"negative mines", func(c *Config) { c.Mines = -1 }, ErrInvalidMines},
		{"too many mines", func(c *Config) { c.Mines = 82 }, ErrInvalidMines},
		{"all mines", func(c *Config) { c.Mines = 81 }, nil},
		{"no mines", func(c *Config) { c.Mines = 0 }, nil},
		{"narrow cells", func(c *Config) { c.CellWidth = 2 }, ErrInvalidCell},
		{"emoji does not fit", func(c *Config) { c.CellWidth = 3 }, ErrInvalidCell},
		{"narrowest emoji cell", func(c *Config) { c.CellWidth = 4 }, nil},
		{"short cells", func(c *Config) { c.CellHeight = 1 }, ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.edit(&c)
			err := c.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	c := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, &c)

	err := fs.Parse([]string{"--rows", "16", "--cols=30", "--mines", "99", "--cell-width", "7", "--seed", "42"})
	require.NoError(t, err)
	assert.Equal(t, Config{Rows: 16, Columns: 30, Mines: 99, CellWidth: 7, CellHeight: 3, Seed: 42}, c)
}

func TestRegisterFlagsDefaults(t *testing.T) {
	c := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, &c)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, Default(), c)
	assert.Equal(t, "9", fs.Lookup("rows").DefValue)
	assert.Equal(t, "3", fs.Lookup("cell-height").DefValue)
}
